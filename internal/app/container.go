// Package app provides the dependency injection container for the store.
// This consolidates all service initialization in one place.
package app

import (
	"fmt"
	"html/template"

	"github.com/pocketbase/pocketbase"

	"github.com/raihanetx/submonth-z/internal/adapter/repository"
	domain "github.com/raihanetx/submonth-z/internal/core"
	"github.com/raihanetx/submonth-z/internal/service"
	"github.com/raihanetx/submonth-z/pkg/broker"
)

// UploadDir is where uploaded images land on disk; its contents are served
// under the /uploads/ public prefix.
const UploadDir = "./uploads"

// Container holds all application dependencies.
// This is the central place for Dependency Injection.
type Container struct {
	// PocketBase instance
	PB *pocketbase.PocketBase

	// Templates
	Templates *template.Template

	// Infrastructure
	Broker *broker.Broker

	// Repositories (Data Access Layer)
	CategoryRepo domain.CategoryRepository
	ProductRepo  domain.ProductRepository
	CouponRepo   domain.CouponRepository
	OrderRepo    domain.OrderRepository
	ReviewRepo   domain.ReviewRepository
	HotDealRepo  domain.HotDealRepository
	SettingsRepo *repository.SettingsRepo // Concrete type for handler compatibility

	// Domain Services (Business Logic)
	CatalogService *service.CatalogService
	CouponService  *service.CouponService
	OrderService   *service.OrderService
	ReviewService  *service.ReviewService
	UploadService  *service.UploadService
	MailService    *service.MailService
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) (*Container, error) {
	c := &Container{
		PB: pb,
	}

	// 1. Event Broker
	c.Broker = broker.New()

	// 2. Templates
	templates, err := InitTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to init templates: %w", err)
	}
	c.Templates = templates

	// 3. Repositories (Adapters)
	c.CategoryRepo = repository.NewCategoryRepo(pb)
	c.ProductRepo = repository.NewProductRepo(pb)
	c.CouponRepo = repository.NewCouponRepo(pb)
	c.OrderRepo = repository.NewOrderRepo(pb)
	c.ReviewRepo = repository.NewReviewRepo(pb)
	c.HotDealRepo = repository.NewHotDealRepo(pb)
	c.SettingsRepo = repository.NewSettingsRepo(pb)

	// 4. Domain Services (inject repos)
	c.UploadService = service.NewUploadService(UploadDir)
	c.MailService = service.NewMailService(c.SettingsRepo)
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ProductRepo, c.CouponRepo, c.UploadService)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CategoryRepo, c.CouponService, c.MailService, c.Broker)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)

	return c, nil
}
