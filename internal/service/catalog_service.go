package service

import (
	"log"

	"github.com/raihanetx/submonth-z/internal/core"
)

// CatalogService owns category and product lifecycles, including slug
// derivation, pricing-tier replacement and image file cleanup.
type CatalogService struct {
	categories core.CategoryRepository
	products   core.ProductRepository
	coupons    core.CouponRepository
	uploads    *UploadService
}

func NewCatalogService(
	categories core.CategoryRepository,
	products core.ProductRepository,
	coupons core.CouponRepository,
	uploads *UploadService,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
		coupons:    coupons,
		uploads:    uploads,
	}
}

// ProductInput carries the admin form fields for a product create/update.
type ProductInput struct {
	Name             string
	ShortDescription string
	LongDescription  string
	StockOut         bool
	Featured         bool
	Tiers            []core.PricingTier
}

func (s *CatalogService) CreateCategory(name, icon string) error {
	return s.categories.Create(&core.Category{
		Name: name,
		Slug: Slugify(name),
		Icon: icon,
	})
}

// UpdateCategory renames a category and follows the rename into
// category-scoped coupons so they keep matching.
func (s *CatalogService) UpdateCategory(id, name, icon string) error {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return err
	}
	oldName := category.Name

	category.Name = name
	category.Slug = Slugify(name)
	category.Icon = icon
	if err := s.categories.Update(category); err != nil {
		return err
	}

	if oldName != name {
		if err := s.coupons.RenameCategoryScope(oldName, name); err != nil {
			log.Printf("catalog: coupon scope rename %q -> %q failed: %v", oldName, name, err)
		}
	}
	return nil
}

// DeleteCategory removes the category and, via cascade, its products,
// pricing and reviews. Product image files are removed first; coupons
// scoped to the category are left dangling, which readers tolerate.
func (s *CatalogService) DeleteCategory(id string) error {
	products, err := s.products.FindByCategory(id)
	if err == nil {
		for _, p := range products {
			if p.Image != "" {
				s.uploads.Remove(p.Image)
			}
		}
	}
	return s.categories.Delete(id)
}

// CreateProduct inserts a product under the named category. A category
// lookup miss is a silent no-op: no product row is created.
func (s *CatalogService) CreateProduct(categoryName string, input ProductInput, imagePath string) error {
	category, err := s.categories.GetByName(categoryName)
	if err != nil || category == nil {
		return nil
	}

	tiers := input.Tiers
	if len(tiers) == 0 {
		return validationErrorf("A product needs at least one pricing tier.")
	}

	return s.products.Create(&core.Product{
		CategoryID:       category.ID,
		Name:             input.Name,
		Slug:             Slugify(input.Name),
		ShortDescription: input.ShortDescription,
		LongDescription:  input.LongDescription,
		Image:            imagePath,
		StockOut:         input.StockOut,
		Featured:         input.Featured,
	}, tiers)
}

// UpdateProduct rewrites the product fields, replaces the full pricing set
// and handles the image lifecycle: an explicit delete or a replacement
// both remove the prior file.
func (s *CatalogService) UpdateProduct(id string, input ProductInput, deleteImage bool, newImagePath string) error {
	product, err := s.products.GetByID(id)
	if err != nil {
		return err
	}

	if len(input.Tiers) == 0 {
		return validationErrorf("A product needs at least one pricing tier.")
	}

	product.Name = input.Name
	product.Slug = Slugify(input.Name)
	product.ShortDescription = input.ShortDescription
	product.LongDescription = input.LongDescription
	product.StockOut = input.StockOut
	product.Featured = input.Featured

	if err := s.products.Update(product); err != nil {
		return err
	}
	if err := s.products.ReplacePricing(id, input.Tiers); err != nil {
		return err
	}

	currentImage := product.Image
	if deleteImage && currentImage != "" {
		s.uploads.Remove(currentImage)
		currentImage = ""
		if err := s.products.SetImage(id, ""); err != nil {
			return err
		}
	}
	if newImagePath != "" {
		if currentImage != "" {
			s.uploads.Remove(currentImage)
		}
		if err := s.products.SetImage(id, newImagePath); err != nil {
			return err
		}
	}

	return nil
}

// DeleteProduct removes the product row (pricing and reviews cascade) and
// its image file.
func (s *CatalogService) DeleteProduct(id string) error {
	product, err := s.products.GetByID(id)
	if err != nil {
		return err
	}

	if product.Image != "" {
		s.uploads.Remove(product.Image)
	}
	return s.products.Delete(id)
}

// CategoryWithProducts is the admin catalog view: a category with its
// products and their pricing expanded.
type CategoryWithProducts struct {
	Category *core.Category
	Products []*core.Product
}

// CategoryView loads one category with its products for the drill-down page.
func (s *CatalogService) CategoryView(id string) (*CategoryWithProducts, error) {
	category, err := s.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindByCategory(id)
	if err != nil {
		return nil, err
	}
	return &CategoryWithProducts{Category: category, Products: products}, nil
}

// AdminTree lists every category with nested products for the dashboard.
func (s *CatalogService) AdminTree() ([]CategoryWithProducts, error) {
	categories, err := s.categories.GetAll()
	if err != nil {
		return nil, err
	}

	tree := make([]CategoryWithProducts, 0, len(categories))
	for _, category := range categories {
		products, err := s.products.FindByCategory(category.ID)
		if err != nil {
			return nil, err
		}
		tree = append(tree, CategoryWithProducts{Category: category, Products: products})
	}
	return tree, nil
}

// Snapshot exposes the storefront catalog view.
func (s *CatalogService) Snapshot() ([]*core.CatalogProduct, error) {
	return s.products.Snapshot()
}
