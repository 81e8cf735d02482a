package service

import (
	"strings"

	"github.com/raihanetx/submonth-z/internal/core"
)

// ReviewService validates and stores unauthenticated visitor reviews.
type ReviewService struct {
	reviews  core.ReviewRepository
	products core.ProductRepository
}

func NewReviewService(reviews core.ReviewRepository, products core.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

func (s *ReviewService) Submit(productID, name string, rating int, comment string) error {
	name = strings.TrimSpace(name)
	comment = strings.TrimSpace(comment)

	if name == "" || comment == "" {
		return validationErrorf("Name and comment are required.")
	}
	if rating < 1 || rating > 5 {
		return validationErrorf("Rating must be between 1 and 5.")
	}
	if _, err := s.products.GetByID(productID); err != nil {
		return validationErrorf("Unknown product.")
	}

	return s.reviews.Create(&core.Review{
		ProductID: productID,
		Name:      name,
		Rating:    rating,
		Comment:   comment,
	})
}

func (s *ReviewService) ListAll() ([]*core.Review, error) {
	return s.reviews.GetAll()
}

func (s *ReviewService) Delete(id string) error {
	return s.reviews.Delete(id)
}
