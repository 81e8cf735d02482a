package repository

import (
	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

type PBReviewRepo struct {
	app pbCore.App
}

func NewReviewRepo(app pbCore.App) core.ReviewRepository {
	return &PBReviewRepo{app: app}
}

func (r *PBReviewRepo) toDomain(record *pbCore.Record) *core.Review {
	return &core.Review{
		ID:        record.Id,
		ProductID: record.GetString("product_id"),
		Name:      record.GetString("name"),
		Rating:    record.GetInt("rating"),
		Comment:   record.GetString("comment"),
		Created:   record.GetString("created"),
	}
}

func (r *PBReviewRepo) Create(review *core.Review) error {
	collection, err := r.app.FindCollectionByNameOrId("reviews")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("product_id", review.ProductID)
	record.Set("name", review.Name)
	record.Set("rating", review.Rating)
	record.Set("comment", review.Comment)

	if err := r.app.Save(record); err != nil {
		return err
	}

	review.ID = record.Id
	review.Created = record.GetString("created")
	return nil
}

func (r *PBReviewRepo) FindByProduct(productID string) ([]*core.Review, error) {
	records, err := r.app.FindRecordsByFilter(
		"reviews",
		"product_id = {:productId}",
		"-created", 0, 0,
		dbx.Params{"productId": productID},
	)
	if err != nil {
		return nil, err
	}

	var reviews []*core.Review
	for _, rec := range records {
		reviews = append(reviews, r.toDomain(rec))
	}
	return reviews, nil
}

func (r *PBReviewRepo) GetAll() ([]*core.Review, error) {
	records, err := r.app.FindRecordsByFilter("reviews", "", "-created", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	var reviews []*core.Review
	for _, rec := range records {
		reviews = append(reviews, r.toDomain(rec))
	}
	return reviews, nil
}

// Delete is a hard delete; there is no soft-delete state anywhere.
func (r *PBReviewRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("reviews", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}
