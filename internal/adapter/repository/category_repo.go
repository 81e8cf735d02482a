package repository

import (
	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

type PBCategoryRepo struct {
	app pbCore.App
}

func NewCategoryRepo(app pbCore.App) core.CategoryRepository {
	return &PBCategoryRepo{app: app}
}

func (r *PBCategoryRepo) toDomain(record *pbCore.Record) *core.Category {
	return &core.Category{
		ID:   record.Id,
		Name: record.GetString("name"),
		Slug: record.GetString("slug"),
		Icon: record.GetString("icon"),
	}
}

func (r *PBCategoryRepo) GetByID(id string) (*core.Category, error) {
	record, err := r.app.FindRecordById("categories", id)
	if err != nil {
		return nil, err
	}
	return r.toDomain(record), nil
}

func (r *PBCategoryRepo) GetByName(name string) (*core.Category, error) {
	records, err := r.app.FindRecordsByFilter(
		"categories",
		"name = {:name}",
		"", 1, 0,
		dbx.Params{"name": name},
	)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return r.toDomain(records[0]), nil
}

func (r *PBCategoryRepo) GetAll() ([]*core.Category, error) {
	records, err := r.app.FindRecordsByFilter("categories", "", "name", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	var categories []*core.Category
	for _, rec := range records {
		categories = append(categories, r.toDomain(rec))
	}
	return categories, nil
}

func (r *PBCategoryRepo) Create(c *core.Category) error {
	collection, err := r.app.FindCollectionByNameOrId("categories")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("name", c.Name)
	record.Set("slug", c.Slug)
	record.Set("icon", c.Icon)

	if err := r.app.Save(record); err != nil {
		return err
	}

	c.ID = record.Id
	return nil
}

func (r *PBCategoryRepo) Update(c *core.Category) error {
	record, err := r.app.FindRecordById("categories", c.ID)
	if err != nil {
		return err
	}

	record.Set("name", c.Name)
	record.Set("slug", c.Slug)
	record.Set("icon", c.Icon)

	return r.app.Save(record)
}

// Delete removes the category; its products, pricing and reviews cascade
// via the relation fields.
func (r *PBCategoryRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("categories", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}
