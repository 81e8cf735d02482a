package repository

import (
	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

type PBProductRepo struct {
	app pbCore.App
}

func NewProductRepo(app pbCore.App) core.ProductRepository {
	return &PBProductRepo{app: app}
}

func (r *PBProductRepo) toDomain(record *pbCore.Record) *core.Product {
	return &core.Product{
		ID:               record.Id,
		CategoryID:       record.GetString("category_id"),
		Name:             record.GetString("name"),
		Slug:             record.GetString("slug"),
		ShortDescription: record.GetString("short_description"),
		LongDescription:  record.GetString("long_description"),
		Image:            record.GetString("image"),
		StockOut:         record.GetBool("stock_out"),
		Featured:         record.GetBool("featured"),
	}
}

func (r *PBProductRepo) tierToDomain(record *pbCore.Record) core.PricingTier {
	return core.PricingTier{
		ID:        record.Id,
		ProductID: record.GetString("product_id"),
		Duration:  record.GetString("duration"),
		Price:     record.GetFloat("price"),
	}
}

func (r *PBProductRepo) GetByID(id string) (*core.Product, error) {
	record, err := r.app.FindRecordById("products", id)
	if err != nil {
		return nil, err
	}

	product := r.toDomain(record)
	product.Pricing, err = r.GetPricing(id)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *PBProductRepo) FindByCategory(categoryID string) ([]*core.Product, error) {
	records, err := r.app.FindRecordsByFilter(
		"products",
		"category_id = {:categoryId}",
		"created", 0, 0,
		dbx.Params{"categoryId": categoryID},
	)
	if err != nil {
		return nil, err
	}

	var products []*core.Product
	for _, rec := range records {
		product := r.toDomain(rec)
		product.Pricing, _ = r.GetPricing(product.ID)
		products = append(products, product)
	}
	return products, nil
}

func (r *PBProductRepo) Create(p *core.Product, tiers []core.PricingTier) error {
	collection, err := r.app.FindCollectionByNameOrId("products")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("category_id", p.CategoryID)
	record.Set("name", p.Name)
	record.Set("slug", p.Slug)
	record.Set("short_description", p.ShortDescription)
	record.Set("long_description", p.LongDescription)
	record.Set("image", p.Image)
	record.Set("stock_out", p.StockOut)
	record.Set("featured", p.Featured)

	if err := r.app.Save(record); err != nil {
		return err
	}
	p.ID = record.Id

	return r.insertTiers(p.ID, tiers)
}

func (r *PBProductRepo) Update(p *core.Product) error {
	record, err := r.app.FindRecordById("products", p.ID)
	if err != nil {
		return err
	}

	record.Set("name", p.Name)
	record.Set("slug", p.Slug)
	record.Set("short_description", p.ShortDescription)
	record.Set("long_description", p.LongDescription)
	record.Set("stock_out", p.StockOut)
	record.Set("featured", p.Featured)

	return r.app.Save(record)
}

func (r *PBProductRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("products", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}

// ReplacePricing swaps the product's full tier set: delete, then reinsert
// in the order given. Insert order is preserved on reads.
func (r *PBProductRepo) ReplacePricing(productID string, tiers []core.PricingTier) error {
	existing, err := r.app.FindRecordsByFilter(
		"product_pricing",
		"product_id = {:productId}",
		"", 0, 0,
		dbx.Params{"productId": productID},
	)
	if err != nil {
		return err
	}
	for _, rec := range existing {
		if err := r.app.Delete(rec); err != nil {
			return err
		}
	}

	return r.insertTiers(productID, tiers)
}

func (r *PBProductRepo) insertTiers(productID string, tiers []core.PricingTier) error {
	collection, err := r.app.FindCollectionByNameOrId("product_pricing")
	if err != nil {
		return err
	}

	for i, tier := range tiers {
		record := pbCore.NewRecord(collection)
		record.Set("product_id", productID)
		record.Set("duration", tier.Duration)
		record.Set("price", tier.Price)
		record.Set("sort_order", i)
		if err := r.app.Save(record); err != nil {
			return err
		}
	}
	return nil
}

func (r *PBProductRepo) GetPricing(productID string) ([]core.PricingTier, error) {
	records, err := r.app.FindRecordsByFilter(
		"product_pricing",
		"product_id = {:productId}",
		"sort_order", 0, 0,
		dbx.Params{"productId": productID},
	)
	if err != nil {
		return nil, err
	}

	var tiers []core.PricingTier
	for _, rec := range records {
		tiers = append(tiers, r.tierToDomain(rec))
	}
	return tiers, nil
}

// catalogRow scans the flattened product/category join.
type catalogRow struct {
	ID               string `db:"id"`
	CategoryID       string `db:"category_id"`
	Name             string `db:"name"`
	Slug             string `db:"slug"`
	ShortDescription string `db:"short_description"`
	LongDescription  string `db:"long_description"`
	Image            string `db:"image"`
	StockOut         bool   `db:"stock_out"`
	Featured         bool   `db:"featured"`
	Category         string `db:"category"`
	CategorySlug     string `db:"category_slug"`
}

// Snapshot builds the storefront catalog view in one join plus per-product
// pricing and review lookups.
func (r *PBProductRepo) Snapshot() ([]*core.CatalogProduct, error) {
	var rows []catalogRow
	err := r.app.DB().
		NewQuery(`SELECT p.id, p.category_id, p.name, p.slug, p.short_description,
			p.long_description, p.image, p.stock_out, p.featured,
			c.name AS category, c.slug AS category_slug
			FROM products p
			JOIN categories c ON c.id = p.category_id
			ORDER BY p.created`).
		All(&rows)
	if err != nil {
		return nil, err
	}

	reviews := NewReviewRepo(r.app)

	products := make([]*core.CatalogProduct, 0, len(rows))
	for _, row := range rows {
		product := &core.CatalogProduct{
			Product: core.Product{
				ID:               row.ID,
				CategoryID:       row.CategoryID,
				Name:             row.Name,
				Slug:             row.Slug,
				ShortDescription: row.ShortDescription,
				LongDescription:  row.LongDescription,
				Image:            row.Image,
				StockOut:         row.StockOut,
				Featured:         row.Featured,
			},
			Category:     row.Category,
			CategorySlug: row.CategorySlug,
			Reviews:      []*core.Review{},
		}

		product.Pricing, _ = r.GetPricing(row.ID)
		if found, err := reviews.FindByProduct(row.ID); err == nil && found != nil {
			product.Reviews = found
		}

		products = append(products, product)
	}
	return products, nil
}

func (r *PBProductRepo) SetImage(productID, path string) error {
	record, err := r.app.FindRecordById("products", productID)
	if err != nil {
		return err
	}
	record.Set("image", path)
	return r.app.Save(record)
}
