package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanetx/submonth-z/internal/core"
)

// The fakes embed the repository interfaces so only the methods a test
// actually reaches need an implementation.

type fakeCategoryRepo struct {
	core.CategoryRepository
	byName map[string]*core.Category
	byID   map[string]*core.Category
}

func (f *fakeCategoryRepo) GetByName(name string) (*core.Category, error) {
	return f.byName[name], nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*core.Category, error) {
	return f.byID[id], nil
}

type fakeProductRepo struct {
	core.ProductRepository
	existing *core.Product
	created  []*core.Product
	updated  []*core.Product
	replaced [][]core.PricingTier
}

func (f *fakeProductRepo) GetByID(id string) (*core.Product, error) {
	return f.existing, nil
}

func (f *fakeProductRepo) Create(p *core.Product, tiers []core.PricingTier) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) Update(p *core.Product) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProductRepo) ReplacePricing(productID string, tiers []core.PricingTier) error {
	f.replaced = append(f.replaced, tiers)
	return nil
}

func newTestCatalog(categories *fakeCategoryRepo, products *fakeProductRepo) *CatalogService {
	return NewCatalogService(categories, products, nil, nil)
}

func TestCreateProductRequiresPricingTier(t *testing.T) {
	categories := &fakeCategoryRepo{byName: map[string]*core.Category{
		"Streaming": {ID: "c1", Name: "Streaming"},
	}}
	products := &fakeProductRepo{}
	svc := newTestCatalog(categories, products)

	err := svc.CreateProduct("Streaming", ProductInput{Name: "Netflix Premium"}, "")

	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Empty(t, products.created)
}

func TestCreateProductUnknownCategoryIsNoOp(t *testing.T) {
	categories := &fakeCategoryRepo{byName: map[string]*core.Category{}}
	products := &fakeProductRepo{}
	svc := newTestCatalog(categories, products)

	err := svc.CreateProduct("Gone", ProductInput{
		Name:  "Netflix Premium",
		Tiers: []core.PricingTier{{Duration: "1 Month", Price: 350}},
	}, "")

	require.NoError(t, err)
	assert.Empty(t, products.created)
}

func TestCreateProductDerivesSlug(t *testing.T) {
	categories := &fakeCategoryRepo{byName: map[string]*core.Category{
		"Streaming": {ID: "c1", Name: "Streaming"},
	}}
	products := &fakeProductRepo{}
	svc := newTestCatalog(categories, products)

	err := svc.CreateProduct("Streaming", ProductInput{
		Name:  "Netflix Premium!!",
		Tiers: []core.PricingTier{{Duration: "1 Month", Price: 350}},
	}, "")

	require.NoError(t, err)
	require.Len(t, products.created, 1)
	assert.Equal(t, "netflix-premium", products.created[0].Slug)
	assert.Equal(t, "c1", products.created[0].CategoryID)
}

func TestUpdateProductRequiresPricingTier(t *testing.T) {
	products := &fakeProductRepo{existing: &core.Product{ID: "p1", Name: "Netflix Premium"}}
	svc := newTestCatalog(&fakeCategoryRepo{}, products)

	err := svc.UpdateProduct("p1", ProductInput{Name: "Netflix Premium"}, false, "")

	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
	assert.Empty(t, products.updated)
	assert.Empty(t, products.replaced)
}

func TestUpdateProductReplacesFullPricingSet(t *testing.T) {
	products := &fakeProductRepo{existing: &core.Product{ID: "p1", Name: "Netflix Premium"}}
	svc := newTestCatalog(&fakeCategoryRepo{}, products)

	tiers := []core.PricingTier{
		{Duration: "1 Month", Price: 350},
		{Duration: "3 Months", Price: 950},
	}
	err := svc.UpdateProduct("p1", ProductInput{Name: "Netflix UHD", Tiers: tiers}, false, "")

	require.NoError(t, err)
	require.Len(t, products.updated, 1)
	assert.Equal(t, "netflix-uhd", products.updated[0].Slug)
	require.Len(t, products.replaced, 1)
	assert.Equal(t, tiers, products.replaced[0])
}
