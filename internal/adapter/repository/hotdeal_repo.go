package repository

import (
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

type PBHotDealRepo struct {
	app pbCore.App
}

func NewHotDealRepo(app pbCore.App) core.HotDealRepository {
	return &PBHotDealRepo{app: app}
}

func (r *PBHotDealRepo) GetAll() ([]*core.HotDeal, error) {
	records, err := r.app.FindRecordsByFilter("hot_deals", "", "created", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	var deals []*core.HotDeal
	for _, rec := range records {
		deals = append(deals, &core.HotDeal{
			ID:          rec.Id,
			ProductID:   rec.GetString("product_id"),
			CustomTitle: rec.GetString("custom_title"),
		})
	}
	return deals, nil
}

// ReplaceAll swaps the entire selection: delete everything, reinsert the
// given set. Saving the same selection twice yields the same rows.
func (r *PBHotDealRepo) ReplaceAll(deals []*core.HotDeal) error {
	existing, err := r.app.FindRecordsByFilter("hot_deals", "", "", 0, 0, nil)
	if err != nil {
		return err
	}
	for _, rec := range existing {
		if err := r.app.Delete(rec); err != nil {
			return err
		}
	}

	collection, err := r.app.FindCollectionByNameOrId("hot_deals")
	if err != nil {
		return err
	}

	for _, deal := range deals {
		record := pbCore.NewRecord(collection)
		record.Set("product_id", deal.ProductID)
		record.Set("custom_title", deal.CustomTitle)
		if err := r.app.Save(record); err != nil {
			return err
		}
		deal.ID = record.Id
	}
	return nil
}
