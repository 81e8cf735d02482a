package repository

import (
	"strings"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

type PBCouponRepo struct {
	app pbCore.App
}

func NewCouponRepo(app pbCore.App) core.CouponRepository {
	return &PBCouponRepo{app: app}
}

func (r *PBCouponRepo) toDomain(record *pbCore.Record) *core.Coupon {
	return &core.Coupon{
		ID:                 record.Id,
		Code:               record.GetString("code"),
		DiscountPercentage: record.GetInt("discount_percentage"),
		IsActive:           record.GetBool("is_active"),
		Scope:              record.GetString("scope"),
		ScopeValue:         record.GetString("scope_value"),
	}
}

// GetByCode looks a coupon up by its stored (uppercase) code.
func (r *PBCouponRepo) GetByCode(code string) (*core.Coupon, error) {
	records, err := r.app.FindRecordsByFilter(
		"coupons",
		"code = {:code}",
		"", 1, 0,
		dbx.Params{"code": strings.ToUpper(code)},
	)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return r.toDomain(records[0]), nil
}

func (r *PBCouponRepo) GetAll() ([]*core.Coupon, error) {
	records, err := r.app.FindRecordsByFilter("coupons", "", "-created", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	var coupons []*core.Coupon
	for _, rec := range records {
		coupons = append(coupons, r.toDomain(rec))
	}
	return coupons, nil
}

func (r *PBCouponRepo) Create(c *core.Coupon) error {
	collection, err := r.app.FindCollectionByNameOrId("coupons")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("code", c.Code)
	record.Set("discount_percentage", c.DiscountPercentage)
	record.Set("is_active", c.IsActive)
	record.Set("scope", c.Scope)
	record.Set("scope_value", c.ScopeValue)

	if err := r.app.Save(record); err != nil {
		return err
	}

	c.ID = record.Id
	return nil
}

func (r *PBCouponRepo) Delete(id string) error {
	record, err := r.app.FindRecordById("coupons", id)
	if err != nil {
		return err
	}
	return r.app.Delete(record)
}

// RenameCategoryScope keeps category-scoped coupons pointing at a renamed
// category.
func (r *PBCouponRepo) RenameCategoryScope(oldName, newName string) error {
	records, err := r.app.FindRecordsByFilter(
		"coupons",
		"scope = 'category' && scope_value = {:old}",
		"", 0, 0,
		dbx.Params{"old": oldName},
	)
	if err != nil {
		return err
	}

	for _, rec := range records {
		rec.Set("scope_value", newName)
		if err := r.app.Save(rec); err != nil {
			return err
		}
	}
	return nil
}
