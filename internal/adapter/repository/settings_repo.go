package repository

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"

	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/core"
)

// SettingsRepo persists site configuration in a generic key/value
// collection. Values are either bare scalars or JSON-serialized structures;
// the encoding is decided here and nowhere else - callers only ever see the
// typed core.SiteConfig.
type SettingsRepo struct {
	app pbCore.App
}

func NewSettingsRepo(app pbCore.App) *SettingsRepo {
	return &SettingsRepo{app: app}
}

// Load reads every settings row and assembles the typed config. Missing
// keys fall back to usable defaults so a fresh install still renders.
func (r *SettingsRepo) Load() (*core.SiteConfig, error) {
	records, err := r.app.FindRecordsByFilter("settings", "", "", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	raw := make(map[string]string, len(records))
	for _, rec := range records {
		raw[rec.GetString("key")] = rec.GetString("value")
	}

	cfg := &core.SiteConfig{
		SiteLogo:          raw[core.KeySiteLogo],
		Favicon:           raw[core.KeyFavicon],
		AdminPasswordHash: raw[core.KeyAdminPassword],
		PaymentMethods:    map[string]core.PaymentMethod{},
	}

	decodeValue(raw[core.KeyHeroBanner], &cfg.HeroBanners)
	decodeValue(raw[core.KeyContactInfo], &cfg.ContactInfo)
	decodeValue(raw[core.KeySMTPSettings], &cfg.SMTP)
	decodeValue(raw[core.KeyPaymentMethods], &cfg.PaymentMethods)

	cfg.HeroSliderInterval = cast.ToInt(raw[core.KeyHeroSliderInterval])
	if cfg.HeroSliderInterval <= 0 {
		cfg.HeroSliderInterval = 5000
	}
	cfg.HotDealsSpeed = cast.ToInt(raw[core.KeyHotDealsSpeed])
	if cfg.HotDealsSpeed <= 0 {
		cfg.HotDealsSpeed = 40
	}
	cfg.UsdToBdtRate = cast.ToFloat64(raw[core.KeyUsdToBdtRate])

	cfg.PageContent = core.PageContent{
		AboutUs: raw[core.KeyPageContentPrefix+"about_us"],
		Terms:   raw[core.KeyPageContentPrefix+"terms"],
		Privacy: raw[core.KeyPageContentPrefix+"privacy"],
		Refund:  raw[core.KeyPageContentPrefix+"refund"],
	}

	return cfg, nil
}

// Set upserts a single settings key. Structured values are JSON-encoded,
// scalars are written bare.
func (r *SettingsRepo) Set(key string, value any) error {
	encoded, err := encodeValue(value)
	if err != nil {
		return err
	}

	record, err := r.app.FindFirstRecordByData("settings", "key", key)
	if err != nil {
		collection, err := r.app.FindCollectionByNameOrId("settings")
		if err != nil {
			return err
		}
		record = pbCore.NewRecord(collection)
		record.Set("key", key)
	}

	record.Set("value", encoded)
	return r.app.Save(record)
}

// encodeValue turns a settings value into its stored string form: strings
// pass through, other scalars are stringified, everything else is JSON.
func encodeValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int, int32, int64, float32, float64, bool:
		return cast.ToString(v), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// decodeValue attempts a structured decode and leaves the target untouched
// when the stored value is not valid JSON for it.
func decodeValue(raw string, out any) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}
