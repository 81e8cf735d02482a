package migrations

import (
	"encoding/json"
	"log"
	"os"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the default site configuration and the bootstrap admin credential.
func init() {
	m.Register(func(app core.App) error {
		settings, err := app.FindCollectionByNameOrId("settings")
		if err != nil {
			return err
		}

		set := func(key, value string) error {
			if _, err := app.FindFirstRecordByData("settings", "key", key); err == nil {
				return nil
			}
			record := core.NewRecord(settings)
			record.Set("key", key)
			record.Set("value", value)
			return app.Save(record)
		}

		asJSON := func(v any) string {
			data, _ := json.Marshal(v)
			return string(data)
		}

		defaults := map[string]string{
			"usd_to_bdt_rate":      "110",
			"hero_slider_interval": "5000",
			"hot_deals_speed":      "40",
			"contact_info": asJSON(map[string]string{
				"phone":    "",
				"whatsapp": "",
				"email":    "",
			}),
			"payment_methods": asJSON(map[string]map[string]string{
				"bKash":       {"number": ""},
				"Nagad":       {"number": ""},
				"Binance Pay": {"pay_id": ""},
			}),
			"page_content_about_us": "Welcome to Submonth, your trusted source for premium subscriptions.",
			"page_content_terms":    "",
			"page_content_privacy":  "",
			"page_content_refund":   "",
		}

		for key, value := range defaults {
			if err := set(key, value); err != nil {
				return err
			}
		}

		// Bootstrap admin credential from the environment. Without it the
		// panel stays locked until cmd/passwd output is stored manually.
		if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := set("admin_password", string(hash)); err != nil {
				return err
			}
		} else {
			log.Println("seed: ADMIN_PASSWORD not set, skipping admin credential bootstrap")
		}

		return nil

	}, func(app core.App) error {
		return nil
	})
}
