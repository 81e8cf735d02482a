package middleware

import (
	"fmt"

	pbCore "github.com/pocketbase/pocketbase/core"

	"github.com/raihanetx/submonth-z/internal/adapter/repository"
	"github.com/raihanetx/submonth-z/internal/core"
)

// SettingsMiddleware loads the site configuration into the request context
// for RenderPage and the handlers.
func SettingsMiddleware(settingsRepo *repository.SettingsRepo) func(e *pbCore.RequestEvent) error {
	return func(e *pbCore.RequestEvent) error {
		config, err := settingsRepo.Load()
		if err != nil {
			// Continue with defaults; the repo returns a usable zero config.
			fmt.Printf("Middleware Warning: Failed to load settings: %v\n", err)
			config = &core.SiteConfig{}
		}

		e.Set("Config", config)
		if config.SiteLogo != "" {
			e.Set("LogoUrl", "/"+config.SiteLogo)
		}

		return e.Next()
	}
}

// ConfigFrom returns the site configuration placed by SettingsMiddleware.
func ConfigFrom(e *pbCore.RequestEvent) *core.SiteConfig {
	if config, ok := e.Get("Config").(*core.SiteConfig); ok && config != nil {
		return config
	}
	return &core.SiteConfig{}
}
