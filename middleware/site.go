package middleware

import (
	"nextkey_landing_go/config"
	"nextkey_landing_go/services"

	"github.com/labstack/echo/v4"
)

const (
	siteKey   = "site"
	configKey = "config"
)

// WithConfig makes the configuration available to handlers
func WithConfig(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(configKey, cfg)
			return next(c)
		}
	}
}

// WithSite tags every request of a route group with the site it serves
func WithSite(site *services.Site) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(siteKey, site)
			return next(c)
		}
	}
}

// GetSite returns the site of the current request, nil outside a site group
func GetSite(c echo.Context) *services.Site {
	site, _ := c.Get(siteKey).(*services.Site)
	return site
}

// GetConfig returns the configuration set by WithConfig
func GetConfig(c echo.Context) *config.Config {
	cfg, _ := c.Get(configKey).(*config.Config)
	return cfg
}
