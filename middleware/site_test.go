package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nextkey_landing_go/config"
	"nextkey_landing_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWithSiteAndConfig(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{Environment: "test"}
	site := &services.Site{Key: services.SiteRoblox, BasePath: "/roblox"}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/roblox/parent", nil), httptest.NewRecorder())
	assert.Nil(t, GetSite(c))
	assert.Nil(t, GetConfig(c))

	h := WithConfig(cfg)(WithSite(site)(func(c echo.Context) error {
		assert.Same(t, site, GetSite(c))
		assert.Same(t, cfg, GetConfig(c))
		return nil
	}))
	assert.NoError(t, h(c))
}
