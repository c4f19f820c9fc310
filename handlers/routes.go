package handlers

import (
	"nextkey_landing_go/middleware"
	"nextkey_landing_go/services"
	"nextkey_landing_go/services/leadform"

	"github.com/labstack/echo/v4"
)

// RegisterSite mounts the pages of one site under its base path.
// submitMW wraps the form submit endpoints only.
func RegisterSite(e *echo.Echo, site *services.Site, submitMW ...echo.MiddlewareFunc) {
	g := e.Group(site.BasePath, middleware.WithSite(site))

	g.GET("/", RootRedirectHandler)
	if site.BasePath != "" {
		g.GET("", RootRedirectHandler)
	}

	for _, fs := range []leadform.FieldSet{leadform.ParentFields, leadform.ChildFields} {
		g.GET("/"+fs.Key, LandingPageHandler(fs))
		g.POST("/"+fs.Key, SubmitLeadHandler(fs), submitMW...)
		g.POST("/"+fs.Key+"/fields/:field", FieldEditHandler(fs))
	}

	g.GET(services.ConfirmationRoute, ThankYouHandler)
}
