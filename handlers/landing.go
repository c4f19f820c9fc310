package handlers

import (
	"errors"
	"net"
	"net/http"

	"nextkey_landing_go/config"
	"nextkey_landing_go/middleware"
	"nextkey_landing_go/services"
	"nextkey_landing_go/services/confetti"
	"nextkey_landing_go/services/leadform"
	"nextkey_landing_go/templates/components"
	"nextkey_landing_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const siteName = "NextKey Litigation"

func render(c echo.Context, component templ.Component) error {
	return renderStatus(c, http.StatusOK, component)
}

func renderStatus(c echo.Context, status int, parts ...templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	for _, component := range parts {
		if err := component.Render(c.Request().Context(), c.Response().Writer); err != nil {
			return err
		}
	}
	return nil
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func currentSite(c echo.Context) (*services.Site, error) {
	site := middleware.GetSite(c)
	if site == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Site not found")
	}
	return site, nil
}

func currentConfig(c echo.Context) *config.Config {
	if cfg := middleware.GetConfig(c); cfg != nil {
		return cfg
	}
	return &config.Config{}
}

// originDomain is the hostname the form was served from
func originDomain(c echo.Context) string {
	host := c.Request().Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func pageTitle(fs leadform.FieldSet) string {
	if fs.Key == leadform.ChildFields.Key {
		return "Safe Gaming Starts Here | " + siteName
	}
	return "Protect Your Child's Digital World | " + siteName
}

func landingView(c echo.Context, site *services.Site, form *leadform.Form) pages.LandingView {
	cfg := currentConfig(c)
	key := form.Fields.Key
	return pages.LandingView{
		Layout: pages.LayoutView{
			Title:            pageTitle(form.Fields),
			TurnstileSiteKey: cfg.TurnstileSiteKey,
		},
		Form: components.LeadFormView{
			Form:             form,
			Action:           site.Path("/" + key),
			FieldsURL:        site.Path("/" + key + "/fields/"),
			CSRFToken:        middleware.GetCSRFToken(c),
			TurnstileSiteKey: cfg.TurnstileSiteKey,
			CaptchaInvalid:   form.Errors.Invalid(services.CaptchaField),
		},
		ParentURL: site.Path("/" + leadform.ParentFields.Key),
		ChildURL:  site.Path("/" + leadform.ChildFields.Key),
	}
}

func landingPage(fs leadform.FieldSet, v pages.LandingView) templ.Component {
	if fs.Key == leadform.ChildFields.Key {
		return pages.ChildPage(v)
	}
	return pages.ParentPage(v)
}

// RootRedirectHandler sends the site root to the parent page
func RootRedirectHandler(c echo.Context) error {
	site, err := currentSite(c)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, site.Path("/"+leadform.ParentFields.Key))
}

// LandingPageHandler renders an empty intake form page
func LandingPageHandler(fs leadform.FieldSet) echo.HandlerFunc {
	return func(c echo.Context) error {
		site, err := currentSite(c)
		if err != nil {
			return err
		}
		form := leadform.NewForm(fs)
		return render(c, landingPage(fs, landingView(c, site, form)))
	}
}

// SubmitLeadHandler validates a posted intake form and runs the site's
// submission strategy. htmx requests get the form fragment back with the
// toaster and modal swapped out of band; plain posts get the full page.
func SubmitLeadHandler(fs leadform.FieldSet) echo.HandlerFunc {
	return func(c echo.Context) error {
		site, err := currentSite(c)
		if err != nil {
			return err
		}

		form := leadform.NewForm(fs)
		form.Bind(c.FormValue("form_id"), c.FormValue)

		outcome, err := site.Submitter(fs).Submit(c.Request().Context(), services.SubmitRequest{
			Form:         form,
			OriginDomain: originDomain(c),
			RequestID:    c.Response().Header().Get(echo.HeaderXRequestID),
			CaptchaToken: c.FormValue("cf-turnstile-response"),
			RemoteIP:     c.RealIP(),
		})
		if errors.Is(err, services.ErrSubmissionInFlight) {
			if isHTMX(c) {
				return c.NoContent(http.StatusNoContent)
			}
			return echo.NewHTTPError(http.StatusConflict, "Your request is already being submitted")
		}
		if err != nil {
			zap.L().Error("lead submission failed", zap.String("site", site.Key), zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit request")
		}

		// The visitor left while the lead was in flight
		if c.Request().Context().Err() != nil {
			return nil
		}

		v := landingView(c, site, form)
		var toast *components.ToastView
		switch {
		case outcome.ShowModal:
			v.ModalMessage = outcome.Message
			v.ModalOKURL = site.Path(services.ConfirmationRoute)
		case outcome.Message != "" && outcome.Succeeded():
			toast = &components.ToastView{Kind: components.ToastSuccess, Message: outcome.Message}
		case outcome.Message != "":
			toast = &components.ToastView{Kind: components.ToastError, Message: outcome.Message}
		}
		if outcome.NavigateTo != "" {
			v.Form.Navigate = &components.Navigation{
				URL:   site.Path(outcome.NavigateTo),
				After: outcome.NavigateAfter,
			}
		}

		if isHTMX(c) {
			parts := []templ.Component{components.LeadForm(v.Form)}
			if toast != nil {
				parts = append(parts, components.Toaster(toast, true))
			}
			if outcome.ShowModal {
				parts = append(parts, components.ModalRoot(v.ModalMessage, v.ModalOKURL, true))
			}
			return renderStatus(c, http.StatusOK, parts...)
		}

		v.Layout.Toast = toast
		if v.Form.Navigate != nil {
			v.Layout.RefreshURL = v.Form.Navigate.URL
			v.Layout.RefreshAfter = v.Form.Navigate.After
		}
		status := http.StatusOK
		if outcome.Errors.Any() {
			status = http.StatusUnprocessableEntity
		}
		return renderStatus(c, status, landingPage(fs, v))
	}
}

// FieldEditHandler applies one keystroke to a field: the invalid flag is
// dropped and the value normalized. Returns the re-rendered field group.
func FieldEditHandler(fs leadform.FieldSet) echo.HandlerFunc {
	return func(c echo.Context) error {
		site, err := currentSite(c)
		if err != nil {
			return err
		}

		name := c.Param("field")
		field, ok := fs.Field(name)
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "Unknown field")
		}

		form := leadform.NewForm(fs)
		value, err := form.Edit(name, c.FormValue(name))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		return render(c, components.FormField(components.FieldView{
			Field:     field,
			Value:     value,
			Invalid:   form.Errors.Invalid(name),
			FieldsURL: site.Path("/" + fs.Key + "/fields/"),
		}))
	}
}

// ThankYouHandler renders the confirmation page with a fresh confetti set
func ThankYouHandler(c echo.Context) error {
	site, err := currentSite(c)
	if err != nil {
		return err
	}
	return render(c, pages.ThankYouPage(pages.ThankYouView{
		Layout:      pages.LayoutView{Title: "Thank You | " + siteName},
		MoreInfoURL: site.Path("/" + leadform.ParentFields.Key),
		Pieces:      confetti.Generate(nil, confetti.Count),
	}))
}

// RateLimitedHandler answers a throttled htmx submit with an error toast
// and leaves the form untouched
func RateLimitedHandler(c echo.Context, message string) error {
	c.Response().Header().Set("HX-Reswap", "none")
	return render(c, components.Toaster(&components.ToastView{Kind: components.ToastError, Message: message}, true))
}

// HealthHandler reports liveness
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
