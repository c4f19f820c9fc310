package components

import (
	"context"
	"fmt"
	"time"

	"nextkey_landing_go/middleware"
	"nextkey_landing_go/services/leadform"

	"github.com/a-h/templ"
)

// FormID is the DOM id of the intake form, the htmx swap target of a submit
const FormID = "lead-form"

// PageID wraps the swappable body of every page
const PageID = "page"

// Navigation schedules a page change after a delay
type Navigation struct {
	URL   string
	After time.Duration
}

// LeadFormView is everything the intake form needs to render
type LeadFormView struct {
	Form      *leadform.Form
	Action    string // submit endpoint
	FieldsURL string // edit endpoint prefix, field name is appended
	CSRFToken string

	TurnstileSiteKey string
	CaptchaInvalid   bool

	// Navigate is set after an accepted submission
	Navigate *Navigation
}

// FieldView renders a single input with its current state
type FieldView struct {
	Field     leadform.Field
	Value     string
	Invalid   bool
	FieldsURL string
}

func groupID(name string) string {
	return "group-" + name
}

// LeadForm renders the parameterised intake form for any field set
func LeadForm(v LeadFormView) templ.Component {
	return Component(func(ctx context.Context, h *Writer) {
		fs := v.Form.Fields

		h.Raw(`<form class="form-container" method="post" novalidate`)
		h.Attr("id", FormID)
		h.Attr("action", v.Action)
		h.Attr("hx-post", v.Action)
		h.Attr("hx-target", "this")
		h.Attr("hx-swap", "outerHTML")
		h.Attr("hx-disabled-elt", "find button[type='submit']")
		h.Attr("hx-headers", HXHeaders(map[string]string{"X-CSRF-Token": v.CSRFToken}))
		h.Raw(`>`)

		h.Raw(`<input type="hidden" name="form_id"`)
		h.Attr("value", v.Form.ID)
		h.Raw(`>`)
		if v.CSRFToken != "" {
			h.Raw(`<input type="hidden" name="_csrf"`)
			h.Attr("value", v.CSRFToken)
			h.Raw(`>`)
		}

		for _, f := range fs.Fields {
			h.Render(ctx, FormField(FieldView{
				Field:     f,
				Value:     v.Form.Value(f.Name),
				Invalid:   v.Form.Errors.Invalid(f.Name),
				FieldsURL: v.FieldsURL,
			}))
		}

		if v.TurnstileSiteKey != "" {
			h.Raw(`<div class="mb-3">`)
			h.Raw(`<div class="cf-turnstile"`)
			h.Attr("data-sitekey", v.TurnstileSiteKey)
			h.Raw(`></div>`)
			if v.CaptchaInvalid {
				h.Raw(`<div class="invalid-feedback d-block">Please complete the CAPTCHA</div>`)
			}
			h.Raw(`</div>`)
		}

		h.Raw(`<button type="submit" class="btn btn-guidance w-100">`)
		h.Raw(`<span class="label-idle">`)
		h.Text(fs.SubmitLabel)
		h.Raw(`</span><span class="label-busy">Submitting...</span>`)
		h.Raw(` <img alt="Arrow"`)
		h.Attr("src", middleware.AssetURL(ctx, "img/arrowUpRight.svg"))
		h.Raw(`></button>`)

		if v.Navigate != nil {
			h.Raw(`<div hidden hx-trigger="`)
			h.Text(fmt.Sprintf("load delay:%dms", v.Navigate.After.Milliseconds()))
			h.Raw(`"`)
			h.Attr("hx-get", v.Navigate.URL)
			h.Attr("hx-target", "#"+PageID)
			h.Attr("hx-select", "#"+PageID)
			h.Attr("hx-swap", "outerHTML")
			h.Attr("hx-push-url", "true")
			h.Raw(`></div>`)
		}

		h.Raw(`</form>`)
	})
}

// FormField renders one labelled input. Inputs that can be flagged or
// masked report every keystroke to the edit endpoint, which answers with
// this same fragment.
func FormField(v FieldView) templ.Component {
	return Component(func(ctx context.Context, h *Writer) {
		f := v.Field
		class := "form-control"
		if v.Invalid {
			class += " is-invalid"
		}

		h.Raw(`<div class="mb-3 field-group"`)
		h.Attr("id", groupID(f.Name))
		h.Raw(`><label class="form-label"`)
		h.Attr("for", f.Name)
		h.Raw(`>`)
		h.Text(f.Label)
		h.Raw(`</label>`)

		if f.InputType == "textarea" {
			h.Raw(`<textarea`)
		} else {
			h.Raw(`<input`)
			h.Attr("type", f.InputType)
		}
		h.Attr("class", class)
		h.Attr("id", f.Name)
		h.Attr("name", f.Name)
		h.Attr("placeholder", f.Placeholder)
		h.AttrIf(f.Required(), "required")
		if f.InputType == "textarea" {
			h.Attr("rows", fmt.Sprint(f.Rows))
		}
		if f.Required() || f.Normalize != nil {
			h.Attr("hx-post", v.FieldsURL+f.Name)
			h.Attr("hx-trigger", "input")
			h.Attr("hx-target", "#"+groupID(f.Name))
			h.Attr("hx-swap", "outerHTML")
			h.Attr("hx-sync", "this:replace")
		}

		if f.InputType == "textarea" {
			h.Raw(`>`)
			h.Text(v.Value)
			h.Raw(`</textarea>`)
		} else {
			h.Attr("value", v.Value)
			h.Raw(`>`)
		}

		h.Raw(`</div>`)
	})
}
