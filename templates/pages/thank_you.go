package pages

import (
	"context"

	"nextkey_landing_go/templates/components"

	"github.com/a-h/templ"
)

// ThankYouPage is the confirmation page with falling confetti
func ThankYouPage(v ThankYouView) templ.Component {
	body := components.Component(func(ctx context.Context, h *components.Writer) {
		h.Raw(`<div class="thank-you">`)
		h.Raw(`<div class="confetti" aria-hidden="true">`)
		for _, p := range v.Pieces {
			h.Raw(`<div class="confetti-piece"`)
			h.Attr("style", p.Style())
			h.Raw(`></div>`)
		}
		h.Raw(`</div>`)

		h.Raw(`<div class="thank-you-card">`)
		h.Raw(`<h1 class="thank-you-title">Thank You!</h1>`)
		h.Raw(`<p class="thank-you-subtitle">Your Request Has Been Received</p>`)
		h.Raw(`<p class="thank-you-text">We&#39;ve received your details and our team will review your concern. `)
		h.Raw(`In the meantime, here&#39;s important information that can help you right now.</p>`)
		h.Raw(`<a class="btn btn-gradient" id="more-info"`)
		h.Attr("href", v.MoreInfoURL)
		h.Raw(`>Get more information</a>`)
		h.Raw(`</div>`)

		h.Raw(`<p class="thank-you-note">Note: The guide contains detailed legal and safety information for parents and guardians. `)
		h.Raw(`We recommend reviewing it together as a family.</p>`)
		h.Raw(`</div>`)
	})
	return Layout(v.Layout, body)
}
