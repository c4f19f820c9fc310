package pages

import (
	"time"

	"nextkey_landing_go/services/confetti"
	"nextkey_landing_go/templates/components"
)

// LayoutView holds the page chrome shared by every page
type LayoutView struct {
	Title            string
	TurnstileSiteKey string
	Toast            *components.ToastView

	// RefreshURL makes the browser load another page after RefreshAfter.
	// Used when a submit arrives without htmx.
	RefreshURL   string
	RefreshAfter time.Duration
}

// LandingView is the parent or child landing page
type LandingView struct {
	Layout LayoutView
	Form   components.LeadFormView

	// Success modal of the local-only strategy
	ModalMessage string
	ModalOKURL   string

	// Cross-links between the two landing pages of a site
	ParentURL string
	ChildURL  string
}

// ThankYouView is the confirmation page
type ThankYouView struct {
	Layout      LayoutView
	MoreInfoURL string
	Pieces      []confetti.Piece
}
