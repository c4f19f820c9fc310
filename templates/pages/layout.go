package pages

import (
	"context"
	"fmt"

	"nextkey_landing_go/middleware"
	"nextkey_landing_go/templates/components"

	"github.com/a-h/templ"
)

const (
	htmxSrc      = "https://unpkg.com/htmx.org@2.0.4"
	bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
	turnstileSrc = "https://challenges.cloudflare.com/turnstile/v0/api.js"
)

// htmxConfig shows the connectivity toast when the server itself cannot be
// reached, and renders Turnstile widgets that arrive in swapped content.
const htmxConfig = `document.addEventListener("htmx:sendError", function () {
  var t = document.getElementById("toaster");
  if (!t) return;
  t.innerHTML = '<div class="toast-note toast-error" role="alert"><span class="toast-message">' +
    "Unable to connect to server. Please check your internet connection and try again." +
    "</span></div>";
});
document.addEventListener("htmx:afterSwap", function () {
  if (!window.turnstile) return;
  document.querySelectorAll(".cf-turnstile").forEach(function (el) {
    if (!el.querySelector("iframe")) window.turnstile.render(el);
  });
});`

// Layout wraps body in the document shell. Only the #page element is
// swapped on htmx navigation, the toaster and footer stay in place.
func Layout(v LayoutView, body templ.Component) templ.Component {
	return components.Component(func(ctx context.Context, h *components.Writer) {
		nonce := middleware.GetNonce(ctx)

		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if v.RefreshURL != "" {
			h.Raw(`<meta http-equiv="refresh"`)
			h.Attr("content", fmt.Sprintf("%d;url=%s", int(v.RefreshAfter.Seconds()), v.RefreshURL))
			h.Raw(`>`)
		}
		h.Raw(`<title>`)
		h.Text(v.Title)
		h.Raw(`</title>`)
		h.Raw(`<link rel="icon" type="image/svg+xml"`)
		h.Attr("href", middleware.AssetURL(ctx, "img/favicon.svg"))
		h.Raw(`><link rel="stylesheet"`)
		h.Attr("href", bootstrapCSS)
		h.Raw(`><link rel="stylesheet"`)
		h.Attr("href", middleware.AssetURL(ctx, "css/style.css"))
		h.Raw(`><script`)
		h.Attr("src", htmxSrc)
		h.Attr("nonce", nonce)
		h.Raw(`></script>`)
		if v.TurnstileSiteKey != "" {
			h.Raw(`<script async defer`)
			h.Attr("src", turnstileSrc)
			h.Attr("nonce", nonce)
			h.Raw(`></script>`)
		}
		h.Raw(`<script`)
		h.Attr("nonce", nonce)
		h.Raw(`>` + htmxConfig + `</script>`)
		h.Raw(`</head><body>`)

		h.Raw(`<main`)
		h.Attr("id", components.PageID)
		h.Raw(`>`)
		h.Render(ctx, body)
		h.Raw(`</main>`)

		h.Render(ctx, components.Footer())
		h.Render(ctx, components.Toaster(v.Toast, false))
		h.Raw(`</body></html>`)
	})
}
