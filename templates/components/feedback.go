package components

import (
	"context"

	"github.com/a-h/templ"
)

// Toast kinds
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// ToastID is the id of the notification region every page carries
const ToastID = "toaster"

// ToastView is one notification
type ToastView struct {
	Kind    string
	Message string
}

// Toaster renders the bottom-center notification region. With oob set the
// region replaces the one already on the page during an htmx swap.
func Toaster(toast *ToastView, oob bool) templ.Component {
	return Component(func(ctx context.Context, h *Writer) {
		h.Raw(`<div`)
		h.Attr("id", ToastID)
		h.Attr("class", "toaster toaster-bottom-center")
		h.Attr("aria-live", "polite")
		if oob {
			h.Attr("hx-swap-oob", "true")
		}
		h.Raw(`>`)
		if toast != nil && toast.Message != "" {
			h.Raw(`<input type="checkbox" id="toast-dismiss" class="toast-dismiss" hidden>`)
			h.Raw(`<div`)
			h.Attr("class", "toast-note toast-"+toast.Kind)
			if toast.Kind == ToastError {
				h.Attr("role", "alert")
			} else {
				h.Attr("role", "status")
			}
			h.Raw(`><span class="toast-message">`)
			h.Text(toast.Message)
			h.Raw(`</span><label for="toast-dismiss" class="toast-close" aria-label="Close">&times;</label></div>`)
		}
		h.Raw(`</div>`)
	})
}

// SuccessModal is the local confirmation dialog. OK navigates to okURL,
// clicking the backdrop only closes the dialog.
func SuccessModal(message, okURL string) templ.Component {
	return Component(func(ctx context.Context, h *Writer) {
		h.Raw(`<div id="success-modal" class="success-modal">`)
		h.Raw(`<input type="checkbox" id="modal-dismiss" class="modal-dismiss" hidden>`)
		h.Raw(`<div class="modal fade show" tabindex="-1" role="dialog" aria-modal="true" aria-labelledby="successModalLabel" style="display: block;">`)
		h.Raw(`<div class="modal-dialog modal-dialog-centered"><div class="modal-content text-center">`)
		h.Raw(`<div class="modal-header border-0"><h5 class="modal-title w-100" id="successModalLabel">Thank You!</h5></div>`)
		h.Raw(`<div class="modal-body">`)
		h.Text(message)
		h.Raw(`</div><div class="modal-footer justify-content-center border-0">`)
		h.Raw(`<a class="btn btn-primary" id="success-modal-ok"`)
		h.Attr("href", okURL)
		h.Raw(`>OK</a></div></div></div>`)
		h.Raw(`<label for="modal-dismiss" class="modal-backdrop fade show"></label>`)
		h.Raw(`</div></div>`)
	})
}

// ModalRootID is the placeholder the success modal is swapped into
const ModalRootID = "modal-root"

// ModalRoot holds the success modal when message is set
func ModalRoot(message, okURL string, oob bool) templ.Component {
	return Component(func(ctx context.Context, h *Writer) {
		h.Raw(`<div`)
		h.Attr("id", ModalRootID)
		if oob {
			h.Attr("hx-swap-oob", "true")
		}
		h.Raw(`>`)
		if message != "" {
			h.Render(ctx, SuccessModal(message, okURL))
		}
		h.Raw(`</div>`)
	})
}

// Footer is shared by every page
func Footer() templ.Component {
	return Component(func(ctx context.Context, h *Writer) {
		h.Raw(`<section class="container-fluid footer mt-5"><div class="container"><div class="row"><div class="col-12">`)
		h.Raw(`<p class="mb-0">&copy; 2025 All rights reserved. NextKey Litigation.</p>`)
		h.Raw(`</div></div></div></section>`)
	})
}
