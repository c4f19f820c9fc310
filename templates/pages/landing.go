package pages

import (
	"context"

	"nextkey_landing_go/templates/components"

	"github.com/a-h/templ"
)

// formBox is the card around the intake form
func formBox(v LandingView) templ.Component {
	return components.Component(func(ctx context.Context, h *components.Writer) {
		fs := v.Form.Form.Fields
		h.Raw(`<div class="form-box"><h4 class="font-popins mb-3">`)
		h.Text(fs.Title)
		h.Raw(`</h4>`)
		if fs.Intro != "" {
			h.Raw(`<p class="font-popins">`)
			h.Text(fs.Intro)
			h.Raw(`</p>`)
		}
		h.Render(ctx, components.LeadForm(v.Form))
		h.Raw(`</div>`)
		h.Render(ctx, components.ModalRoot(v.ModalMessage, v.ModalOKURL, false))
	})
}

func bulletList(class string, items ...string) templ.Component {
	return components.Component(func(ctx context.Context, h *components.Writer) {
		h.Raw(`<ul`)
		h.Attr("class", class)
		h.Raw(`>`)
		for _, item := range items {
			h.Raw(`<li>`)
			h.Text(item)
			h.Raw(`</li>`)
		}
		h.Raw(`</ul>`)
	})
}

// ParentPage is the parent-facing landing page
func ParentPage(v LandingView) templ.Component {
	body := components.Component(func(ctx context.Context, h *components.Writer) {
		h.Raw(`<div class="container-fluid px-0"><section class="container pt-4"><div class="row">`)
		h.Raw(`<div class="col-12 col-lg-7 col-xl-8 banner-content">`)
		h.Raw(`<div class="logo"><img src="/static/img/logo-nextkey.svg" alt="NextKey Litigation" class="img-fluid"></div>`)
		h.Raw(`<h1 class="banner-head font-popins">Protect Your Child&#39;s Digital World &ndash; <span>Get Expert Guidance</span> for Safe Online Gaming</h1>`)
		h.Raw(`<p class="banner-text font-popins">We work with parents to ensure their child&#39;s online gaming experience is `)
		h.Raw(`<span> safe, healthy, and free from risks.</span> If you&#39;re concerned about your child&#39;s digital safety, our legal experts are here to help.</p>`)
		h.Raw(`<p class="kids-link">Are you a young gamer? <a`)
		h.Attr("href", v.ChildURL)
		h.Raw(`>Get help together</a></p>`)
		h.Raw(`</div><div class="col-12 col-lg-5 col-xl-4">`)
		h.Render(ctx, formBox(v))
		h.Raw(`</div></div></section>`)

		h.Raw(`<section class="container pt-5"><h2 class="section-title">Why Parents Contact Us</h2><div class="row">`)
		for _, reason := range []string{
			"Concerned about strangers chatting with their child in games.",
			"Worried for child about in‑game purchases and scams.",
			"Unsure how to report unsafe or inappropriate game activity.",
			"Looking for clear, legal steps to protect their child's online safety.",
		} {
			h.Raw(`<div class="col-12 col-md-6 col-lg-3"><div class="reason-card"><p>`)
			h.Text(reason)
			h.Raw(`</p></div></div>`)
		}
		h.Raw(`</div></section>`)

		h.Raw(`<section class="container pt-5"><h2 class="section-title">How We Help</h2>`)
		h.Render(ctx, bulletList("list-text",
			"Free confidential consultation with our legal team.",
			"Step‑by‑step guidance to address gaming safety concerns.",
			"Support for navigating gaming platform reporting systems.",
			"Understanding your rights and options as a parent.",
		))
		h.Raw(`</section>`)

		h.Raw(`<section class="container pt-5 steps"><h2 class="step-header">Simple 3 Step Process</h2><div class="row">`)
		for i, step := range [][2]string{
			{"Tell us your concern", "Fill out the short form given."},
			{"We review your situation", "Our team will assess and guide you."},
			{"Take action confidently", "With our legal and safety guidance."},
		} {
			h.Raw(`<div class="col-12 col-md-4"><div class="stepNo">`)
			h.Text(string(rune('1' + i)))
			h.Raw(`</div><h5 class="pt-2">`)
			h.Text(step[0])
			h.Raw(`</h5><p>`)
			h.Text(step[1])
			h.Raw(`</p></div>`)
		}
		h.Raw(`</div></section>`)

		h.Raw(`<section class="container pt-5"><h2 class="section-title">Why Families Trust Us</h2>`)
		h.Render(ctx, bulletList("list-text",
			"Experienced legal team in digital safety issues.",
			"Focused on protecting children in online environments.",
			"Support for navigating gaming platform reporting systems.",
			"100% confidential & free initial consultation.",
		))
		h.Raw(`</section>`)

		h.Raw(`<section class="container pt-5 text-center safety-first"><h2 class="fw-bold">Your child&#39;s safety comes first</h2>`)
		h.Raw(`<p class="mb-0">We provide judgment&#8209;free, confidential guidance to help families create a safe online gaming experience.</p></section>`)
		h.Raw(`</div>`)
	})
	return Layout(v.Layout, body)
}

// ChildPage is the child-facing landing page
func ChildPage(v LandingView) templ.Component {
	body := components.Component(func(ctx context.Context, h *components.Writer) {
		h.Raw(`<div class="container-fluid px-0 kids-page"><section class="container pt-4"><div class="row align-items-center">`)
		h.Raw(`<div class="col-12 col-lg-6 col-xl-7 kids-hero">`)
		h.Raw(`<h1 class="kids-hero-title">Safe Gaming Starts Here!</h1>`)
		h.Raw(`<p class="kids-hero-subtitle pb-5">Fun is better when it&#39;s safe &mdash; for you and your friends.</p>`)
		h.Raw(`<p>Parent or guardian? <a`)
		h.Attr("href", v.ParentURL)
		h.Raw(`>Request free guidance</a></p>`)
		h.Raw(`</div><div class="col-12 col-lg-6 col-xl-5 kids-form">`)
		h.Render(ctx, formBox(v))
		h.Raw(`</div></div></section>`)

		h.Raw(`<section class="container pt-5"><div class="row">`)
		h.Raw(`<div class="col-12 col-md-6"><h1 class="kids-section-title">Why Safety Matters</h1>`)
		h.Render(ctx, bulletList("list-text",
			"Keep your games fun and fair.",
			"Avoid strangers or tricky messages in chat.",
			"Know what to do if something feels wrong.",
		))
		h.Raw(`</div><div class="col-12 col-md-6"><h1 class="kids-section-title">What You Can Do</h1>`)
		h.Render(ctx, bulletList("list-text",
			"Always talk to a parent if something online feels strange.",
			"Don't click links from people you don't know.",
			"Keep your personal information private.",
		))
		h.Raw(`</div></div></section></div>`)
	})
	return Layout(v.Layout, body)
}
