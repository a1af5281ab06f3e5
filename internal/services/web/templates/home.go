package templates

import (
	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// HomeView is the data rendered on the locale home page.
type HomeView struct {
	Products []content.CoffeeProduct
	Posts    []content.Post
	Company  content.CompanyInfo
}

var homeFeatures = []string{"quality", "sustainability", "traceability", "logistics"}

// Home renders the landing page body.
func Home(loc Localizer, view HomeView) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)

		h.raw(`<section class="hero"><div class="container">`)
		h.element("p", T(loc, "home.hero.eyebrow"), "class", "eyebrow")
		h.element("h1", T(loc, "home.hero.title"))
		h.element("p", T(loc, "home.hero.subtitle"), "class", "lead")
		h.raw(`<div class="actions">`)
		h.link(routepath.Localized(locale, routepath.Products), T(loc, "home.hero.cta_primary"), "class", "btn btn-primary")
		h.link(routepath.Localized(locale, routepath.Contact)+"#quote", T(loc, "home.hero.cta_secondary"), "class", "btn btn-secondary")
		h.raw("</div></div></section>")

		h.raw(`<section class="section features"><div class="container">`)
		h.element("h2", T(loc, "home.features.title"))
		h.element("p", T(loc, "home.features.subtitle"), "class", "lead")
		h.raw(`<div class="grid">`)
		for _, feature := range homeFeatures {
			h.raw(`<div class="feature">`)
			h.element("h3", T(loc, "home.features.items."+feature+".title"))
			h.element("p", T(loc, "home.features.items."+feature+".body"))
			h.raw("</div>")
		}
		h.raw("</div></div></section>")

		if len(view.Products) > 0 {
			h.raw(`<section class="section featured-products"><div class="container">`)
			h.element("h2", T(loc, "home.products.title"))
			h.element("p", T(loc, "home.products.subtitle"), "class", "lead")
			productGrid(h, loc, view.Products)
			h.link(routepath.Localized(locale, routepath.Products), T(loc, "site.common.view_all"), "class", "btn btn-secondary")
			h.raw("</div></section>")
		}

		h.raw(`<section class="section stats"><div class="container">`)
		h.element("h2", T(loc, "home.stats.title"))
		h.raw(`<dl class="stat-grid">`)
		stat := func(label, value string) {
			h.raw("<div>")
			h.element("dt", label)
			h.element("dd", value)
			h.raw("</div>")
		}
		stat(T(loc, "home.stats.founded"), view.Company.Founded)
		stat(T(loc, "home.stats.countries"), i18n.FormatNumber(locale, float64(len(view.Company.ExportCountries)))+"+")
		stat(T(loc, "home.stats.daily_capacity"), view.Company.Capacity.DailyCherry)
		stat(T(loc, "home.stats.annual_export"), view.Company.Capacity.AnnualExport)
		h.raw("</dl></div></section>")

		if len(view.Posts) > 0 {
			h.raw(`<section class="section latest-insights"><div class="container">`)
			h.element("h2", T(loc, "home.insights.title"))
			h.element("p", T(loc, "home.insights.subtitle"), "class", "lead")
			postGrid(h, loc, view.Posts)
			h.link(routepath.Localized(locale, routepath.Insights), T(loc, "site.common.view_all"), "class", "btn btn-secondary")
			h.raw("</div></section>")
		}

		h.raw(`<section class="section cta"><div class="container">`)
		h.element("h2", T(loc, "home.cta.title"))
		h.element("p", T(loc, "home.cta.body"))
		h.link(routepath.Localized(locale, routepath.Contact)+"#quote", T(loc, "home.cta.button"), "class", "btn btn-primary")
		h.raw("</div></section>")
	})
}
