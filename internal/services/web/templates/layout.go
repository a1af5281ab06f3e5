package templates

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
	"github.com/thegreatbeans/web/internal/services/shared/i18nhttp"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// PageMeta carries the document head data for one page.
type PageMeta struct {
	Title       string
	Description string
	Keywords    string
	// Path is the locale-less page path; "/" is the locale home.
	Path    string
	BaseURL string
	// Type is the Open Graph type; empty means "website".
	Type    string
	Image   string
	Schemas []schema.Document
	NoIndex bool
	Year    int
}

func (m PageMeta) ogType() string {
	if m.Type == "" {
		return "website"
	}
	return m.Type
}

func (m PageMeta) path() string {
	if m.Path == "" {
		return routepath.Home
	}
	return m.Path
}

// Head renders the metadata elements of the document head.
func Head(meta PageMeta, loc Localizer) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		canonical := routepath.Absolute(meta.BaseURL, routepath.Localized(locale, meta.path()))

		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", meta.Title)
		h.raw(`<meta name="description"`)
		h.attr("content", meta.Description)
		h.raw(">")
		if meta.Keywords != "" {
			h.raw(`<meta name="keywords"`)
			h.attr("content", meta.Keywords)
			h.raw(">")
		}
		if meta.NoIndex {
			h.raw(`<meta name="robots" content="noindex">`)
		}
		h.raw(`<link rel="canonical"`)
		h.href(canonical)
		h.raw(">")
		for _, alt := range i18n.Supported() {
			h.raw(`<link rel="alternate"`)
			h.attr("hreflang", string(alt))
			h.href(routepath.Absolute(meta.BaseURL, routepath.Localized(alt, meta.path())))
			h.raw(">")
		}
		h.raw(`<link rel="alternate" hreflang="x-default"`)
		h.href(routepath.Absolute(meta.BaseURL, routepath.Localized(i18n.Default, meta.path())))
		h.raw(">")

		property := func(name, value string) {
			h.raw(`<meta`)
			h.attr("property", name)
			h.attr("content", value)
			h.raw(">")
		}
		property("og:title", meta.Title)
		property("og:description", meta.Description)
		property("og:type", meta.ogType())
		property("og:url", canonical)
		property("og:site_name", T(loc, "site.name"))
		property("og:locale", i18n.OpenGraphLocale(locale))
		property("og:locale:alternate", i18n.OpenGraphLocale(i18n.Alternate(locale)))
		if meta.Image != "" {
			property("og:image", routepath.Absolute(meta.BaseURL, meta.Image))
		}
		h.raw(`<meta name="twitter:card" content="summary_large_image">`)
		h.raw(`<meta name="twitter:title"`)
		h.attr("content", meta.Title)
		h.raw(`><meta name="twitter:description"`)
		h.attr("content", meta.Description)
		h.raw(">")

		h.raw(`<link rel="icon" type="image/svg+xml" href="/static/logo.svg">`)
		h.raw(`<link rel="stylesheet" href="/static/site.css">`)
		for _, doc := range meta.Schemas {
			h.render(schema.Script(doc))
		}
	})
}

// Layout renders the full document around the component attached with
// templ.WithChildren.
func Layout(meta PageMeta, loc Localizer, company content.CompanyInfo) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", string(locale))
		h.raw("<head>")
		h.render(Head(meta, loc))
		h.raw("</head><body>")
		h.link("#main-content", T(loc, "site.skip_to_content"), "class", "skip-link")
		h.render(Header(loc, meta.path()))
		h.raw(`<main id="main-content">`)
		h.children()
		h.raw("</main>")
		h.render(Footer(loc, company, meta.Year))
		h.raw(`<script src="/static/site.js" defer></script>`)
		h.raw("</body></html>")
	})
}

// Header renders the site navigation and language switcher for path.
func Header(loc Localizer, path string) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		h.raw(`<header class="site-header"><div class="container header-inner">`)
		h.open("a", "href", routepath.Localized(locale, routepath.Home), "class", "brand")
		h.raw(`<img src="/static/logo.svg" alt="" width="40" height="40">`)
		h.element("span", T(loc, "site.name"))
		h.close("a")

		h.open("nav", "class", "site-nav", "aria-label", T(loc, "site.name"))
		h.raw("<ul>")
		for _, item := range navItems {
			href := routepath.Localized(locale, item.path)
			h.raw("<li>")
			if item.path == path {
				h.link(href, T(loc, item.key), "aria-current", "page")
			} else {
				h.link(href, T(loc, item.key))
			}
			h.raw("</li>")
		}
		h.raw("</ul></nav>")

		h.link(routepath.Localized(locale, routepath.Contact)+"#quote", T(loc, "site.nav.quote"), "class", "btn btn-primary")

		h.open("div", "class", "language-switcher", "role", "group", "aria-label", T(loc, "site.nav.language"))
		for _, option := range i18nhttp.LanguageOptions(locale, path) {
			attrs := []string{
				"href", option.URL,
				"hreflang", string(option.Locale),
				"lang", string(option.Locale),
				"title", T(loc, "site.nav.switch_to", option.NativeName),
			}
			if option.Active {
				attrs = append(attrs, "aria-current", "true", "class", "active")
			}
			h.open("a", attrs...)
			h.element("span", option.Flag, "aria-hidden", "true")
			h.raw(" ")
			h.text(option.NativeName)
			h.close("a")
		}
		h.raw("</div></div></header>")
	})
}

type navItem struct {
	path string
	key  string
}

var navItems = []navItem{
	{path: routepath.Home, key: "site.nav.home"},
	{path: routepath.AboutUs, key: "site.nav.about"},
	{path: routepath.OurProcess, key: "site.nav.process"},
	{path: routepath.Products, key: "site.nav.products"},
	{path: routepath.Insights, key: "site.nav.insights"},
	{path: routepath.Sustainability, key: "site.nav.sustainability"},
	{path: routepath.Contact, key: "site.nav.contact"},
}

type footerColumn struct {
	key   string
	links []navItem
}

var footerColumns = []footerColumn{
	{key: "site.footer.company", links: []navItem{
		{path: routepath.AboutUs, key: "site.nav.about"},
		{path: routepath.OurProcess, key: "site.nav.process"},
		{path: routepath.Sustainability, key: "site.nav.sustainability"},
		{path: routepath.Insights, key: "site.nav.insights"},
		{path: routepath.Careers, key: "site.footer.careers"},
	}},
	{key: "site.footer.support", links: []navItem{
		{path: routepath.Contact, key: "site.footer.contact"},
		{path: routepath.FAQ, key: "site.footer.faq"},
		{path: routepath.TradeTerms, key: "site.footer.trade_terms"},
		{path: routepath.Shipping, key: "site.footer.shipping"},
		{path: routepath.Returns, key: "site.footer.returns"},
	}},
}

var legalLinks = []navItem{
	{path: routepath.PrivacyPolicy, key: "site.footer.privacy"},
	{path: routepath.TermsOfService, key: "site.footer.terms"},
	{path: routepath.CookiePolicy, key: "site.footer.cookies"},
}

// Footer renders the site footer with company contact details.
func Footer(loc Localizer, company content.CompanyInfo, year int) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		h.raw(`<footer class="site-footer"><div class="container footer-grid">`)
		h.raw(`<div class="footer-brand">`)
		h.element("p", T(loc, "site.name"), "class", "footer-title")
		h.element("p", T(loc, "site.footer.blurb"))
		h.open("address")
		h.element("span", company.Address)
		h.raw("<br>")
		h.link("tel:"+company.Phone, company.Phone)
		h.raw("<br>")
		h.link("mailto:"+company.Email, company.Email)
		h.close("address")
		h.raw("</div>")

		h.raw(`<div class="footer-column">`)
		h.element("h2", T(loc, "site.footer.products"))
		h.raw("<ul>")
		for _, category := range content.Categories() {
			h.raw("<li>")
			h.link(routepath.ProductCategory(locale, string(category)), T(loc, "products.categories."+string(category)+".heading"))
			h.raw("</li>")
		}
		h.raw("</ul></div>")

		for _, column := range footerColumns {
			h.raw(`<div class="footer-column">`)
			h.element("h2", T(loc, column.key))
			h.raw("<ul>")
			for _, item := range column.links {
				h.raw("<li>")
				h.link(routepath.Localized(locale, item.path), T(loc, item.key))
				h.raw("</li>")
			}
			h.raw("</ul></div>")
		}
		h.raw("</div>")

		h.raw(`<div class="container footer-bottom">`)
		h.element("p", T(loc, "site.footer.rights", itoa(year)))
		h.raw(`<ul class="legal-links">`)
		for _, item := range legalLinks {
			h.raw("<li>")
			h.link(routepath.Localized(locale, item.path), T(loc, item.key))
			h.raw("</li>")
		}
		h.raw("</ul>")
		if len(company.Social) > 0 {
			h.raw(`<ul class="social-links">`)
			for _, social := range company.Social {
				h.raw("<li>")
				h.link(social.URL, social.Network, "rel", "noopener", "target", "_blank")
				h.raw("</li>")
			}
			h.raw("</ul>")
		}
		h.raw("</div></footer>")
	})
}

// Breadcrumbs renders the visible breadcrumb trail. The last crumb is the
// current page.
func Breadcrumbs(crumbs []schema.Breadcrumb) templ.Component {
	return component(func(h *htmlWriter) {
		if len(crumbs) == 0 {
			return
		}
		h.raw(`<nav class="breadcrumbs container" aria-label="Breadcrumb"><ol>`)
		for i, crumb := range crumbs {
			h.raw("<li>")
			if i == len(crumbs)-1 {
				h.element("span", crumb.Name, "aria-current", "page")
			} else {
				h.link(crumb.URL, crumb.Name)
			}
			h.raw("</li>")
		}
		h.raw("</ol></nav>")
	})
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
