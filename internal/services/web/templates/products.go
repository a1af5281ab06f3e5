package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// ProductListView is the data rendered on product listing pages.
type ProductListView struct {
	Heading string
	Intro   string
	// Category is empty on the all-products page.
	Category    content.Category
	Products    []content.CoffeeProduct
	Breadcrumbs []schema.Breadcrumb
}

// ProductList renders the catalog listing with category filters.
func ProductList(loc Localizer, view ProductListView) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		h.render(Breadcrumbs(view.Breadcrumbs))
		pageIntro(h, StaticPageView{Slug: "products", Heading: view.Heading, Intro: view.Intro})

		h.raw(`<div class="container">`)
		h.raw(`<nav class="category-tabs"><ul>`)
		tab := func(href, label string, active bool) {
			h.raw("<li>")
			if active {
				h.link(href, label, "aria-current", "page", "class", "active")
			} else {
				h.link(href, label)
			}
			h.raw("</li>")
		}
		tab(routepath.Localized(locale, routepath.Products), T(loc, "products.all"), view.Category == "")
		for _, category := range content.Categories() {
			tab(
				routepath.ProductCategory(locale, string(category)),
				T(loc, "products.categories."+string(category)+".heading"),
				view.Category == category,
			)
		}
		h.raw("</ul></nav>")

		if len(view.Products) == 0 {
			h.element("p", T(loc, "products.empty"), "class", "empty")
		} else {
			productGrid(h, loc, view.Products)
		}
		h.raw("</div>")
	})
}

// ProductDetailView is the data rendered on a product page.
type ProductDetailView struct {
	Product        content.CoffeeProduct
	Related        []content.CoffeeProduct
	Certifications []content.Certification
	Breadcrumbs    []schema.Breadcrumb
}

// ProductDetail renders one product with its specification sheet.
func ProductDetail(loc Localizer, view ProductDetailView) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		product := view.Product
		h.render(Breadcrumbs(view.Breadcrumbs))

		h.raw(`<article class="container product-detail">`)
		h.raw(`<div class="product-gallery">`)
		for _, image := range product.Images {
			h.raw("<img")
			h.attr("src", image)
			h.attr("alt", product.Name)
			h.raw(">")
		}
		h.raw("</div>")

		h.raw(`<div class="product-summary">`)
		h.element("h1", product.Name)
		if product.Available {
			h.element("span", T(loc, "products.detail.in_stock"), "class", "badge badge-success")
		} else {
			h.element("span", T(loc, "products.detail.out_of_stock"), "class", "badge badge-muted")
		}
		h.element("p", product.Description, "class", "lead")
		h.element("p", T(loc, "products.price_per_kg", product.PricePerKg.StringFixed(2)), "class", "price")
		h.link(routepath.Localized(locale, routepath.Contact)+"#quote", T(loc, "site.common.request_quote"), "class", "btn btn-primary")

		h.raw(`<dl class="facts">`)
		fact := func(key, value string) {
			if value == "" {
				return
			}
			h.raw("<div>")
			h.element("dt", T(loc, "products.detail."+key))
			h.element("dd", value)
			h.raw("</div>")
		}
		fact("origin", product.Origin)
		fact("processing", product.Processing)
		fact("variety", product.Variety)
		fact("grade", product.Grade)
		fact("cupping_score", itoa(product.CuppingScore))
		fact("harvest_season", product.HarvestSeason)
		fact("moisture", product.Moisture)
		fact("defect_rate", product.DefectRate)
		fact("minimum_order", product.MinimumOrder)
		h.raw("</dl></div>")

		h.raw(`<section class="flavor-profile">`)
		h.element("h2", T(loc, "products.detail.flavor_notes"))
		h.raw(`<dl class="facts">`)
		fact("aroma", product.Aroma)
		fact("flavor_notes", product.Flavor)
		fact("acidity", product.Acidity)
		fact("body", product.Body)
		h.raw("</dl></section>")

		if len(product.Specifications) > 0 {
			h.raw(`<section class="specifications">`)
			h.element("h2", T(loc, "products.detail.specifications"))
			h.raw("<table><tbody>")
			for _, spec := range product.Specifications {
				h.raw("<tr>")
				h.element("th", spec.Name, "scope", "row")
				h.element("td", spec.Value)
				h.raw("</tr>")
			}
			h.raw("</tbody></table></section>")
		}

		if len(product.Certifications) > 0 {
			h.raw(`<section class="certifications">`)
			h.element("h2", T(loc, "products.detail.certifications"))
			h.raw("<ul>")
			for _, name := range product.Certifications {
				h.raw("<li>")
				h.element("strong", name)
				if cert, ok := matchCertification(view.Certifications, name); ok {
					h.raw(" ")
					h.element("span", cert.Issuer, "class", "muted")
				}
				h.raw("</li>")
			}
			h.raw("</ul></section>")
		}
		h.raw("</article>")

		if len(view.Related) > 0 {
			h.raw(`<section class="section related"><div class="container">`)
			h.element("h2", T(loc, "products.detail.related"))
			productGrid(h, loc, view.Related)
			h.raw("</div></section>")
		}
		h.raw(`<div class="container">`)
		h.link(routepath.Localized(locale, routepath.Products), T(loc, "products.detail.back"), "class", "back-link")
		h.raw("</div>")
	})
}

// matchCertification finds the company certificate a product label refers to,
// e.g. "Organic" matches "Organic Certification".
func matchCertification(certs []content.Certification, label string) (content.Certification, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return content.Certification{}, false
	}
	for _, cert := range certs {
		if strings.Contains(strings.ToLower(cert.Name), needle) {
			return cert, true
		}
	}
	return content.Certification{}, false
}
