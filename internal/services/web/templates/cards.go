package templates

import (
	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// ProductCard renders a product summary tile.
func ProductCard(loc Localizer, product content.CoffeeProduct) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		href := routepath.Product(locale, product.Slug)
		h.raw(`<article class="card product-card">`)
		if image := product.PrimaryImage(); image != "" {
			h.raw("<img")
			h.attr("src", image)
			h.attr("alt", product.Name)
			h.raw(` loading="lazy">`)
		}
		h.raw(`<div class="card-body">`)
		if product.Featured {
			h.element("span", T(loc, "site.common.featured"), "class", "badge")
		}
		h.open("h3")
		h.link(href, product.Name)
		h.close("h3")
		h.element("p", product.Origin, "class", "muted")
		h.element("p", product.Variety+" · "+product.Processing)
		h.raw(`<p class="score">`)
		h.text(T(loc, "products.detail.cupping_score") + ": " + itoa(product.CuppingScore))
		h.raw("</p>")
		h.element("p", T(loc, "products.price_per_kg", product.PricePerKg.StringFixed(2)), "class", "price")
		h.link(href, T(loc, "site.common.view_details"), "class", "btn btn-secondary")
		h.raw("</div></article>")
	})
}

// PostCard renders an article summary tile.
func PostCard(loc Localizer, post content.Post) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		href := routepath.Insight(locale, post.Slug)
		h.raw(`<article class="card post-card">`)
		if post.FeaturedImage != "" {
			h.raw("<img")
			h.attr("src", post.FeaturedImage)
			h.attr("alt", post.Title)
			h.raw(` loading="lazy">`)
		}
		h.raw(`<div class="card-body">`)
		h.element("span", post.Category, "class", "badge")
		h.open("h3")
		h.link(href, post.Title)
		h.close("h3")
		h.element("p", post.Excerpt)
		h.raw(`<p class="muted">`)
		h.open("time", "datetime", post.PublishedAt.Format("2006-01-02"))
		h.text(i18n.FormatDate(locale, post.PublishedAt))
		h.close("time")
		h.text(" · " + T(loc, "insights.reading_time", post.ReadingTime))
		h.raw("</p>")
		h.link(href, T(loc, "site.common.read_more"), "class", "btn btn-secondary")
		h.raw("</div></article>")
	})
}

func productGrid(h *htmlWriter, loc Localizer, products []content.CoffeeProduct) {
	h.raw(`<div class="grid">`)
	for _, product := range products {
		h.render(ProductCard(loc, product))
	}
	h.raw("</div>")
}

func postGrid(h *htmlWriter, loc Localizer, posts []content.Post) {
	h.raw(`<div class="grid">`)
	for _, post := range posts {
		h.render(PostCard(loc, post))
	}
	h.raw("</div>")
}
