package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// InsightListView is the data rendered on the insights index.
type InsightListView struct {
	Featured    []content.Post
	Posts       []content.Post
	Breadcrumbs []schema.Breadcrumb
}

// InsightList renders featured and all published articles.
func InsightList(loc Localizer, view InsightListView) templ.Component {
	return component(func(h *htmlWriter) {
		h.render(Breadcrumbs(view.Breadcrumbs))
		pageIntro(h, StaticPageView{
			Slug:    "insights",
			Heading: T(loc, "insights.heading"),
			Intro:   T(loc, "insights.intro"),
		})
		h.raw(`<div class="container">`)
		if len(view.Featured) > 0 {
			h.raw(`<section class="featured-posts">`)
			h.element("h2", T(loc, "insights.featured"))
			postGrid(h, loc, view.Featured)
			h.raw("</section>")
		}
		h.raw(`<section class="all-posts">`)
		h.element("h2", T(loc, "insights.all"))
		if len(view.Posts) == 0 {
			h.element("p", T(loc, "insights.empty"), "class", "empty")
		} else {
			postGrid(h, loc, view.Posts)
		}
		h.raw("</section></div>")
	})
}

// InsightDetailView is the data rendered on an article page.
type InsightDetailView struct {
	Post        content.Post
	Related     []content.Post
	Breadcrumbs []schema.Breadcrumb
}

// InsightDetail renders one article.
func InsightDetail(loc Localizer, view InsightDetailView) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		post := view.Post
		h.render(Breadcrumbs(view.Breadcrumbs))

		h.raw(`<article class="container post-detail">`)
		h.raw("<header>")
		h.element("span", post.Category, "class", "badge")
		h.element("h1", post.Title)
		h.raw(`<p class="byline">`)
		h.text(T(loc, "insights.by", post.Author))
		h.raw(" · ")
		h.open("time", "datetime", post.PublishedAt.Format("2006-01-02"))
		h.text(i18n.FormatDate(locale, post.PublishedAt))
		h.close("time")
		h.raw(" · ")
		h.text(T(loc, "insights.reading_time", post.ReadingTime))
		h.raw("</p></header>")

		if post.FeaturedImage != "" {
			h.raw("<img")
			h.attr("src", post.FeaturedImage)
			h.attr("alt", post.Title)
			h.raw(` class="featured-image">`)
		}
		h.element("p", post.Excerpt, "class", "lead")
		h.raw(`<div class="post-body">`)
		for _, paragraph := range strings.Split(post.Content, "\n\n") {
			if paragraph = strings.TrimSpace(paragraph); paragraph != "" {
				h.element("p", paragraph)
			}
		}
		h.raw("</div>")

		if len(post.Tags) > 0 {
			h.raw(`<footer class="post-tags">`)
			h.element("h2", T(loc, "insights.tags"))
			h.raw("<ul>")
			for _, tag := range post.Tags {
				h.element("li", tag, "class", "tag")
			}
			h.raw("</ul></footer>")
		}
		h.raw("</article>")

		if len(view.Related) > 0 {
			h.raw(`<section class="section related"><div class="container">`)
			h.element("h2", T(loc, "home.insights.title"))
			postGrid(h, loc, view.Related)
			h.raw("</div></section>")
		}
		h.raw(`<div class="container">`)
		h.link(routepath.Localized(locale, routepath.Insights), T(loc, "insights.back"), "class", "back-link")
		h.raw("</div>")
	})
}
