package insights

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
	apperrors "github.com/thegreatbeans/web/internal/services/web/platform/errors"
	"github.com/thegreatbeans/web/internal/services/web/platform/pagerender"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
	"github.com/thegreatbeans/web/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) insightsCrumb(r *http.Request) schema.Breadcrumb {
	return schema.Breadcrumb{
		Name: h.Localizer(r).T("site.nav.insights"),
		URL:  routepath.Localized(h.Locale(r), routepath.Insights),
	}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	crumbs := h.Breadcrumbs(r, h.insightsCrumb(r))
	meta := h.Meta(r, routepath.Insights, "insights.meta.title", "insights.meta.description")
	meta.Schemas = h.BreadcrumbSchema(r, crumbs)

	h.WritePage(w, r, pagerender.Page{
		Meta: meta,
		Body: templates.InsightList(h.Localizer(r), templates.InsightListView{
			Featured:    content.FeaturedPosts(),
			Posts:       content.Posts(),
			Breadcrumbs: crumbs,
		}),
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	post, ok := content.PostBySlug(slug)
	if !ok {
		h.WriteError(w, r, apperrors.MissingResource("insights.not_found.title", "insights.not_found.description", fmt.Sprintf("post %q not found", slug)))
		return
	}

	loc := h.Localizer(r)
	crumbs := h.Breadcrumbs(r, h.insightsCrumb(r), schema.Breadcrumb{
		Name: post.Title,
		URL:  routepath.Insight(h.Locale(r), post.Slug),
	})
	meta := h.Meta(r, routepath.InsightsPrefix+post.Slug, "", "")
	meta.Title = post.Title + " - " + loc.T("site.name")
	meta.Description = post.Excerpt
	meta.Keywords = strings.Join(post.Tags, ", ")
	meta.Type = "article"
	meta.Image = post.FeaturedImage

	data := h.SchemaData(r)
	data.Post = &post
	if doc, ok := schema.Generate(schema.KindBlogPosting, data); ok {
		meta.Schemas = append(meta.Schemas, doc)
	}
	meta.Schemas = append(meta.Schemas, h.BreadcrumbSchema(r, crumbs)...)

	h.WritePage(w, r, pagerender.Page{
		Meta: meta,
		Body: templates.InsightDetail(loc, templates.InsightDetailView{
			Post:        post,
			Related:     relatedPosts(post),
			Breadcrumbs: crumbs,
		}),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

// relatedPosts returns other published posts from the same category.
func relatedPosts(post content.Post) []content.Post {
	related := make([]content.Post, 0, relatedLimit)
	for _, candidate := range content.PostsByCategory(post.Category) {
		if candidate.Slug == post.Slug {
			continue
		}
		related = append(related, candidate)
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}
