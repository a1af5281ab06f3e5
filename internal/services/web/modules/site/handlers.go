package site

import (
	"net/http"

	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
	"github.com/thegreatbeans/web/internal/services/web/platform/httpx"
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

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	meta := h.Meta(r, routepath.Home, "home.meta.title", "home.meta.description")
	meta.Keywords = h.Localizer(r).T("home.meta.keywords")
	meta.Schemas = h.organizationSchema(r)

	view := templates.HomeView{
		Products: content.FeaturedProducts(),
		Posts:    content.FeaturedPosts(),
		Company:  h.Company(),
	}
	h.WritePage(w, r, pagerender.Page{
		Meta: meta,
		Body: templates.Home(h.Localizer(r), view),
	})
}

func (h handlers) handlePage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc := h.Localizer(r)
		view := h.staticPageView(r, slug)

		meta := h.Meta(r, "/"+slug, pageKey(slug, "title"), pageKey(slug, "description"))
		meta.Schemas = h.BreadcrumbSchema(r, view.Breadcrumbs)
		if organizationPages[slug] {
			meta.Schemas = append(h.organizationSchema(r), meta.Schemas...)
		}

		body := templates.StaticPage(view)
		if slug == "contact" {
			body = templates.Contact(loc, templates.ContactView{
				Page:     view,
				Company:  h.Company(),
				Products: content.Products(),
			})
		}
		h.WritePage(w, r, pagerender.Page{Meta: meta, Body: body})
	}
}

func (h handlers) handleLegacyProduct(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, withQuery(routepath.Product(h.Locale(r), r.PathValue("slug")), r), http.StatusPermanentRedirect)
}

func (h handlers) handleLegacyPost(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, withQuery(routepath.Insight(h.Locale(r), r.PathValue("slug")), r), http.StatusPermanentRedirect)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}

func (h handlers) staticPageView(r *http.Request, slug string) templates.StaticPageView {
	loc := h.Localizer(r)
	heading := loc.T(pageKey(slug, "heading"))
	sections := make([]templates.Section, 0, len(pageSections[slug]))
	for _, id := range pageSections[slug] {
		sections = append(sections, templates.Section{
			ID:    id,
			Title: loc.T(sectionKey(slug, id, "title")),
			Body:  loc.T(sectionKey(slug, id, "body")),
		})
	}
	return templates.StaticPageView{
		Slug:     slug,
		Heading:  heading,
		Intro:    loc.T(pageKey(slug, "intro")),
		Sections: sections,
		Breadcrumbs: h.Breadcrumbs(r, schema.Breadcrumb{
			Name: heading,
			URL:  routepath.Page(h.Locale(r), slug),
		}),
	}
}

func (h handlers) organizationSchema(r *http.Request) []schema.Document {
	doc, ok := schema.Generate(schema.KindOrganization, h.SchemaData(r))
	if !ok {
		return nil
	}
	return []schema.Document{doc}
}

func withQuery(target string, r *http.Request) string {
	if r == nil || r.URL == nil || r.URL.RawQuery == "" {
		return target
	}
	return target + "?" + r.URL.RawQuery
}
