package templates

import (
	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/services/seo/schema"
)

// Section is one titled block of a translation-driven page.
type Section struct {
	ID    string
	Title string
	Body  string
}

// StaticPageView is the resolved copy of a translation-driven page.
type StaticPageView struct {
	Slug        string
	Heading     string
	Intro       string
	Sections    []Section
	Breadcrumbs []schema.Breadcrumb
}

// StaticPage renders a page built from translation keys.
func StaticPage(view StaticPageView) templ.Component {
	return component(func(h *htmlWriter) {
		h.render(Breadcrumbs(view.Breadcrumbs))
		pageIntro(h, view)
		pageSections(h, view.Sections)
	})
}

func pageIntro(h *htmlWriter, view StaticPageView) {
	h.open("section", "class", "page-hero", "data-page", view.Slug)
	h.raw(`<div class="container">`)
	h.element("h1", view.Heading)
	if view.Intro != "" {
		h.element("p", view.Intro, "class", "lead")
	}
	h.raw("</div></section>")
}

func pageSections(h *htmlWriter, sections []Section) {
	if len(sections) == 0 {
		return
	}
	h.raw(`<div class="container page-sections">`)
	for _, section := range sections {
		h.open("section", "id", section.ID, "class", "page-section")
		h.element("h2", section.Title)
		h.element("p", section.Body)
		h.close("section")
	}
	h.raw("</div>")
}
