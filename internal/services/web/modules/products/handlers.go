package products

import (
	"fmt"
	"net/http"

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

func (h handlers) productsCrumb(r *http.Request) schema.Breadcrumb {
	return schema.Breadcrumb{
		Name: h.Localizer(r).T("site.nav.products"),
		URL:  routepath.Localized(h.Locale(r), routepath.Products),
	}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	loc := h.Localizer(r)
	crumbs := h.Breadcrumbs(r, h.productsCrumb(r))
	meta := h.Meta(r, routepath.Products, "products.meta.title", "products.meta.description")
	meta.Schemas = h.BreadcrumbSchema(r, crumbs)

	h.WritePage(w, r, pagerender.Page{
		Meta: meta,
		Body: templates.ProductList(loc, templates.ProductListView{
			Heading:     loc.T("products.heading"),
			Intro:       loc.T("products.intro"),
			Products:    content.Products(),
			Breadcrumbs: crumbs,
		}),
	})
}

func (h handlers) handleCategory(category content.Category) http.HandlerFunc {
	keyPrefix := "products.categories." + string(category) + "."
	return func(w http.ResponseWriter, r *http.Request) {
		listed := content.ProductsByCategory(category)
		if len(listed) == 0 {
			h.WriteNotFound(w, r)
			return
		}
		loc := h.Localizer(r)
		heading := loc.T(keyPrefix + "heading")
		crumbs := h.Breadcrumbs(r, h.productsCrumb(r), schema.Breadcrumb{
			Name: heading,
			URL:  routepath.ProductCategory(h.Locale(r), string(category)),
		})
		meta := h.Meta(r, routepath.ProductsPrefix+string(category), keyPrefix+"title", keyPrefix+"description")
		meta.Schemas = h.BreadcrumbSchema(r, crumbs)

		h.WritePage(w, r, pagerender.Page{
			Meta: meta,
			Body: templates.ProductList(loc, templates.ProductListView{
				Heading:     heading,
				Intro:       loc.T(keyPrefix + "intro"),
				Category:    category,
				Products:    listed,
				Breadcrumbs: crumbs,
			}),
		})
	}
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	product, ok := content.ProductBySlug(slug)
	if !ok {
		h.WriteError(w, r, apperrors.MissingResource("products.not_found.title", "products.not_found.description", fmt.Sprintf("product %q not found", slug)))
		return
	}

	loc := h.Localizer(r)
	crumbs := h.Breadcrumbs(r, h.productsCrumb(r), schema.Breadcrumb{
		Name: product.Name,
		URL:  routepath.Product(h.Locale(r), product.Slug),
	})
	meta := h.Meta(r, routepath.ProductsPrefix+product.Slug, "", "")
	meta.Title = product.Name + " - " + loc.T("site.name")
	meta.Description = product.Description
	meta.Image = product.PrimaryImage()

	data := h.SchemaData(r)
	data.Product = &product
	if doc, ok := schema.Generate(schema.KindProduct, data); ok {
		meta.Schemas = append(meta.Schemas, doc)
	}
	meta.Schemas = append(meta.Schemas, h.BreadcrumbSchema(r, crumbs)...)

	h.WritePage(w, r, pagerender.Page{
		Meta: meta,
		Body: templates.ProductDetail(loc, templates.ProductDetailView{
			Product:        product,
			Related:        content.RelatedProducts(product.Slug, relatedLimit),
			Certifications: content.Certifications(),
			Breadcrumbs:    crumbs,
		}),
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
