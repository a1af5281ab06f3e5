package templates

import (
	"github.com/a-h/templ"
	"github.com/thegreatbeans/web/internal/services/content"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// ContactView is the data rendered on the contact page.
type ContactView struct {
	Page     StaticPageView
	Company  content.CompanyInfo
	Products []content.CoffeeProduct
}

// Contact renders company contact details and the quote request form.
func Contact(loc Localizer, view ContactView) templ.Component {
	return component(func(h *htmlWriter) {
		locale := localeOf(loc)
		h.render(Breadcrumbs(view.Page.Breadcrumbs))
		pageIntro(h, view.Page)

		h.raw(`<div class="container contact-grid">`)
		h.raw(`<aside class="contact-details">`)
		for _, section := range view.Page.Sections {
			h.open("section", "id", section.ID)
			h.element("h2", section.Title)
			h.element("p", section.Body)
			h.close("section")
		}
		h.open("address")
		h.element("strong", view.Company.LegalName)
		h.raw("<br>")
		h.text(view.Company.Address)
		h.raw("<br>")
		h.link("tel:"+view.Company.Phone, view.Company.Phone)
		h.raw("<br>")
		h.link("mailto:"+view.Company.Email, view.Company.Email)
		h.close("address")
		h.raw("</aside>")

		h.open("form",
			"id", "quote",
			"class", "quote-form",
			"method", "post",
			"action", routepath.APIQuote,
			"data-locale", string(locale),
		)
		h.element("h2", T(loc, "quote.form.heading"))
		h.element("p", T(loc, "quote.form.intro"))
		h.raw(`<div class="form-status" role="status" aria-live="polite"></div>`)

		textField(h, loc, "companyName", "quote.form.company_name", "text", true, "minlength", "2", "autocomplete", "organization")
		textField(h, loc, "contactPerson", "quote.form.contact_person", "text", true, "minlength", "2", "autocomplete", "name")
		textField(h, loc, "email", "quote.form.email", "email", true, "autocomplete", "email")
		textField(h, loc, "phone", "quote.form.phone", "tel", false, "autocomplete", "tel")
		textField(h, loc, "country", "quote.form.country", "text", true, "minlength", "2", "list", "quote-countries", "autocomplete", "country-name")
		h.raw(`<datalist id="quote-countries">`)
		for _, country := range view.Company.ExportCountries {
			h.raw("<option")
			h.attr("value", country)
			h.raw(">")
		}
		h.raw("</datalist>")

		h.raw(`<fieldset class="field" data-field="interestedProducts">`)
		h.element("legend", T(loc, "quote.form.products"))
		for _, product := range view.Products {
			h.raw(`<label class="checkbox"><input type="checkbox" name="interestedProducts"`)
			h.attr("value", product.Slug)
			h.raw("> ")
			h.text(product.Name)
			h.raw("</label>")
		}
		h.raw("</fieldset>")

		textField(h, loc, "quantityInTons", "quote.form.quantity", "number", true, "min", "1", "max", "10000", "step", "any")
		textField(h, loc, "packagingRequirements", "quote.form.packaging", "text", false)
		textField(h, loc, "deliveryTimeline", "quote.form.delivery", "text", false)

		h.raw(`<div class="field" data-field="message">`)
		h.element("label", T(loc, "quote.form.message"), "for", "quote-message")
		h.raw(`<textarea id="quote-message" name="message" rows="5"></textarea></div>`)

		h.raw(`<input type="hidden" name="locale"`)
		h.attr("value", string(locale))
		h.raw(">")
		h.element("button", T(loc, "quote.form.submit"), "type", "submit", "class", "btn btn-primary")
		h.close("form")
		h.raw("</div>")
	})
}

func textField(h *htmlWriter, loc Localizer, name string, labelKey string, inputType string, required bool, attrs ...string) {
	id := "quote-" + name
	h.open("div", "class", "field", "data-field", name)
	h.element("label", T(loc, labelKey), "for", id)
	h.raw("<input")
	h.attr("id", id)
	h.attr("name", name)
	h.attr("type", inputType)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	if required {
		h.raw(" required")
	}
	h.raw(`><p class="field-error" hidden></p></div>`)
}
