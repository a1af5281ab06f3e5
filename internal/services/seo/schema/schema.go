// Package schema builds schema.org JSON-LD documents for site pages.
package schema

import (
	"encoding/json"
	"strings"
	"time"

	platformi18n "github.com/thegreatbeans/web/internal/platform/i18n"
	"github.com/thegreatbeans/web/internal/services/content"
)

const schemaContext = "https://schema.org"

// priceValidity is how long published offers stay valid.
const priceValidity = 30 * 24 * time.Hour

// Kind selects the document template.
type Kind string

const (
	KindProduct        Kind = "product"
	KindOrganization   Kind = "organization"
	KindBlogPosting    Kind = "blogPosting"
	KindBreadcrumbList Kind = "breadcrumbList"
)

// Document is one JSON-LD object.
type Document map[string]any

// Breadcrumb is one entry of a breadcrumb trail. URL may be site-relative.
type Breadcrumb struct {
	Name string
	URL  string
}

// Data carries the record a document is generated from.
type Data struct {
	Product     *content.CoffeeProduct
	Post        *content.Post
	Company     *content.CompanyInfo
	Breadcrumbs []Breadcrumb
	// Locale is the rendering locale; it drives inLanguage and page ids.
	Locale platformi18n.Locale
	// BaseURL makes relative URLs absolute. Empty leaves them unchanged.
	BaseURL string
	// Now anchors offer validity; zero means time.Now.
	Now time.Time
}

// Generate builds the document for kind. It reports false for an unknown
// kind or when the record that kind needs is missing.
func Generate(kind Kind, data Data) (Document, bool) {
	switch kind {
	case KindProduct:
		if data.Product == nil {
			return nil, false
		}
		return productDocument(*data.Product, data), true
	case KindOrganization:
		company := content.Company()
		if data.Company != nil {
			company = *data.Company
		}
		return organizationDocument(company, data), true
	case KindBlogPosting:
		if data.Post == nil {
			return nil, false
		}
		return blogPostingDocument(*data.Post, data), true
	case KindBreadcrumbList:
		if data.Breadcrumbs == nil {
			return nil, false
		}
		return breadcrumbDocument(data.Breadcrumbs, data), true
	default:
		return nil, false
	}
}

func absoluteURL(base, ref string) string {
	if ref == "" || base == "" || strings.Contains(ref, "://") {
		return ref
	}
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return base + ref
}

func brandOrganization(company content.CompanyInfo) Document {
	return Document{"@type": "Organization", "name": company.Name, "url": company.Website}
}

func productDocument(product content.CoffeeProduct, data Data) Document {
	company := content.Company()
	now := data.Now
	if now.IsZero() {
		now = time.Now()
	}

	images := make([]Document, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, Document{
			"@type":   "ImageObject",
			"url":     absoluteURL(data.BaseURL, image),
			"caption": product.Name,
		})
	}

	availability := "https://schema.org/OutOfStock"
	if product.Available {
		availability = "https://schema.org/InStock"
	}

	property := func(name, value string) Document {
		return Document{"@type": "PropertyValue", "name": name, "value": value}
	}

	doc := Document{
		"@context":     schemaContext,
		"@type":        "Product",
		"name":         product.Name,
		"description":  product.Description,
		"sku":          product.ID,
		"brand":        Document{"@type": "Brand", "name": company.Name},
		"manufacturer": brandOrganization(company),
		"image":        images,
		"offers": Document{
			"@type":           "Offer",
			"availability":    availability,
			"priceCurrency":   "USD",
			"price":           json.Number(product.PricePerKg.StringFixed(2)),
			"priceValidUntil": now.UTC().Add(priceValidity).Format(time.DateOnly),
			"seller":          Document{"@type": "Organization", "name": company.Name},
		},
		"additionalProperty": []Document{
			property("Origin", product.Origin),
			property("Processing Method", product.Processing),
			property("Grade", product.Grade),
			property("Variety", product.Variety),
			property("Moisture Content", product.Moisture),
			property("Defect Rate", product.DefectRate),
			property("Minimum Order", product.MinimumOrder),
		},
		"category": "Coffee Beans",
	}
	if product.CuppingScore > 0 {
		doc["aggregateRating"] = Document{
			"@type":       "AggregateRating",
			"ratingValue": float64(product.CuppingScore) / 10,
			"bestRating":  5,
			"worstRating": 1,
			"ratingCount": 1,
		}
	}
	return doc
}

func organizationDocument(company content.CompanyInfo, data Data) Document {
	contactPoint := func(contactType string) Document {
		return Document{
			"@type":             "ContactPoint",
			"telephone":         company.Phone,
			"contactType":       contactType,
			"email":             company.Email,
			"availableLanguage": []string{"English", "Vietnamese"},
		}
	}

	sameAs := make([]string, 0, len(company.Social))
	for _, link := range company.Social {
		sameAs = append(sameAs, link.URL)
	}

	credentials := make([]Document, 0, len(content.Certifications()))
	for _, cert := range content.Certifications() {
		credentials = append(credentials, Document{
			"@type": "EducationalOccupationalCredential",
			"name":  cert.Name,
		})
	}

	return Document{
		"@context":      schemaContext,
		"@type":         "Organization",
		"name":          company.Name,
		"alternateName": company.AlternateName,
		"legalName":     company.LegalName,
		"url":           company.Website,
		"logo":          absoluteURL(data.BaseURL, company.Logo),
		"description":   company.Description,
		"foundingDate":  company.Founded + "-01-01",
		"address": Document{
			"@type":          "PostalAddress",
			"streetAddress":  company.Address,
			"addressCountry": company.Country,
			"addressRegion":  company.Region,
		},
		"contactPoint":      []Document{contactPoint("Sales"), contactPoint("Customer Service")},
		"sameAs":            sameAs,
		"industry":          "Coffee Export",
		"numberOfEmployees": Document{"@type": "QuantitativeValue", "value": company.Employees},
		"areaServed":        Document{"@type": "Place", "name": "Worldwide"},
		"makesOffer": Document{
			"@type": "Offer",
			"itemOffered": Document{
				"@type":    "Product",
				"name":     "Premium Vietnamese Coffee Beans",
				"category": "Coffee Export",
			},
		},
		"hasCredential": credentials,
	}
}

func blogPostingDocument(post content.Post, data Data) Document {
	company := content.Company()
	locale := platformi18n.OrDefault(data.Locale)
	pageURL := absoluteURL(data.BaseURL, "/"+string(locale)+"/insights/"+post.Slug)

	return Document{
		"@context":    schemaContext,
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Excerpt,
		"image":       absoluteURL(data.BaseURL, post.FeaturedImage),
		"author":      brandOrganization(company),
		"publisher": Document{
			"@type": "Organization",
			"name":  company.Name,
			"logo":  Document{"@type": "ImageObject", "url": absoluteURL(data.BaseURL, company.Logo)},
		},
		"datePublished":    post.PublishedAt.UTC().Format(time.RFC3339),
		"dateModified":     post.UpdatedAt.UTC().Format(time.RFC3339),
		"mainEntityOfPage": Document{"@type": "WebPage", "@id": pageURL},
		"articleSection":   post.Category,
		"keywords":         strings.Join(post.Tags, ", "),
		"wordCount":        post.ReadingTime * 200,
		"inLanguage":       platformi18n.Tag(locale).String(),
	}
}

func breadcrumbDocument(crumbs []Breadcrumb, data Data) Document {
	items := make([]Document, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, Document{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Name,
			"item":     absoluteURL(data.BaseURL, crumb.URL),
		})
	}
	return Document{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
