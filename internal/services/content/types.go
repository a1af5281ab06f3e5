// Package content exposes the static product, article, certification and
// company records the site renders.
package content

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spec is one labelled row of a product specification sheet.
type Spec struct {
	Name  string
	Value string
}

// CoffeeProduct is a green coffee lot offered for export.
type CoffeeProduct struct {
	ID             string
	Name           string
	Slug           string
	Description    string
	Origin         string
	Processing     string
	Variety        string
	Grade          string
	CuppingScore   int
	Aroma          string
	Flavor         string
	Acidity        string
	Body           string
	Certifications []string
	HarvestSeason  string
	Moisture       string
	DefectRate     string
	MinimumOrder   string
	PricePerKg     decimal.Decimal
	Images         []string
	Specifications []Spec
	Featured       bool
	Available      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PrimaryImage returns the first product image, or "" when there is none.
func (p CoffeeProduct) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Post is a published insight article.
type Post struct {
	ID            string
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	Category      string
	Tags          []string
	Author        string
	PublishedAt   time.Time
	UpdatedAt     time.Time
	ReadingTime   int
	Featured      bool
	Published     bool
}

// Certification is a third-party certificate held by the company.
type Certification struct {
	ID                string
	Name              string
	Issuer            string
	Description       string
	Logo              string
	ValidUntil        time.Time
	CertificateNumber string
}

// ProductionCapacity summarizes processing throughput.
type ProductionCapacity struct {
	DailyCherry  string
	DailyBeans   string
	AnnualExport string
}

// SocialLink is a named company profile URL.
type SocialLink struct {
	Network string
	URL     string
}

// CompanyInfo describes the business behind the site.
type CompanyInfo struct {
	Name            string
	LegalName       string
	AlternateName   string
	Founded         string
	Description     string
	Address         string
	Region          string
	Country         string
	Phone           string
	Email           string
	Website         string
	Logo            string
	Employees       string
	AnnualRevenue   string
	ExportCountries []string
	Certifications  []string
	Capacity        ProductionCapacity
	Social          []SocialLink
}

// Category groups products for the category listing pages.
type Category string

const (
	CategoryArabica   Category = "arabica"
	CategoryRobusta   Category = "robusta"
	CategorySpecialty Category = "specialty"
)

// Categories returns every product category in navigation order.
func Categories() []Category {
	return []Category{CategoryArabica, CategoryRobusta, CategorySpecialty}
}

// ParseCategory reports whether raw names a known category.
func ParseCategory(raw string) (Category, bool) {
	for _, category := range Categories() {
		if string(category) == raw {
			return category, true
		}
	}
	return "", false
}
