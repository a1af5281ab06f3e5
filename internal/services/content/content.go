package content

import (
	"slices"
	"strings"
)

func cloneProduct(p CoffeeProduct) CoffeeProduct {
	p.Certifications = slices.Clone(p.Certifications)
	p.Images = slices.Clone(p.Images)
	p.Specifications = slices.Clone(p.Specifications)
	return p
}

func clonePost(p Post) Post {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func filterProducts(keep func(CoffeeProduct) bool) []CoffeeProduct {
	out := make([]CoffeeProduct, 0, len(products))
	for _, product := range products {
		if keep(product) {
			out = append(out, cloneProduct(product))
		}
	}
	return out
}

func filterPosts(keep func(Post) bool) []Post {
	out := make([]Post, 0, len(posts))
	for _, post := range posts {
		if keep(post) {
			out = append(out, clonePost(post))
		}
	}
	return out
}

// Products returns every available product.
func Products() []CoffeeProduct {
	return filterProducts(func(p CoffeeProduct) bool { return p.Available })
}

// FeaturedProducts returns products flagged as featured.
func FeaturedProducts() []CoffeeProduct {
	return filterProducts(func(p CoffeeProduct) bool { return p.Featured })
}

// ProductBySlug finds a product by slug.
func ProductBySlug(slug string) (CoffeeProduct, bool) {
	for _, product := range products {
		if product.Slug == slug {
			return cloneProduct(product), true
		}
	}
	return CoffeeProduct{}, false
}

// ProductSlugs lists the slugs of every available product.
func ProductSlugs() []string {
	available := Products()
	out := make([]string, 0, len(available))
	for _, product := range available {
		out = append(out, product.Slug)
	}
	return out
}

// InCategory reports whether p belongs to category. Matching is a
// case-insensitive substring test on variety and processing.
func InCategory(p CoffeeProduct, category Category) bool {
	variety := strings.ToLower(p.Variety)
	processing := strings.ToLower(p.Processing)
	switch category {
	case CategoryArabica:
		return strings.Contains(variety, "arabica")
	case CategoryRobusta:
		return strings.Contains(variety, "robusta")
	case CategorySpecialty:
		for _, method := range []string{"honey", "natural", "anaerobic"} {
			if strings.Contains(processing, method) {
				return true
			}
		}
		return strings.Contains(variety, "catimor") || strings.Contains(variety, "bourbon")
	default:
		return false
	}
}

// ProductsByCategory returns available products in category.
func ProductsByCategory(category Category) []CoffeeProduct {
	return filterProducts(func(p CoffeeProduct) bool { return p.Available && InCategory(p, category) })
}

// RelatedProducts returns up to limit featured products other than slug.
func RelatedProducts(slug string, limit int) []CoffeeProduct {
	related := filterProducts(func(p CoffeeProduct) bool { return p.Featured && p.Slug != slug })
	if limit >= 0 && len(related) > limit {
		related = related[:limit]
	}
	return related
}

// Posts returns every published post.
func Posts() []Post {
	return filterPosts(func(p Post) bool { return p.Published })
}

// FeaturedPosts returns published posts flagged as featured.
func FeaturedPosts() []Post {
	return filterPosts(func(p Post) bool { return p.Featured && p.Published })
}

// PostBySlug finds a published post by slug.
func PostBySlug(slug string) (Post, bool) {
	for _, post := range posts {
		if post.Slug == slug && post.Published {
			return clonePost(post), true
		}
	}
	return Post{}, false
}

// PostSlugs lists the slugs of every published post.
func PostSlugs() []string {
	published := Posts()
	out := make([]string, 0, len(published))
	for _, post := range published {
		out = append(out, post.Slug)
	}
	return out
}

// PostsByCategory returns published posts whose category contains the
// case-insensitive substring.
func PostsByCategory(substring string) []Post {
	needle := strings.ToLower(strings.TrimSpace(substring))
	return filterPosts(func(p Post) bool {
		return p.Published && strings.Contains(strings.ToLower(p.Category), needle)
	})
}

// Certifications returns the company's certificates.
func Certifications() []Certification {
	return slices.Clone(certifications)
}

// Company returns the company record.
func Company() CompanyInfo {
	out := company
	out.ExportCountries = slices.Clone(company.ExportCountries)
	out.Certifications = slices.Clone(company.Certifications)
	out.Social = slices.Clone(company.Social)
	return out
}
