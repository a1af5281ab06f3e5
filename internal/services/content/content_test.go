package content

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func slugs(products []CoffeeProduct) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}

func TestProducts(t *testing.T) {
	t.Parallel()

	got := slugs(Products())
	want := []string{"premium-robusta-grade-1", "arabica-honey-processed", "robusta-natural-processed", "specialty-geisha-arabica"}
	if !slices.Equal(got, want) {
		t.Fatalf("Products() = %v, want %v", got, want)
	}
	for _, p := range Products() {
		if p.PricePerKg.IsNegative() {
			t.Fatalf("%s has negative price", p.Slug)
		}
	}
}

func TestFeaturedProducts(t *testing.T) {
	t.Parallel()

	got := slugs(FeaturedProducts())
	want := []string{"premium-robusta-grade-1", "arabica-honey-processed", "specialty-geisha-arabica"}
	if !slices.Equal(got, want) {
		t.Fatalf("FeaturedProducts() = %v, want %v", got, want)
	}
}

func TestProductBySlug(t *testing.T) {
	t.Parallel()

	product, ok := ProductBySlug("specialty-geisha-arabica")
	if !ok {
		t.Fatal("expected product")
	}
	if product.CuppingScore != 92 {
		t.Fatalf("CuppingScore = %d", product.CuppingScore)
	}
	if !product.PricePerKg.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("PricePerKg = %s", product.PricePerKg)
	}
	if product.PrimaryImage() != "/images/products/specialty-geisha-1.jpg" {
		t.Fatalf("PrimaryImage() = %q", product.PrimaryImage())
	}
	if _, ok := ProductBySlug("missing"); ok {
		t.Fatal("expected missing product")
	}
}

func TestProductsByCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     []string
	}{
		{category: CategoryArabica, want: []string{"arabica-honey-processed"}},
		{category: CategoryRobusta, want: []string{"premium-robusta-grade-1", "robusta-natural-processed"}},
		{category: CategorySpecialty, want: []string{"arabica-honey-processed", "robusta-natural-processed"}},
		{category: Category("decaf"), want: []string{}},
	}
	for _, tc := range tests {
		got := slugs(ProductsByCategory(tc.category))
		if !slices.Equal(got, tc.want) {
			t.Fatalf("ProductsByCategory(%q) = %v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestRelatedProducts(t *testing.T) {
	t.Parallel()

	got := slugs(RelatedProducts("arabica-honey-processed", 3))
	want := []string{"premium-robusta-grade-1", "specialty-geisha-arabica"}
	if !slices.Equal(got, want) {
		t.Fatalf("RelatedProducts() = %v, want %v", got, want)
	}
	if got := RelatedProducts("robusta-natural-processed", 1); len(got) != 1 {
		t.Fatalf("len(RelatedProducts(limit 1)) = %d", len(got))
	}
}

func TestPosts(t *testing.T) {
	t.Parallel()

	if got := len(Posts()); got != 2 {
		t.Fatalf("len(Posts()) = %d", got)
	}
	if got := len(FeaturedPosts()); got != 2 {
		t.Fatalf("len(FeaturedPosts()) = %d", got)
	}
	post, ok := PostBySlug("vietnam-coffee-export-trends-2024")
	if !ok || post.ReadingTime != 8 || post.Category != "Market Analysis" {
		t.Fatalf("PostBySlug() = %+v, %v", post, ok)
	}
	if _, ok := PostBySlug("nope"); ok {
		t.Fatal("expected missing post")
	}
	if got := PostsByCategory("sustain"); len(got) != 1 || got[0].Slug != "sustainable-coffee-farming-practices" {
		t.Fatalf("PostsByCategory() = %+v", got)
	}
	if !slices.Equal(PostSlugs(), []string{"vietnam-coffee-export-trends-2024", "sustainable-coffee-farming-practices"}) {
		t.Fatalf("PostSlugs() = %v", PostSlugs())
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	first := Products()
	first[0].Name = "mutated"
	first[0].Images[0] = "mutated.jpg"
	again, _ := ProductBySlug(first[0].Slug)
	if again.Name == "mutated" || again.Images[0] == "mutated.jpg" {
		t.Fatal("Products() leaked internal state")
	}

	info := Company()
	info.ExportCountries[0] = "Nowhere"
	if Company().ExportCountries[0] != "United States" {
		t.Fatal("Company() leaked internal state")
	}
}

func TestCertificationsAndCompany(t *testing.T) {
	t.Parallel()

	certs := Certifications()
	if len(certs) != 3 || certs[0].CertificateNumber != "ORG-2024-001" {
		t.Fatalf("Certifications() = %+v", certs)
	}
	info := Company()
	if info.Founded != "2018" || info.Capacity.DailyCherry != "120+ tons" || len(info.Social) != 3 {
		t.Fatalf("Company() = %+v", info)
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	if c, ok := ParseCategory("robusta"); !ok || c != CategoryRobusta {
		t.Fatalf("ParseCategory(robusta) = %q, %v", c, ok)
	}
	if _, ok := ParseCategory("Robusta"); ok {
		t.Fatal("categories are case sensitive")
	}
}
