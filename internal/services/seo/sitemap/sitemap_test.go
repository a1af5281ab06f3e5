package sitemap

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func testInput() Input {
	return Input{
		BaseURL:      "https://thegreatbeans.com/",
		Now:          time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Pages:        StaticPages,
		ProductSlugs: []string{"premium-robusta-grade-1"},
		PostSlugs:    []string{"sustainable-coffee-farming-practices"},
	}
}

func TestBuildCoversEveryLocale(t *testing.T) {
	t.Parallel()

	set := Build(testInput())
	want := (len(StaticPages) + 2) * 2
	if len(set.URLs) != want {
		t.Fatalf("len(URLs) = %d, want %d", len(set.URLs), want)
	}

	byLoc := map[string]URL{}
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
	}
	home, ok := byLoc["https://thegreatbeans.com/vi"]
	if !ok {
		t.Fatal("missing vi home")
	}
	if home.ChangeFreq != ChangeDaily || home.Priority != "1.0" {
		t.Fatalf("home = %+v", home)
	}
	about := byLoc["https://thegreatbeans.com/en/about-us"]
	if about.ChangeFreq != ChangeWeekly || about.Priority != "0.8" {
		t.Fatalf("about = %+v", about)
	}
	product := byLoc["https://thegreatbeans.com/en/products/premium-robusta-grade-1"]
	if product.ChangeFreq != ChangeMonthly || product.Priority != "0.9" {
		t.Fatalf("product = %+v", product)
	}
	post := byLoc["https://thegreatbeans.com/vi/insights/sustainable-coffee-farming-practices"]
	if post.ChangeFreq != ChangeMonthly || post.Priority != "0.7" {
		t.Fatalf("post = %+v", post)
	}
	if post.LastMod != "2024-02-01T00:00:00Z" {
		t.Fatalf("LastMod = %q", post.LastMod)
	}
}

func TestBuildAlternates(t *testing.T) {
	t.Parallel()

	set := Build(testInput())
	alts := set.URLs[1].Alternates
	if len(alts) != 3 {
		t.Fatalf("len(alternates) = %d", len(alts))
	}
	got := map[string]string{}
	for _, a := range alts {
		got[a.Hreflang] = a.Href
	}
	if got["en"] != "https://thegreatbeans.com/en/about-us" ||
		got["vi"] != "https://thegreatbeans.com/vi/about-us" ||
		got["x-default"] != "https://thegreatbeans.com/en/about-us" {
		t.Fatalf("alternates = %v", got)
	}
}

func TestBuildGroupsLocalesWithinSections(t *testing.T) {
	t.Parallel()

	in := testInput()
	in.Pages = []string{"", "/contact"}
	in.ProductSlugs = []string{"a", "b"}
	in.PostSlugs = []string{"p"}
	set := Build(in)

	want := []string{
		"https://thegreatbeans.com/en",
		"https://thegreatbeans.com/en/contact",
		"https://thegreatbeans.com/vi",
		"https://thegreatbeans.com/vi/contact",
		"https://thegreatbeans.com/en/products/a",
		"https://thegreatbeans.com/en/products/b",
		"https://thegreatbeans.com/vi/products/a",
		"https://thegreatbeans.com/vi/products/b",
		"https://thegreatbeans.com/en/insights/p",
		"https://thegreatbeans.com/vi/insights/p",
	}
	if len(set.URLs) != len(want) {
		t.Fatalf("len(URLs) = %d, want %d", len(set.URLs), len(want))
	}
	for i, loc := range want {
		if set.URLs[i].Loc != loc {
			t.Fatalf("URLs[%d].Loc = %q, want %q", i, set.URLs[i].Loc, loc)
		}
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Encode(&buf, Build(testInput())); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	body := buf.String()
	if !strings.HasPrefix(body, "<?xml") {
		t.Fatalf("missing xml header: %q", body[:20])
	}
	if !strings.Contains(body, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Fatal("missing sitemap namespace")
	}
	if !strings.Contains(body, `xmlns:xhtml="http://www.w3.org/1999/xhtml"`) {
		t.Fatal("missing xhtml namespace")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse sitemap: %v", err)
	}
	if got := doc.Find("url").Length(); got != (len(StaticPages)+2)*2 {
		t.Fatalf("url elements = %d", got)
	}
	if got := doc.Find("url").First().Find("loc").Text(); got != "https://thegreatbeans.com/en" {
		t.Fatalf("first loc = %q", got)
	}
}

func TestRobots(t *testing.T) {
	t.Parallel()

	body := Robots("https://thegreatbeans.com/")
	if !strings.Contains(body, "Sitemap: https://thegreatbeans.com/sitemap.xml") {
		t.Fatalf("Robots() = %q", body)
	}
	if !strings.HasPrefix(body, "User-agent: *") {
		t.Fatalf("Robots() = %q", body)
	}
}
