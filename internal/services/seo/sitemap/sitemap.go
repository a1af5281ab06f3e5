// Package sitemap builds the XML sitemap and robots.txt for the site.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	platformi18n "github.com/thegreatbeans/web/internal/platform/i18n"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNamespace   = "http://www.w3.org/1999/xhtml"
)

// Change frequencies used by the site.
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// StaticPages are the locale-independent page paths listed in the sitemap.
// The empty path is the locale home page.
var StaticPages = []string{
	"",
	"/about-us",
	"/our-process",
	"/sustainability",
	"/contact",
	"/products",
	"/insights",
}

// Alternate is an hreflang link for one language variant of a URL.
type Alternate struct {
	XMLName  xml.Name `xml:"xhtml:link"`
	Rel      string   `xml:"rel,attr"`
	Hreflang string   `xml:"hreflang,attr"`
	Href     string   `xml:"href,attr"`
}

// URL is one sitemap entry.
type URL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod,omitempty"`
	ChangeFreq string      `xml:"changefreq,omitempty"`
	Priority   string      `xml:"priority,omitempty"`
	Alternates []Alternate `xml:"xhtml:link"`
}

// URLSet is the sitemap document root.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []URL    `xml:"url"`
}

// Input lists the content the sitemap covers.
type Input struct {
	BaseURL      string
	Now          time.Time
	Pages        []string
	ProductSlugs []string
	PostSlugs    []string
}

func formatPriority(priority float64) string {
	return strconv.FormatFloat(priority, 'f', 1, 64)
}

func alternates(base, path string) []Alternate {
	out := make([]Alternate, 0, len(platformi18n.Supported())+1)
	for _, locale := range platformi18n.Supported() {
		out = append(out, Alternate{Rel: "alternate", Hreflang: string(locale), Href: base + "/" + string(locale) + path})
	}
	out = append(out, Alternate{Rel: "alternate", Hreflang: "x-default", Href: base + "/" + string(platformi18n.Default) + path})
	return out
}

type entry struct {
	path       string
	changeFreq string
	priority   float64
}

// Build lists every static page, product and post in every supported locale.
// Within each of those sections all URLs of one locale precede the next.
func Build(in Input) URLSet {
	base := strings.TrimRight(strings.TrimSpace(in.BaseURL), "/")
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	lastMod := now.UTC().Format(time.RFC3339)

	pages := make([]entry, 0, len(in.Pages))
	for _, page := range in.Pages {
		if page == "" {
			pages = append(pages, entry{path: page, changeFreq: ChangeDaily, priority: 1.0})
			continue
		}
		pages = append(pages, entry{path: page, changeFreq: ChangeWeekly, priority: 0.8})
	}
	products := make([]entry, 0, len(in.ProductSlugs))
	for _, slug := range in.ProductSlugs {
		products = append(products, entry{path: "/products/" + slug, changeFreq: ChangeMonthly, priority: 0.9})
	}
	posts := make([]entry, 0, len(in.PostSlugs))
	for _, slug := range in.PostSlugs {
		posts = append(posts, entry{path: "/insights/" + slug, changeFreq: ChangeMonthly, priority: 0.7})
	}

	set := URLSet{Xmlns: sitemapNamespace, XHTML: xhtmlNamespace}
	for _, section := range [][]entry{pages, products, posts} {
		for _, locale := range platformi18n.Supported() {
			for _, e := range section {
				set.URLs = append(set.URLs, URL{
					Loc:        base + "/" + string(locale) + e.path,
					LastMod:    lastMod,
					ChangeFreq: e.changeFreq,
					Priority:   formatPriority(e.priority),
					Alternates: alternates(base, e.path),
				})
			}
		}
	}
	return set
}

// Encode writes set as an XML document.
func Encode(w io.Writer, set URLSet) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Close()
}

// Robots returns a robots.txt body that allows crawling and points at the
// sitemap.
func Robots(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n\n")
	b.WriteString("Sitemap: " + base + "/sitemap.xml\n")
	return b.String()
}
