package site

// pageSections lists the translated section ids of each static page in
// render order.
var pageSections = map[string][]string{
	"about-us":         {"story", "mission", "vision", "values"},
	"our-process":      {"harvest", "processing", "quality", "capacity"},
	"sustainability":   {"environment", "social", "economic", "climate"},
	"contact":          {"office", "sales"},
	"faq":              {"types", "certified", "moq", "samples", "delivery"},
	"trade-terms":      {"payment", "delivery", "documentation", "disputes"},
	"shipping":         {"sea", "air", "courier", "customs"},
	"returns":          {"eligible", "process", "refunds"},
	"privacy-policy":   {"collection", "usage", "rights"},
	"terms-of-service": {"use", "liability", "law"},
	"cookie-policy":    {"essential", "analytics", "control"},
	"careers":          {"culture", "openings", "apply"},
}

// organizationPages carry the organization JSON-LD next to their breadcrumbs.
var organizationPages = map[string]bool{
	"about-us": true,
	"contact":  true,
}

func pageKey(slug string, field string) string {
	return "pages." + slug + "." + field
}

func sectionKey(slug string, id string, field string) string {
	return "pages." + slug + ".sections." + id + "." + field
}
