package modules

import (
	"github.com/thegreatbeans/web/internal/services/web/modules/insights"
	"github.com/thegreatbeans/web/internal/services/web/modules/products"
	"github.com/thegreatbeans/web/internal/services/web/modules/quote"
	"github.com/thegreatbeans/web/internal/services/web/modules/seo"
	"github.com/thegreatbeans/web/internal/services/web/modules/site"
)

// DefaultModules returns every module served by the site, pages first.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		site.New(deps.Base),
		products.New(deps.Base),
		insights.New(deps.Base),
		quote.New(deps.Quote, deps.Messages, deps.Logger),
		seo.New(seo.Config{
			BaseURL:      deps.BaseURL,
			SchemePolicy: deps.SchemePolicy,
			Now:          deps.Now,
			Logger:       deps.Logger,
		}),
	}
}
