// Package modules defines web module registry helpers.
package modules

import (
	"time"

	"github.com/thegreatbeans/web/internal/platform/i18n/catalog"
	module "github.com/thegreatbeans/web/internal/services/web/module"
	"github.com/thegreatbeans/web/internal/services/web/modules/quote"
	"github.com/thegreatbeans/web/internal/services/web/platform/publichandler"
	"github.com/thegreatbeans/web/internal/services/web/platform/requestmeta"
	"go.uber.org/zap"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared services and config required to compose
// the web module registry. Page modules render through Base; the quote API
// only sees its Submitter.
type Dependencies struct {
	Base         publichandler.Base
	Quote        quote.Submitter
	Messages     *catalog.Bundle
	Logger       *zap.Logger
	BaseURL      string
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time
}
