// Package httpmux mounts the infrastructure routes that sit beside feature
// modules on the root mux.
package httpmux

import (
	"io/fs"
	"net/http"

	"github.com/thegreatbeans/web/internal/services/web/platform/httpx"
	"github.com/thegreatbeans/web/internal/services/web/routepath"
)

// MountStatic wires the shared static route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticMime != nil {
		staticHandler = withStaticMime(staticHandler)
	}
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticHandler)
}

// MountHealth wires the liveness probe.
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "ok")
	})
}

// MountFallback routes every path no module claimed to notFound.
func MountFallback(rootMux *http.ServeMux, notFound http.Handler) {
	if rootMux == nil || notFound == nil {
		return
	}
	rootMux.Handle(routepath.Root, notFound)
}
