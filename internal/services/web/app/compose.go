// Package app composes feature modules into the root HTTP mux.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/thegreatbeans/web/internal/services/web/module"
)

// Compose builds a root mux with every module prefix registered. A prefix may
// be owned by one module only.
func Compose(modules []module.Module) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(root, feature, seen); err != nil {
			return nil, err
		}
	}
	return root, nil
}

func mountModule(root *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, err := resolveMount(feature)
	if err != nil {
		return err
	}
	for _, prefix := range mount.Prefixes {
		if err := validatePrefix(prefix); err != nil {
			return fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), prefix, err)
		}
		if previous, ok := seen[prefix]; ok {
			return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}
	return nil
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if len(mount.Prefixes) == 0 {
		return module.Mount{}, fmt.Errorf("mount module %q: prefix is required", feature.ID())
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

// validatePrefix accepts plain absolute paths. Method and wildcard patterns
// belong inside module muxes.
func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix || strings.ContainsAny(prefix, " \t") {
		return fmt.Errorf("prefix must not include whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must start with /")
	}
	if strings.ContainsAny(prefix, "{}") {
		return fmt.Errorf("prefix must not include wildcards")
	}
	if prefix == "/" {
		return fmt.Errorf("root prefix is reserved")
	}
	return nil
}
