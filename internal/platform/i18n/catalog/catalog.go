// Package catalog loads the nested translation dictionaries embedded with the
// site and resolves dotted keys against them.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/thegreatbeans/web/internal/platform/i18n"
	"go.uber.org/zap"
	textcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale must be present in every bundle.
const BaseLocale = i18n.Default

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Bundle holds one nested dictionary per locale. It is immutable after load.
type Bundle struct {
	trees    map[i18n.Locale]map[string]any
	flat     map[i18n.Locale]map[string]string
	messages *textcatalog.Builder
	logger   *zap.Logger
}

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
// The namespace is the first segment of every key declared in the file.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{
		trees:  map[i18n.Locale]map[string]any{},
		flat:   map[i18n.Locale]map[string]string{},
		logger: zap.NewNop(),
	}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, data); err != nil {
			return nil, err
		}
	}
	if _, ok := bundle.trees[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	bundle.messages, err = buildMessageCatalog(bundle.flat)
	if err != nil {
		return nil, err
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, data []byte) error {
	localeDir := path.Base(path.Dir(p))
	locale, ok := i18n.Parse(localeDir)
	if !ok || string(locale) != localeDir {
		return fmt.Errorf("catalog %s: unsupported locale directory %q", p, localeDir)
	}
	namespace := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if strings.TrimSpace(namespace) == "" || strings.Contains(namespace, ".") {
		return fmt.Errorf("catalog %s: invalid namespace %q", p, namespace)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("parse catalog %s: %w", p, err)
	}
	if len(tree) == 0 {
		return fmt.Errorf("catalog %s: no messages", p)
	}

	root, ok := b.trees[locale]
	if !ok {
		root = map[string]any{}
		b.trees[locale] = root
		b.flat[locale] = map[string]string{}
	}
	if _, exists := root[namespace]; exists {
		return fmt.Errorf("catalog %s: namespace %q already defined for locale %q", p, namespace, locale)
	}
	root[namespace] = tree
	if err := flatten(namespace, tree, b.flat[locale]); err != nil {
		return fmt.Errorf("catalog %s: %w", p, err)
	}
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, value := range node {
		if strings.TrimSpace(key) == "" || strings.Contains(key, ".") {
			return fmt.Errorf("invalid key segment %q under %q", key, prefix)
		}
		full := prefix + "." + key
		switch v := value.(type) {
		case string:
			out[full] = v
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// WithLogger returns a view of the bundle that reports missing keys to logger.
func (b *Bundle) WithLogger(logger *zap.Logger) *Bundle {
	if b == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	clone := *b
	clone.logger = logger
	return &clone
}

// Locales returns the locales present in the bundle.
func (b *Bundle) Locales() []i18n.Locale {
	if b == nil {
		return nil
	}
	out := make([]i18n.Locale, 0, len(b.trees))
	for locale := range b.trees {
		out = append(out, locale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Keys returns every string leaf key for locale, sorted.
func (b *Bundle) Keys(locale i18n.Locale) []string {
	if b == nil {
		return nil
	}
	messages := b.flat[b.resolve(locale)]
	out := make([]string, 0, len(messages))
	for key := range messages {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func (b *Bundle) resolve(locale i18n.Locale) i18n.Locale {
	if _, ok := b.trees[locale]; ok {
		return locale
	}
	return BaseLocale
}

// Lookup walks the dotted key through the dictionary for locale. Unknown
// locales use the base locale. The bool is false when a segment is missing or
// the leaf is not a string.
func (b *Bundle) Lookup(locale i18n.Locale, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	var node any = b.trees[b.resolve(locale)]
	for _, segment := range strings.Split(key, ".") {
		branch, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = branch[segment]
		if !ok {
			return "", false
		}
	}
	value, ok := node.(string)
	return value, ok
}

// T returns the translation for key, or key itself when it cannot be resolved.
func (b *Bundle) T(locale i18n.Locale, key string) string {
	if value, ok := b.Lookup(locale, key); ok {
		return value
	}
	if b != nil {
		b.logger.Warn("translation key not found", zap.String("locale", string(locale)), zap.String("key", key))
	}
	return key
}

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return bundle
}
