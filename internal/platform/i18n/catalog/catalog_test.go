package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/thegreatbeans/web/internal/platform/i18n"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadEmbeddedHasSupportedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got := bundle.Locales()
	if !slices.Equal(got, []i18n.Locale{i18n.English, i18n.Vietnamese}) {
		t.Fatalf("Locales() = %v", got)
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	t.Parallel()

	bundle := Default()
	en := bundle.Keys(i18n.English)
	vi := bundle.Keys(i18n.Vietnamese)
	if len(en) == 0 {
		t.Fatal("expected en keys")
	}
	if !slices.Equal(en, vi) {
		for _, key := range en {
			if !slices.Contains(vi, key) {
				t.Errorf("vi is missing %q", key)
			}
		}
		for _, key := range vi {
			if !slices.Contains(en, key) {
				t.Errorf("en is missing %q", key)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	bundle := Default()
	tests := []struct {
		name   string
		locale i18n.Locale
		key    string
		want   string
		wantOK bool
	}{
		{name: "english leaf", locale: i18n.English, key: "site.nav.home", want: "Home", wantOK: true},
		{name: "vietnamese leaf", locale: i18n.Vietnamese, key: "site.nav.home", want: "Trang chủ", wantOK: true},
		{name: "unknown locale falls back", locale: "fr", key: "site.nav.home", want: "Home", wantOK: true},
		{name: "missing segment", locale: i18n.English, key: "site.nav.missing", wantOK: false},
		{name: "missing namespace", locale: i18n.English, key: "nope.nav.home", wantOK: false},
		{name: "branch is not a leaf", locale: i18n.English, key: "site.nav", wantOK: false},
		{name: "descend past leaf", locale: i18n.English, key: "site.name.more", wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := bundle.Lookup(tc.locale, tc.key)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("Lookup(%q, %q) = (%q, %v), want (%q, %v)", tc.locale, tc.key, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestTReturnsKeyAndWarnsWhenMissing(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	bundle := Default().WithLogger(zap.New(core))

	if got := bundle.T(i18n.English, "site.nav.nowhere"); got != "site.nav.nowhere" {
		t.Fatalf("T() = %q, want key", got)
	}
	entries := logs.FilterMessage("translation key not found").All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["key"]; got != "site.nav.nowhere" {
		t.Fatalf("logged key = %v", got)
	}

	if got := bundle.T(i18n.English, "site.nav.home"); got != "Home" {
		t.Fatalf("T() = %q, want Home", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("unexpected extra log entries: %d", logs.Len())
	}
}

func TestNilBundleIsSafe(t *testing.T) {
	t.Parallel()

	var bundle *Bundle
	if _, ok := bundle.Lookup(i18n.English, "site.name"); ok {
		t.Fatal("expected nil bundle lookup to fail")
	}
	if got := bundle.T(i18n.English, "site.name"); got != "site.name" {
		t.Fatalf("T() = %q", got)
	}
}

func TestLoadFromFSRejectsDottedNamespace(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), "name: \"a\"\n")
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yml.yaml"), "name: \"b\"\n")

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected invalid namespace error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/vi/site.yaml"), "name: \"a\"\n")

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsUnsupportedLocale(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), "name: \"a\"\n")
	mustWriteFile(t, filepath.Join(tempDir, "locales/fr/site.yaml"), "name: \"b\"\n")

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected unsupported locale error")
	}
}

func TestLoadFromFSRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), "name: [unterminated\n")

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromFSIgnoresNonStringLeavesInLookup(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/site.yaml"), "name: \"Beans\"\nfounded: 2018\n")

	bundle, err := LoadFromFS(os.DirFS(tempDir))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := bundle.T(i18n.English, "site.founded"); got != "site.founded" {
		t.Fatalf("T(non-string) = %q, want key", got)
	}
	if got := bundle.T(i18n.English, "site.name"); got != "Beans" {
		t.Fatalf("T(name) = %q", got)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
