package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupFallbackChain(t *testing.T) {
	catalog := NewCatalog(map[string]map[string]string{
		"greeting": {
			"en": "Welcome",
			"ku": "Bi xêr hatî",
		},
		"farewell": {
			"en": "Goodbye",
		},
		"untranslated": {},
	})

	cases := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "exact locale", key: "greeting", locale: "ku", expected: "Bi xêr hatî"},
		{name: "region falls back to base", key: "greeting", locale: "ku-TR", expected: "Bi xêr hatî"},
		{name: "uppercase tag", key: "greeting", locale: "KU", expected: "Bi xêr hatî"},
		{name: "missing locale falls back to english", key: "farewell", locale: "ku", expected: "Goodbye"},
		{name: "empty locale uses english", key: "greeting", locale: "", expected: "Welcome"},
		{name: "unknown key returns the key", key: "missing.key", locale: "en", expected: "missing.key"},
		{name: "key without translations returns the key", key: "untranslated", locale: "en", expected: "untranslated"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.Lookup(tc.key, tc.locale); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestMergeOverridesBuiltins(t *testing.T) {
	catalog := NewCatalog(map[string]map[string]string{
		"greeting": {"en": "Welcome"},
	})
	catalog.Merge(NewCatalog(map[string]map[string]string{
		"greeting": {"EN": "Hello there", "tr": "Hoş geldiniz"},
		"new.key":  {"en": "Fresh"},
	}))

	if got := catalog.Lookup("greeting", "en"); got != "Hello there" {
		t.Fatalf("expected the override, got %q", got)
	}
	if got := catalog.Lookup("greeting", "tr"); got != "Hoş geldiniz" {
		t.Fatalf("expected the added locale, got %q", got)
	}
	if got := catalog.Lookup("new.key", "en"); got != "Fresh" {
		t.Fatalf("expected the new key, got %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locales.yaml")
	payload := "greeting:\n  en: Welcome\n  ku: Bi xêr hatî\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	catalog, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := catalog.Lookup("greeting", "ku"); got != "Bi xêr hatî" {
		t.Fatalf("expected the loaded translation, got %q", got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDirection(t *testing.T) {
	cases := []struct {
		locale   string
		expected string
	}{
		{locale: "en", expected: "ltr"},
		{locale: "ku", expected: "rtl"},
		{locale: "ar", expected: "rtl"},
		{locale: "fa-IR", expected: "rtl"},
		{locale: "tr", expected: "ltr"},
		{locale: "", expected: "ltr"},
	}

	for _, tc := range cases {
		if got := Direction(tc.locale); got != tc.expected {
			t.Fatalf("%q: expected %q, got %q", tc.locale, tc.expected, got)
		}
	}
}

func TestResolveLocalized(t *testing.T) {
	values := map[string]string{"en": "Starters", "ku": "Destpêk"}

	if got := ResolveLocalized(values, "ku"); got != "Destpêk" {
		t.Fatalf("expected the kurdish value, got %q", got)
	}
	if got := ResolveLocalized(values, "tr"); got != "Starters" {
		t.Fatalf("expected the english fallback, got %q", got)
	}
	if got := ResolveLocalized(map[string]string{"ku": "Destpêk"}, "tr"); got != "Destpêk" {
		t.Fatalf("expected any non-empty value as a last resort, got %q", got)
	}
	if got := ResolveLocalized(nil, "en"); got != "" {
		t.Fatalf("expected empty for no values, got %q", got)
	}
}

func TestDefaultCatalogCoversReservationErrors(t *testing.T) {
	catalog := DefaultCatalog()
	keys := []string{
		"reservation.error.name_required",
		"reservation.error.email_required",
		"reservation.error.email_invalid",
		"reservation.error.phone_required",
		"reservation.error.phone_invalid",
		"reservation.error.date_required",
		"reservation.error.date_invalid",
		"reservation.error.date_out_of_window",
		"reservation.error.time_required",
		"reservation.error.time_invalid",
		"reservation.error.party_size_required",
		"reservation.error.party_size_range",
		"reservation.error.fully_booked",
		"reservation.error.submit_failed",
	}
	for _, key := range keys {
		if !catalog.Has(key) {
			t.Fatalf("missing built-in translation for %q", key)
		}
		if got := catalog.Lookup(key, "en"); got == key {
			t.Fatalf("expected english copy for %q", key)
		}
	}
	if got := catalog.Lookup("reservation.error.fully_booked", "en"); got != "Restaurant fully booked" {
		t.Fatalf("expected the canonical message, got %q", got)
	}
}
