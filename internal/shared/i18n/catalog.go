package i18n

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLocale is the fallback language for every lookup chain.
const DefaultLocale = "en"

// rtlLocales lists the right-to-left languages the site renders.
var rtlLocales = map[string]struct{}{
	"ar":  {},
	"fa":  {},
	"he":  {},
	"ku":  {},
	"kmr": {},
	"sdh": {},
}

// Catalog is a key -> locale -> string lookup table shared by all modules
// that emit user-facing copy.
type Catalog struct {
	entries map[string]map[string]string
}

// NewCatalog builds a catalog from an in-memory entry table.
func NewCatalog(entries map[string]map[string]string) *Catalog {
	if entries == nil {
		entries = map[string]map[string]string{}
	}
	return &Catalog{entries: entries}
}

// LoadFile reads a YAML dictionary of the form key -> locale -> string.
func LoadFile(path string) (*Catalog, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale catalog: %w", err)
	}
	entries := map[string]map[string]string{}
	if err := yaml.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("decode locale catalog: %w", err)
	}
	return NewCatalog(entries), nil
}

// Merge overlays other's entries on top of the receiver, returning the receiver.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	if other == nil {
		return c
	}
	for key, translations := range other.entries {
		if c.entries[key] == nil {
			c.entries[key] = map[string]string{}
		}
		for locale, text := range translations {
			c.entries[key][Normalize(locale)] = text
		}
	}
	return c
}

// Lookup resolves a key for the given locale, falling back to the base
// language, then English, then the key itself.
func (c *Catalog) Lookup(key, locale string) string {
	translations, ok := c.entries[key]
	if !ok {
		return key
	}
	for _, candidate := range fallbackChain(locale) {
		if text, ok := translations[candidate]; ok && text != "" {
			return text
		}
	}
	return key
}

// Has reports whether the catalog carries any translation for the key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Locales returns the sorted set of locales present anywhere in the catalog.
func (c *Catalog) Locales() []string {
	seen := map[string]struct{}{}
	for _, translations := range c.entries {
		for locale := range translations {
			seen[locale] = struct{}{}
		}
	}
	locales := make([]string, 0, len(seen))
	for locale := range seen {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Normalize lowercases a locale tag and trims surrounding whitespace.
func Normalize(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

// BaseLang strips any region subtag: "ku-TR" -> "ku".
func BaseLang(locale string) string {
	normalized := Normalize(locale)
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		return normalized[:idx]
	}
	return normalized
}

// IsRTL reports whether the locale renders right-to-left.
func IsRTL(locale string) bool {
	_, ok := rtlLocales[BaseLang(locale)]
	return ok
}

// Direction returns "rtl" or "ltr" for the locale.
func Direction(locale string) string {
	if IsRTL(locale) {
		return "rtl"
	}
	return "ltr"
}

func fallbackChain(locale string) []string {
	normalized := Normalize(locale)
	chain := make([]string, 0, 3)
	if normalized != "" {
		chain = append(chain, normalized)
	}
	if base := BaseLang(normalized); base != "" && base != normalized {
		chain = append(chain, base)
	}
	if normalized != DefaultLocale {
		chain = append(chain, DefaultLocale)
	}
	return chain
}

// ResolveLocalized picks a translation out of an inline locale map, using the
// same fallback chain as Lookup. Used for content fields that carry their own
// per-locale values instead of catalog keys.
func ResolveLocalized(values map[string]string, locale string) string {
	if len(values) == 0 {
		return ""
	}
	for _, candidate := range fallbackChain(locale) {
		if text, ok := values[candidate]; ok && text != "" {
			return text
		}
	}
	for _, text := range values {
		if text != "" {
			return text
		}
	}
	return ""
}
