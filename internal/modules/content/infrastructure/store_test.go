package infrastructure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"natureVillageApi/internal/modules/content/domain"
)

const fixtureYAML = `
restaurant:
  name:
    en: Nature Village
  address: 4416 Aurora Ave N
  phone: "+12065550117"
  capacity: 80
  hours:
    monday: { closed: true }
    tuesday: { open: "11:30", close: "21:30" }
menu:
  - id: mains
    name:
      en: Main Courses
    items:
      - id: quzi
        name:
          en: Quzi
        priceCents: 2850
        currency: USD
        featured: true
reviews:
  - author: Maria T.
    rating: 5
    quote:
      en: Wonderful.
`

func writeFixture(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadStore(t *testing.T) {
	store, err := LoadStore(writeFixture(t, fixtureYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	site := store.Site()
	if got := site.Restaurant.Name.Resolve("en"); got != "Nature Village" {
		t.Fatalf("expected the restaurant name, got %q", got)
	}
	featured := site.FeaturedDishes()
	if len(featured) != 1 || featured[0].ID != "quzi" {
		t.Fatalf("expected quzi to be featured, got %v", featured)
	}
}

func TestLoadStoreValidation(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{name: "empty menu", payload: "menu: []\n"},
		{
			name: "category without items",
			payload: `
menu:
  - id: mains
    name: { en: Mains }
    items: []
`,
		},
		{
			name: "duplicate item ids",
			payload: `
menu:
  - id: mains
    name: { en: Mains }
    items:
      - id: quzi
        name: { en: Quzi }
        priceCents: 2850
      - id: quzi
        name: { en: Quzi Again }
        priceCents: 2850
`,
		},
		{
			name: "negative price",
			payload: `
menu:
  - id: mains
    name: { en: Mains }
    items:
      - id: quzi
        name: { en: Quzi }
        priceCents: -1
`,
		},
		{
			name: "review rating out of range",
			payload: `
menu:
  - id: mains
    name: { en: Mains }
    items:
      - id: quzi
        name: { en: Quzi }
        priceCents: 2850
reviews:
  - author: Maria T.
    rating: 6
    quote: { en: Too good }
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadStore(writeFixture(t, tc.payload)); !errors.Is(err, ErrInvalidContent) {
				t.Fatalf("expected %v, got %v", ErrInvalidContent, err)
			}
		})
	}
}

func TestWeeklyConversion(t *testing.T) {
	store, err := LoadStore(writeFixture(t, fixtureYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	weekly, err := store.Weekly()
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if _, ok := weekly[time.Monday]; ok {
		t.Fatal("expected closed monday to be absent")
	}
	day, ok := weekly[time.Tuesday]
	if !ok || !day.HasBothTimes() {
		t.Fatalf("expected tuesday hours, got %+v", day)
	}
}

func TestWeeklyRejectsBadHours(t *testing.T) {
	store := NewStore(domain.Site{
		Restaurant: domain.RestaurantInfo{
			Hours: map[string]domain.DayHours{
				"tuesday": {Open: "21:30", Close: "11:30"},
			},
		},
	})
	if _, err := store.Weekly(); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected %v, got %v", ErrInvalidContent, err)
	}

	store = NewStore(domain.Site{
		Restaurant: domain.RestaurantInfo{
			Hours: map[string]domain.DayHours{
				"someday": {Open: "11:30", Close: "21:30"},
			},
		},
	})
	if _, err := store.Weekly(); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected an unknown weekday error, got %v", err)
	}
}
