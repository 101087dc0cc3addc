package domain

import "natureVillageApi/internal/shared/i18n"

// Localized is an inline locale -> string map for authored copy.
type Localized map[string]string

// Resolve picks the best translation for the locale, following the shared
// fallback chain.
func (l Localized) Resolve(locale string) string {
	return i18n.ResolveLocalized(l, locale)
}

// DayHours is a day's authored opening hours; Closed marks rest days.
type DayHours struct {
	Open   string `yaml:"open"`
	Close  string `yaml:"close"`
	Closed bool   `yaml:"closed"`
}

// RestaurantInfo is the static profile shown on the home page.
type RestaurantInfo struct {
	Name     Localized           `yaml:"name"`
	Tagline  Localized           `yaml:"tagline"`
	Address  string              `yaml:"address"`
	Phone    string              `yaml:"phone"`
	Capacity int                 `yaml:"capacity"`
	Hours    map[string]DayHours `yaml:"hours"`
}

// MenuItem is a single dish on the menu page.
type MenuItem struct {
	ID          string    `yaml:"id"`
	Name        Localized `yaml:"name"`
	Description Localized `yaml:"description"`
	PriceCents  int       `yaml:"priceCents"`
	Currency    string    `yaml:"currency"`
	Tags        []string  `yaml:"tags"`
	Featured    bool      `yaml:"featured"`
	Image       string    `yaml:"image"`
}

// MenuCategory groups dishes under a localized heading.
type MenuCategory struct {
	ID    string     `yaml:"id"`
	Name  Localized  `yaml:"name"`
	Items []MenuItem `yaml:"items"`
}

// StorySection is one block of the "our story" page.
type StorySection struct {
	ID      string    `yaml:"id"`
	Heading Localized `yaml:"heading"`
	Body    Localized `yaml:"body"`
	Image   string    `yaml:"image"`
}

// Review is an authored customer quote for the showcase.
type Review struct {
	Author string    `yaml:"author"`
	Rating int       `yaml:"rating"`
	Quote  Localized `yaml:"quote"`
	Date   string    `yaml:"date"`
}

// GalleryImage is one entry of the gallery grid.
type GalleryImage struct {
	ID  string    `yaml:"id"`
	URL string    `yaml:"url"`
	Alt Localized `yaml:"alt"`
}

// GiftCard is the promotional popup content.
type GiftCard struct {
	Enabled  bool      `yaml:"enabled"`
	Heading  Localized `yaml:"heading"`
	Body     Localized `yaml:"body"`
	CTALabel Localized `yaml:"ctaLabel"`
	URL      string    `yaml:"url"`
}

// Site is the complete authored content set.
type Site struct {
	Restaurant RestaurantInfo `yaml:"restaurant"`
	Menu       []MenuCategory `yaml:"menu"`
	Story      []StorySection `yaml:"story"`
	Reviews    []Review       `yaml:"reviews"`
	Gallery    []GalleryImage `yaml:"gallery"`
	GiftCard   GiftCard       `yaml:"giftCard"`
}

// FeaturedDishes returns the dishes flagged for the home page showcase.
func (s Site) FeaturedDishes() []MenuItem {
	featured := make([]MenuItem, 0)
	for _, category := range s.Menu {
		for _, item := range category.Items {
			if item.Featured {
				featured = append(featured, item)
			}
		}
	}
	return featured
}
