package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"natureVillageApi/internal/modules/content/domain"
	"natureVillageApi/internal/modules/content/infrastructure"
	"natureVillageApi/internal/shared/i18n"
)

// Handler serves the authored site content, resolved into the requested
// locale.
type Handler struct {
	store *infrastructure.Store
}

func NewHandler(store *infrastructure.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/restaurant", h.GetRestaurant)
	e.GET("/api/menu", h.GetMenu)
	e.GET("/api/dishes/featured", h.GetFeaturedDishes)
	e.GET("/api/story", h.GetStory)
	e.GET("/api/reviews", h.GetReviews)
	e.GET("/api/gallery", h.GetGallery)
	e.GET("/api/gift-card", h.GetGiftCard)
}

type localeMeta struct {
	Locale    string `json:"locale"`
	Direction string `json:"direction"`
}

func requestLocale(c echo.Context) (string, localeMeta) {
	locale := i18n.Normalize(c.QueryParam("locale"))
	if locale == "" {
		locale = i18n.DefaultLocale
	}
	return locale, localeMeta{Locale: locale, Direction: i18n.Direction(locale)}
}

type dishView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int      `json:"priceCents"`
	Currency    string   `json:"currency"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
}

type categoryView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []dishView `json:"items"`
}

func dishViewOf(item domain.MenuItem, locale string) dishView {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return dishView{
		ID:          item.ID,
		Name:        item.Name.Resolve(locale),
		Description: item.Description.Resolve(locale),
		PriceCents:  item.PriceCents,
		Currency:    item.Currency,
		Tags:        tags,
		Image:       item.Image,
	}
}

// GetRestaurant handles GET /api/restaurant.
func (h *Handler) GetRestaurant(c echo.Context) error {
	locale, meta := requestLocale(c)
	info := h.store.Site().Restaurant
	return c.JSON(http.StatusOK, map[string]any{
		"meta":     meta,
		"name":     info.Name.Resolve(locale),
		"tagline":  info.Tagline.Resolve(locale),
		"address":  info.Address,
		"phone":    info.Phone,
		"capacity": info.Capacity,
		"hours":    info.Hours,
	})
}

// GetMenu handles GET /api/menu.
func (h *Handler) GetMenu(c echo.Context) error {
	locale, meta := requestLocale(c)
	site := h.store.Site()
	categories := make([]categoryView, 0, len(site.Menu))
	for _, category := range site.Menu {
		view := categoryView{
			ID:    category.ID,
			Name:  category.Name.Resolve(locale),
			Items: make([]dishView, 0, len(category.Items)),
		}
		for _, item := range category.Items {
			view.Items = append(view.Items, dishViewOf(item, locale))
		}
		categories = append(categories, view)
	}
	return c.JSON(http.StatusOK, map[string]any{"meta": meta, "categories": categories})
}

// GetFeaturedDishes handles GET /api/dishes/featured.
func (h *Handler) GetFeaturedDishes(c echo.Context) error {
	locale, meta := requestLocale(c)
	featured := h.store.Site().FeaturedDishes()
	dishes := make([]dishView, 0, len(featured))
	for _, item := range featured {
		dishes = append(dishes, dishViewOf(item, locale))
	}
	return c.JSON(http.StatusOK, map[string]any{"meta": meta, "dishes": dishes})
}

// GetStory handles GET /api/story.
func (h *Handler) GetStory(c echo.Context) error {
	locale, meta := requestLocale(c)
	site := h.store.Site()
	sections := make([]map[string]any, 0, len(site.Story))
	for _, section := range site.Story {
		sections = append(sections, map[string]any{
			"id":      section.ID,
			"heading": section.Heading.Resolve(locale),
			"body":    section.Body.Resolve(locale),
			"image":   section.Image,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"meta": meta, "sections": sections})
}

// GetReviews handles GET /api/reviews.
func (h *Handler) GetReviews(c echo.Context) error {
	locale, meta := requestLocale(c)
	site := h.store.Site()
	reviews := make([]map[string]any, 0, len(site.Reviews))
	for _, review := range site.Reviews {
		reviews = append(reviews, map[string]any{
			"author": review.Author,
			"rating": review.Rating,
			"quote":  review.Quote.Resolve(locale),
			"date":   review.Date,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"meta": meta, "reviews": reviews})
}

// GetGallery handles GET /api/gallery.
func (h *Handler) GetGallery(c echo.Context) error {
	locale, meta := requestLocale(c)
	site := h.store.Site()
	images := make([]map[string]any, 0, len(site.Gallery))
	for _, image := range site.Gallery {
		images = append(images, map[string]any{
			"id":  image.ID,
			"url": image.URL,
			"alt": image.Alt.Resolve(locale),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"meta": meta, "images": images})
}

// GetGiftCard handles GET /api/gift-card.
func (h *Handler) GetGiftCard(c echo.Context) error {
	locale, meta := requestLocale(c)
	card := h.store.Site().GiftCard
	return c.JSON(http.StatusOK, map[string]any{
		"meta":     meta,
		"enabled":  card.Enabled,
		"heading":  card.Heading.Resolve(locale),
		"body":     card.Body.Resolve(locale),
		"ctaLabel": card.CTALabel.Resolve(locale),
		"url":      card.URL,
	})
}
