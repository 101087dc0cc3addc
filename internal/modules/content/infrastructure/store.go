package infrastructure

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"natureVillageApi/internal/modules/content/domain"
	statusdomain "natureVillageApi/internal/modules/status/domain"
)

var ErrInvalidContent = errors.New("content file is invalid")

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Store holds the site content loaded once at startup. Authored copy never
// changes at runtime, so reads need no locking.
type Store struct {
	site domain.Site
}

// LoadStore reads and validates the site content YAML.
func LoadStore(path string) (*Store, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	var site domain.Site
	if err := yaml.Unmarshal(payload, &site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	if err := validate(site); err != nil {
		return nil, err
	}
	return &Store{site: site}, nil
}

// NewStore wraps already-built content, used by tests.
func NewStore(site domain.Site) *Store {
	return &Store{site: site}
}

func (s *Store) Site() domain.Site {
	return s.site
}

// Weekly converts the authored hours into the status domain's schedule.
func (s *Store) Weekly() (statusdomain.Weekly, error) {
	weekly := statusdomain.Weekly{}
	for name, hours := range s.site.Restaurant.Hours {
		weekday, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidContent, name)
		}
		if hours.Closed {
			continue
		}
		schedule, ok := statusdomain.BuildSchedule(hours.Open, hours.Close)
		if !ok {
			return nil, fmt.Errorf("%w: bad hours for %s (%q-%q)", ErrInvalidContent, name, hours.Open, hours.Close)
		}
		weekly[weekday] = schedule
	}
	return weekly, nil
}

func validate(site domain.Site) error {
	if len(site.Menu) == 0 {
		return fmt.Errorf("%w: menu is empty", ErrInvalidContent)
	}
	seen := map[string]struct{}{}
	for _, category := range site.Menu {
		if len(category.Items) == 0 {
			return fmt.Errorf("%w: menu category %q has no items", ErrInvalidContent, category.ID)
		}
		for _, item := range category.Items {
			if strings.TrimSpace(item.ID) == "" {
				return fmt.Errorf("%w: menu item without id in category %q", ErrInvalidContent, category.ID)
			}
			if _, dup := seen[item.ID]; dup {
				return fmt.Errorf("%w: duplicate menu item id %q", ErrInvalidContent, item.ID)
			}
			seen[item.ID] = struct{}{}
			if item.PriceCents < 0 {
				return fmt.Errorf("%w: negative price on %q", ErrInvalidContent, item.ID)
			}
		}
	}
	for _, review := range site.Reviews {
		if review.Rating < 1 || review.Rating > 5 {
			return fmt.Errorf("%w: review rating out of range for %q", ErrInvalidContent, review.Author)
		}
	}
	return nil
}
