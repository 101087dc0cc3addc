package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Port string
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

type SecurityConfig struct {
	JWTSecret string
	StaffRole string
}

type KafkaConfig struct {
	Brokers        []string
	GroupID        string
	OccupancyTopic string
}

type StatusConfig struct {
	RefreshInterval time.Duration
	POSMaxAge       time.Duration
	PlacesMaxAge    time.Duration
	YelpMaxAge      time.Duration
	PlacesAPIKey    string
	PlacesPlaceID   string
	YelpAPIKey      string
	YelpBusinessID  string
	HTTPTimeout     time.Duration
}

type ReservationsConfig struct {
	SlotCapacity int
	WindowDays   int
}

type ContentConfig struct {
	SitePath    string
	LocalesPath string
}

type NotificationsConfig struct {
	SlackWebhookURL string
}

type Config struct {
	Server        ServerConfig
	Logging       LoggingConfig
	Security      SecurityConfig
	Kafka         KafkaConfig
	Status        StatusConfig
	Reservations  ReservationsConfig
	Content       ContentConfig
	Notifications NotificationsConfig
}

// Load reads the configuration from the environment, applying defaults that
// keep a bare local run working.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PORT", "8080"),
		},
		Logging: LoggingConfig{
			Directory: envOr("LOG_DIR", "./logs"),
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
		},
		Security: SecurityConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
			StaffRole: envOr("STAFF_ROLE", "staff"),
		},
		Kafka: KafkaConfig{
			Brokers:        splitList(firstNonEmpty(os.Getenv("KAFKA_BROKERS"), os.Getenv("KAFKA_BROKER"))),
			GroupID:        envOr("KAFKA_GROUP_ID", "naturevillage-api"),
			OccupancyTopic: envOr("KAFKA_OCCUPANCY_TOPIC", "pos.occupancy"),
		},
		Content: ContentConfig{
			SitePath:    envOr("CONTENT_SITE_PATH", "./content/site.yaml"),
			LocalesPath: envOr("CONTENT_LOCALES_PATH", "./content/locales.yaml"),
		},
		Notifications: NotificationsConfig{
			SlackWebhookURL: os.Getenv("SLACK_WEBHOOK_URL"),
		},
		Status: StatusConfig{
			PlacesAPIKey:   os.Getenv("GOOGLE_PLACES_API_KEY"),
			PlacesPlaceID:  os.Getenv("GOOGLE_PLACES_PLACE_ID"),
			YelpAPIKey:     os.Getenv("YELP_API_KEY"),
			YelpBusinessID: os.Getenv("YELP_BUSINESS_ID"),
		},
	}

	var err error
	if cfg.Status.RefreshInterval, err = envDuration("STATUS_REFRESH_INTERVAL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.Status.POSMaxAge, err = envDuration("STATUS_POS_MAX_AGE", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Status.PlacesMaxAge, err = envDuration("STATUS_PLACES_MAX_AGE", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Status.YelpMaxAge, err = envDuration("STATUS_YELP_MAX_AGE", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Status.HTTPTimeout, err = envDuration("STATUS_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Reservations.SlotCapacity, err = envInt("RESERVATION_SLOT_CAPACITY", 12); err != nil {
		return nil, err
	}
	if cfg.Reservations.WindowDays, err = envInt("RESERVATION_WINDOW_DAYS", 60); err != nil {
		return nil, err
	}
	if cfg.Reservations.SlotCapacity <= 0 {
		return nil, fmt.Errorf("RESERVATION_SLOT_CAPACITY must be positive")
	}
	if cfg.Reservations.WindowDays <= 0 {
		return nil, fmt.Errorf("RESERVATION_WINDOW_DAYS must be positive")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
