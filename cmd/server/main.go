package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"natureVillageApi/internal/config"
	contentinfra "natureVillageApi/internal/modules/content/infrastructure"
	contenttransport "natureVillageApi/internal/modules/content/interface"
	reservationusecase "natureVillageApi/internal/modules/reservations/application/usecase"
	reservationdomain "natureVillageApi/internal/modules/reservations/domain"
	reservationinfra "natureVillageApi/internal/modules/reservations/infrastructure"
	reservationtransport "natureVillageApi/internal/modules/reservations/interface"
	statusport "natureVillageApi/internal/modules/status/application/port"
	statususecase "natureVillageApi/internal/modules/status/application/usecase"
	statusinfra "natureVillageApi/internal/modules/status/infrastructure"
	statustransport "natureVillageApi/internal/modules/status/interface"
	"natureVillageApi/internal/platform/broker"
	"natureVillageApi/internal/platform/realtime"
	"natureVillageApi/internal/shared/auth"
	"natureVillageApi/internal/shared/i18n"
	"natureVillageApi/internal/shared/logging"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "naturevillage-api",
		Short:         "Backend for the Nature Village restaurant site.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe()
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe()
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version.",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe() error {
	// Load .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logging setup: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	catalog := i18n.DefaultCatalog()
	if fileCatalog, err := i18n.LoadFile(cfg.Content.LocalesPath); err == nil {
		catalog = catalog.Merge(fileCatalog)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("locale catalog: %w", err)
	}

	contentStore, err := contentinfra.LoadStore(cfg.Content.SitePath)
	if err != nil {
		return fmt.Errorf("site content: %w", err)
	}
	weekly, err := contentStore.Weekly()
	if err != nil {
		return fmt.Errorf("opening hours: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub()

	rules := reservationdomain.Rules{
		WindowDays: cfg.Reservations.WindowDays,
		Slots:      reservationdomain.DefaultTimeSlots,
	}
	repo := reservationinfra.NewMemoryRepository()
	sessions := reservationinfra.NewMemorySessionStore()
	notifier := reservationinfra.NewSlackNotifier(cfg.Notifications.SlackWebhookURL)
	reservationEvents := reservationinfra.NewHubEvents(hub)

	availabilityUC := reservationusecase.NewAvailabilityUseCase(repo, rules, cfg.Reservations.SlotCapacity)
	createUC := reservationusecase.NewCreateReservationUseCase(repo, notifier, reservationEvents, rules, cfg.Reservations.SlotCapacity)
	sessionUC := reservationusecase.NewSessionUseCase(sessions, availabilityUC, createUC, rules)

	feed := statusinfra.NewPOSFeed()
	broker.StartOccupancyConsumer(ctx, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OccupancyTopic, func(ev broker.OccupancyEvent) {
		feed.Record(ev.Occupied, ev.Capacity, ev.ObservedAt)
	})

	sources := []statusport.SourceEntry{
		{Source: feed, MaxAge: cfg.Status.POSMaxAge},
		{Source: statusinfra.NewPlacesClient(cfg.Status.PlacesAPIKey, cfg.Status.PlacesPlaceID, cfg.Status.HTTPTimeout, nil), MaxAge: cfg.Status.PlacesMaxAge},
		{Source: statusinfra.NewYelpClient(cfg.Status.YelpAPIKey, cfg.Status.YelpBusinessID, cfg.Status.HTTPTimeout, nil), MaxAge: cfg.Status.YelpMaxAge},
	}
	statusUC := statususecase.NewStatusUseCase(sources, weekly, statusinfra.NewHubEvents(hub), time.Now)
	go statusUC.RunRefresher(ctx, cfg.Status.RefreshInterval)

	e := echo.New()
	e.Logger.SetOutput(log.Writer())

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	staff := auth.RequireRole(validator, cfg.Security.StaffRole)

	reservationtransport.NewHandler(availabilityUC, createUC, sessionUC, catalog).Register(e, staff)
	statustransport.NewHandler(statusUC, hub, feed).Register(e)
	contenttransport.NewHandler(contentStore).Register(e)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); startFailed(err) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	return e.Close()
}

// startFailed tells a real listener failure apart from the error echo reports
// after a clean Close.
func startFailed(err error) bool {
	return err != nil && !errors.Is(err, http.ErrServerClosed)
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
