package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"roomfinder/internal/cache"
	"roomfinder/internal/config"
	"roomfinder/internal/handler"
	"roomfinder/internal/i18n"
	"roomfinder/internal/notify"
	"roomfinder/internal/observability"
	"roomfinder/internal/repository"
	"roomfinder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// listingStore is satisfied by both the Postgres repository and the
// in-memory store
type listingStore interface {
	service.RoomStore
	service.BookingStore
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.Setup(observability.LogConfig{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "roomfinder",
	})

	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("starting roomfinder")

	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Listing.Source).Msg("failed to open listing store")
	}
	defer closeStore()

	resultCache, err := openCache(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open result cache")
	}
	defer resultCache.Close()

	translations := i18n.Default()
	if cfg.Listing.TranslationsFile != "" {
		translations, err = i18n.Load(cfg.Listing.TranslationsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load translations")
		}
		log.Info().Strs("languages", translations.Languages()).Msg("translations loaded")
	}

	var notifier service.BookingNotifier = notify.NopNotifier{}
	if cfg.Telegram.Enabled {
		tg, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start telegram notifier")
		}
		notifier = tg
		log.Info().Int64("chat_id", cfg.Telegram.AdminChatID).Msg("booking notifications enabled")
	} else {
		log.Warn().Msg("telegram is disabled, booking notifications will only be logged")
	}

	// Initialize services
	catalog := service.NewCatalog(store)
	if _, err := catalog.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to load initial listing snapshot")
	}
	catalog.StartAutoReload(ctx, cfg.Listing.ReloadInterval)

	listingService := service.NewListingService(catalog, resultCache, cfg.Listing.CacheTTL, translations)
	bookingService := service.NewBookingService(store, catalog, notifier)

	router := handler.NewRouter(
		handler.RouterConfig{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AdminToken:     cfg.Admin.Token,
			Build:          handler.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		},
		handler.NewListingHandler(listingService, cfg.Listing.DefaultMaxPrice, cfg.Listing.DefaultLanguage),
		handler.NewBookingHandler(bookingService),
		handler.NewAdminHandler(catalog, bookingService),
	)
	if cfg.Admin.Token == "" {
		log.Warn().Msg("ADMIN_TOKEN is not set, admin routes are unauthenticated")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (listingStore, func(), error) {
	if cfg.Listing.Source == "file" {
		snap, err := repository.LoadSnapshotFile(cfg.Listing.File)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("file", cfg.Listing.File).Int("rooms", len(snap.Rooms)).Msg("using file listing source")
		return repository.NewMemoryStore(snap.Rooms, snap.Messes), func() {}, nil
	}

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, nil, err
	}
	log.Info().Msg("connected to PostgreSQL database")

	return repo, func() {
		if err := repo.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}, nil
}

func openCache(cfg *config.Config) (cache.Client, error) {
	if cfg.Redis.Addr == "" {
		log.Info().Int("max_size", cfg.Listing.CacheSize).Msg("using in-memory result cache")
		return cache.NewMemoryClient(cfg.Listing.CacheSize), nil
	}

	client, err := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		Prefix:   cfg.Redis.Prefix,
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis result cache")
	return client, nil
}
