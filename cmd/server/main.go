// Command server runs the Luna venue discovery API: an HTTP service that
// tracks which users want to visit which venues and automatically books a
// table once enough interest gathers on one venue.
package main

import (
    "context"
    "os"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"

    "github.com/lunaapp/luna-backend/internal/config"
    "github.com/lunaapp/luna-backend/internal/core"
    "github.com/lunaapp/luna-backend/internal/database"
    "github.com/lunaapp/luna-backend/internal/handler"
    "github.com/lunaapp/luna-backend/internal/queue"
    "github.com/lunaapp/luna-backend/internal/repository"
    "github.com/lunaapp/luna-backend/internal/router"
    queuepublisher "github.com/lunaapp/luna-backend/internal/service"
)

func main() {
    _ = godotenv.Load() // .env is optional

    cfg := config.Load()
    log := newLogger(cfg)

    dir := loadDirectory(cfg, log)
    ledger := repository.NewInterestLedger()
    registry := repository.NewBookingRegistry()
    locks := repository.NewVenueLocks(dir.VenueIDs())

    coordinator := core.NewCoordinator(
        dir, ledger, registry, locks,
        core.NewTrigger(cfg.Threshold),
        core.NewMockReservations(time.Now().UnixNano()),
        log,
    )
    scorer := core.NewScorer(dir, ledger)

    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Warn().Msg("redis unavailable, response cache and rate limiting disabled")
    }

    // Background consumer writing booking events to logs/booking.log.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Warn().Err(err).Msg("booking consumer stopped")
        }
    }()

    e := echo.New()
    e.HideBanner = true
    router.Register(e, router.Handlers{
        Venues:          handler.NewVenueHandler(dir, ledger, coordinator),
        Users:           handler.NewUserHandler(dir, ledger, coordinator),
        Interests:       handler.NewInterestHandler(coordinator, dir, ledger, queuepublisher.PublishBookingEvent, log),
        Recommendations: handler.NewRecommendationHandler(scorer),
    }, rdb, config.LoadCacheConfig(), config.LoadRateLimitConfig())

    addr := ":" + cfg.Port
    log.Info().Str("addr", addr).Str("env", cfg.Env).Int("threshold", cfg.Threshold).Msg("listening")
    if err := e.Start(addr); err != nil {
        log.Fatal().Err(err).Msg("server stopped")
    }
}

// newLogger builds the process logger: console output in dev, JSON
// elsewhere, level from LOG_LEVEL.
func newLogger(cfg config.Config) zerolog.Logger {
    level, err := zerolog.ParseLevel(cfg.LogLevel)
    if err != nil {
        level = zerolog.InfoLevel
    }
    var log zerolog.Logger
    if cfg.Env == "dev" {
        log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
    } else {
        log = zerolog.New(os.Stderr)
    }
    return log.Level(level).With().Timestamp().Logger()
}

// loadDirectory builds the user/venue directory: from MySQL when DB_HOST
// is configured, from the built-in seed fixtures otherwise. A database
// failure falls back to the seed set so the service always comes up.
func loadDirectory(cfg config.Config, log zerolog.Logger) *repository.Directory {
    if cfg.DBHost == "" {
        log.Info().Msg("no DB_HOST configured, using seed directory")
        return repository.SeedDirectory()
    }
    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Warn().Err(err).Msg("database unreachable, falling back to seed directory")
        return repository.SeedDirectory()
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    dir, err := repository.LoadDirectoryFromDB(ctx, db)
    if err != nil {
        log.Warn().Err(err).Msg("directory load failed, falling back to seed directory")
        return repository.SeedDirectory()
    }
    log.Info().Int("users", len(dir.Users())).Int("venues", len(dir.Venues())).Msg("directory loaded from database")
    return dir
}
