package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weeklyslots/config"
	_ "weeklyslots/docs"
	"weeklyslots/internal/adapters/auth"
	deliveryhttp "weeklyslots/internal/delivery/http"
	"weeklyslots/internal/delivery/http/controllers"
	"weeklyslots/internal/delivery/http/middleware"
	"weeklyslots/internal/domain"
	"weeklyslots/internal/repository/memory"
	"weeklyslots/internal/repository/postgres"
	"weeklyslots/internal/services"
)

type repositories struct {
	slots        domain.TimeSlotRepository
	availability domain.AvailabilityRepository
	organizers   domain.OrganizerRepository
	db           *sql.DB
}

// @title Weekly Slots API
// @version 1.0
// @description Recurring weekly time slots per community and member availability.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	if repos.db != nil {
		defer repos.db.Close()
	}

	slotService := services.NewSlotRegistryService(repos.slots, cfg.SlotsIdempotentCreate)
	availabilityService := services.NewAvailabilityService(repos.slots, repos.availability)

	var pinger controllers.Pinger
	if repos.db != nil {
		pinger = repos.db
	}
	mux := deliveryhttp.NewRouter(
		controllers.NewSlotController(logger, slotService),
		controllers.NewAvailabilityController(logger, availabilityService),
		controllers.NewHealthController(logger, pinger),
		middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer), logger),
		middleware.RequireOrganizer(repos.organizers, logger),
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		if cfg.SeedCommunityID != "" {
			store.AddCommunity(cfg.SeedCommunityID)
			if cfg.SeedOrganizerID != "" {
				store.AddOrganizer(cfg.SeedCommunityID, cfg.SeedOrganizerID)
			}
			logger.Info("memory store seeded", "community_id", cfg.SeedCommunityID, "organizer_id", cfg.SeedOrganizerID)
		}
		return &repositories{
			slots:        store.TimeSlots(),
			availability: store.Availability(),
			organizers:   store.Organizers(),
		}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := postgres.Open(connectCtx, cfg.DBUrl, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	if err := postgres.EnsureSchema(connectCtx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &repositories{
		slots:        postgres.NewTimeSlotRepository(db),
		availability: postgres.NewAvailabilityRepository(db),
		organizers:   postgres.NewOrganizerRepository(db),
		db:           db,
	}, nil
}
