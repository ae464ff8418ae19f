// README: Entry point; loads config, wires services, starts the HTTP server and the draft janitor.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"sawari/internal/config"
	"sawari/internal/events"
	httptransport "sawari/internal/http"
	"sawari/internal/infra"
	"sawari/internal/logger"
	"sawari/internal/maps"
	"sawari/internal/modules/admin"
	"sawari/internal/modules/booking"
	"sawari/internal/modules/distance"
	"sawari/internal/modules/pricing"
	"sawari/internal/modules/query"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env, "sawari-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	var live distance.LiveEstimator
	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		distanceSvc, err := maps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal("failed to create maps client", zap.Error(err))
		}
		live = distanceSvc
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatal("failed to create places client", zap.Error(err))
		}
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY not set; distances come from the static table only")
	}

	resolver := distance.NewService(live, redisClient, cfg.Resolver.LiveTimeout, cfg.Resolver.CacheTTL, log)
	pricingSvc := pricing.NewService(resolver, log)

	bookingStore := booking.NewStore(dbPool)
	var publisher booking.Publisher
	if cfg.Kafka.Broker != "" {
		p := events.NewPublisher(cfg.Kafka.Broker, cfg.Kafka.Topic, log)
		defer func() { _ = p.Close() }()
		publisher = p
	}
	bookingSvc := booking.NewService(bookingStore, publisher, log)

	querySvc := query.NewService(query.NewPostgresStore(dbPool), log)

	sessions := admin.NewRedisSessionStore(redisClient)
	adminSvc := admin.NewService(cfg.Admin.Username, cfg.Admin.PasswordHash, cfg.Admin.SessionTTL, sessions, log)
	if cfg.Admin.PasswordHash == "" {
		log.Warn("SAWARI_ADMIN_PASSWORD_HASH not set; admin login disabled")
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Pricing:  pricingSvc,
		Booking:  bookingSvc,
		Bookings: bookingStore,
		Queries:  querySvc,
		Admin:    adminSvc,
		Places:   places,
		Log:      log,
	})

	go bookingSvc.RunDraftJanitor(ctx, 24*time.Hour)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Info("starting sawari-api", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server error", zap.Error(err))
	}
}
