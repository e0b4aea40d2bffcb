package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "touristguide/internal/config"
	router "touristguide/internal/http"
	"touristguide/internal/http/handlers"
	"touristguide/internal/itinerary"
	"touristguide/internal/logger"
	"touristguide/internal/repositories"
	"touristguide/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/ringsaturn/tzf"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		logger.NewStructured("info", "console").WithError(err).Error("invalid configuration", nil)
		os.Exit(1)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := logger.NewStructured(env.LogLevel, env.LogFormat)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	history, closeHistory, err := openHistory(ctx, env)
	if err != nil {
		log.WithError(err).Error("history store unavailable", map[string]interface{}{"store": env.HistoryStore})
		os.Exit(1)
	}
	defer closeHistory()

	var zones services.TimezoneFinder
	if finder, err := tzf.NewDefaultFinder(); err != nil {
		log.WithError(err).Warn("timezone lookup disabled", nil)
	} else {
		zones = finder
	}

	hs := &handlers.Handlers{
		Trips: services.TripService{
			Synthesizer: itinerary.New(),
			History:     history,
			Itineraries: repositories.NewItineraryCache(env.ItineraryCacheTTL),
			Logger:      log,
			MaxTripDays: env.MaxTripDays,
		},
		Nearby:      services.NearbyService{Zones: zones},
		Translation: services.TranslationService{},
		Logger:      log,
	}
	r := router.NewRouter(env, hs, log)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", map[string]interface{}{"addr": env.AppAddr, "history_store": history.Name()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed", nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed", nil)
		return
	}

	log.Info("server stopped", nil)
}

func openHistory(ctx context.Context, env intconfig.Env) (repositories.HistoryRepository, func(), error) {
	switch env.HistoryStore {
	case intconfig.HistoryStoreMySQL:
		db, err := intconfig.OpenMySQL(ctx, env.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		repo := repositories.MySQLHistoryRepository{DB: db, Limit: env.HistoryLimit}
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, func() { _ = db.Close() }, nil
	case intconfig.HistoryStoreRedis:
		rdb, err := intconfig.NewRedis(ctx, env)
		if err != nil {
			return nil, nil, err
		}
		repo := repositories.RedisHistoryRepository{Client: rdb, Key: env.RedisHistoryKey, Limit: env.HistoryLimit}
		return repo, func() { _ = rdb.Close() }, nil
	default:
		return repositories.NewMemoryHistoryRepository(env.HistoryLimit), func() {}, nil
	}
}
