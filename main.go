package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/config"
	"github.com/PendemixAI/vax-tracker/internal/dashboard"
	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/db"
	"github.com/PendemixAI/vax-tracker/internal/geo"
	"github.com/PendemixAI/vax-tracker/internal/logging"
	"github.com/PendemixAI/vax-tracker/internal/metrics"
	"github.com/PendemixAI/vax-tracker/internal/middleware"
	"github.com/PendemixAI/vax-tracker/internal/regions"
	"github.com/PendemixAI/vax-tracker/internal/session"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	lg, err := logging.New(cfg.LogLevel, cfg.DevLog)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer lg.Sync()

	rs, err := regions.Load(cfg.RegionsFile)
	if err != nil {
		lg.Fatal("failed to load regions", zap.Error(err))
	}
	locations, err := geo.LoadResolver(cfg.MapLocationsFile)
	if err != nil {
		lg.Fatal("failed to load map locations", zap.Error(err))
	}

	store, err := newStore(cfg, lg)
	if err != nil {
		lg.Fatal("failed to set up session store", zap.Error(err))
	}

	cache := dataset.NewCache(cfg.CacheSize, dataset.GeneratorBuild(cfg.ProgressMode))
	cache.OnBuild = func(seed int64, rows int, took time.Duration) {
		logging.LogGenerate(lg, seed, rows, took)
		metrics.ObserveGeneration(took)
	}

	sessions := session.NewManager(store, cache, session.Options{
		TTL:       cfg.SessionTTL,
		FixedSeed: cfg.Seed,
		Logger:    lg.Named("session"),
	})
	go pruneSessions(sessions, lg)

	h := dashboard.New(dashboard.Deps{
		Sessions:  sessions,
		Regions:   rs,
		Locations: locations,
		Limiter:   middleware.NewRateLimiter(cfg.DownloadRate, cfg.DownloadBurst),
		Logger:    lg,
	})

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LoggerMiddleware(lg.Named("http")))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	r.Get("/", RootHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/dashboard", dashboard.SetupRoutes(h))

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server listening", zap.String("port", cfg.Port), zap.String("progress_mode", string(cfg.ProgressMode)))
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		lg.Info("shutting down")
		if err := srv.Shutdown(ctx); err != nil {
			lg.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}
}

func newStore(cfg config.Config, lg *zap.Logger) (session.Store, error) {
	if !cfg.UsesDatabase() {
		lg.Info("using in-memory session store")
		return session.NewMemoryStore(), nil
	}
	gdb, err := db.Connect(cfg.DatabaseURL, lg)
	if err != nil {
		return nil, err
	}
	store := session.NewGormStore(gdb)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	lg.Info("connected to session database")
	return store, nil
}

func pruneSessions(m *session.Manager, lg *zap.Logger) {
	t := time.NewTicker(15 * time.Minute)
	defer t.Stop()
	for range t.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		n, err := m.Prune(ctx)
		cancel()
		if err != nil {
			logging.LogError(lg, "prune sessions", err)
			continue
		}
		if n > 0 {
			lg.Info("pruned expired sessions", zap.Int64("count", n))
		}
	}
}
