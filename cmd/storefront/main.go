package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"DigiStore/internal/api"
	"DigiStore/internal/store"
	"DigiStore/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	st, cleanup, err := buildStore(log)
	if err != nil {
		log.Fatal("init store failed", zap.Error(err))
	}
	defer cleanup()

	s := &api.Server{Store: st, Log: log}

	reg := prometheus.NewRegistry()
	h := api.NewHandler(s, api.HTTPDeps{
		Log:               log,
		Service:           service,
		Registry:          reg,
		MetricsEnabled:    os.Getenv("METRICS_TOKEN") != "",
		MetricsToken:      os.Getenv("METRICS_TOKEN"),
		RateLimit:         getenvInt("RATE_LIMIT", 0),
		RateWindowSeconds: getenvInt("RATE_WINDOW_SECONDS", 60),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// buildStore picks Postgres when DATABASE_URL is set, the seeded
// in-memory store otherwise.
func buildStore(log *zap.Logger) (store.Store, func(), error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Info("using in-memory store")
		return store.NewMemStore(), func() {}, nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, err
	}

	pg := store.NewPostgresStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pg.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	log.Info("using postgres store")
	return pg, func() { _ = db.Close() }, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return cast.ToInt(v)
}
