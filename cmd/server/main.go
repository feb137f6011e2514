package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"waste-route-service/internal/adapters/cache"
	"waste-route-service/internal/adapters/repositories"
	"waste-route-service/internal/api"
	"waste-route-service/internal/config"
	"waste-route-service/internal/platform/db"
	"waste-route-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres storage, optional Redis
// route cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	var (
		conn       *sql.DB
		routeCache ports.RouteCache
		err        error
	)

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		// Postgres deployments are initialized and seeded via cmd/dbtool.
		conn, err = db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		routeCache = cache.NewSQLRouteCache(conn)
	} else {
		dbPath := config.Get("DB_PATH", "data/app.db")
		seedPath := config.Get("SEED_PATH", "data/seeds/hotspots.json")

		conn, err = openSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}

		// Initialize schema and seed demo hotspots on startup for local runs.
		if err := initAndSeed(conn, seedPath); err != nil {
			log.Fatal(err)
		}

		routeCache = cache.NewSqliteRouteCache(conn)
	}
	defer conn.Close()

	// A Redis route cache takes precedence over the SQL-backed one when
	// configured.
	if redisURL := strings.TrimSpace(os.Getenv("REDIS_URL")); redisURL != "" {
		redisOpts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal(err)
		}
		routeCache = cache.NewRedisRouteCache(redis.NewClient(redisOpts), 15*time.Minute)
	}

	repo := repositories.NewSQLHotspotRepository(conn)
	router := api.NewRouter(repo, routeCache)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openSqlite(dbPath string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return conn, nil
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
