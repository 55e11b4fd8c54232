// Command grahabalad is the hosted Grahabala service.
// It serves the scoring API, persists charts and reports, and exposes a
// health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/grahabala/grahabala/internal/api"
	"github.com/grahabala/grahabala/internal/platform"
	"github.com/grahabala/grahabala/internal/registry"
	"github.com/grahabala/grahabala/internal/store"
	"github.com/grahabala/grahabala/pkg/ashtakavarga"
)

type config struct {
	Port        string
	DatabaseURL string
	APIKey      string

	StorageBackend string
	LocalPath      string
	GCSBucket      string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/grahabala?sslmode=disable"),
		APIKey:      os.Getenv("API_KEY"),

		StorageBackend: envOrDefault("STORAGE_BACKEND", "local"),
		LocalPath:      envOrDefault("LOCAL_STORAGE_PATH", "/tmp/grahabala-data"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       os.Getenv("S3_REGION"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
	}
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// The engine refuses to start on an inconsistent benefic table.
	engine, err := ashtakavarga.NewEngine(nil)
	if err != nil {
		log.Fatalf("initialize engine: %v", err)
	}

	storage, err := selectStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("initialize storage: %v", err)
	}

	registrySvc := registry.NewService(db)
	handler := api.NewHandler(engine, registrySvc, storage, nil)

	apiMux := http.NewServeMux()
	handler.RegisterRoutes(apiMux)

	// Health stays outside the API key check so load balancers can probe it.
	mux := http.NewServeMux()
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKey)(apiMux))
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting grahabalad on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-sigCtx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func selectStorage(ctx context.Context, cfg config) (store.StorageClient, error) {
	switch cfg.StorageBackend {
	case "gcs":
		return store.NewGCSStorage(ctx, cfg.GCSBucket)
	case "s3":
		return store.NewS3Storage(ctx, store.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return store.NewLocalStorage(cfg.LocalPath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
