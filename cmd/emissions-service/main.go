package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Ammulu15/transport-food-data-collection/internal/auth"
	"github.com/Ammulu15/transport-food-data-collection/internal/config"
	"github.com/Ammulu15/transport-food-data-collection/internal/contact"
	"github.com/Ammulu15/transport-food-data-collection/internal/food"
	"github.com/Ammulu15/transport-food-data-collection/internal/logging"
	"github.com/Ammulu15/transport-food-data-collection/internal/qr"
	"github.com/Ammulu15/transport-food-data-collection/internal/storage"
	"github.com/Ammulu15/transport-food-data-collection/internal/transport"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatalw("failed to create data directory", "dir", dir, "error", err)
		}
	}

	db, err := storage.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatalw("failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.Close()

	store := storage.New(db)
	handler := SetupRouter(store, logger, []byte(cfg.JWTSecret))

	logger.Infow("starting server", "port", cfg.ServerPort, "db", cfg.DBPath)
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func SetupRouter(store *storage.Store, logger *zap.SugaredLogger, secret []byte) http.Handler {
	owner := func(h http.Handler) http.Handler {
		return auth.OwnerMiddleware(secret, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/register", auth.RegisterHandler(store))
	mux.Handle("/api/v1/login", auth.LoginHandler(store, secret))
	mux.Handle("/api/v1/reset-password", auth.ResetPasswordHandler(store))
	mux.Handle("/api/v1/transport", owner(transport.Handler(store)))
	mux.Handle("/api/v1/transport/modes", transport.ModesHandler())
	mux.Handle("/api/v1/food", owner(food.Handler(store)))
	mux.Handle("/api/v1/contact", contact.SubmitHandler(store))
	mux.Handle("/api/v1/qr", qr.Handler())

	return logging.RequestLogger(logger, mux)
}
