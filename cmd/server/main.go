package main

import (
	"database/sql"
	"log"
	"net/http"

	"sushimenu/internal/config"
	"sushimenu/internal/db"
	"sushimenu/internal/logger"
	"sushimenu/internal/sushi"
	"sushimenu/internal/transport"

	"go.uber.org/zap"
)

// Indirections for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func newServer(database *sql.DB) http.Handler {
	repo := sushi.NewRepository(database)
	svc := sushi.NewService(repo)

	api := transport.NewRouter(svc)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/", api)

	return mux
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	handler := newServer(database)

	logger.L().Info("catalog server running",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	return startServerFunc(":"+cfg.AppPort, handler)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
