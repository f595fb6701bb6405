package server

import (
	"net/http"
	"os"

	"starwars-api/config"
	"starwars-api/database"
	"starwars-api/handlers"
	"starwars-api/services"
	"starwars-api/store"

	"github.com/umakantv/go-utils/httpserver"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// checkAuth rejects every credential. All routes are registered with
// AuthType "none", so it is never consulted.
func checkAuth(r *http.Request) (bool, httpserver.RequestAuth) {
	return false, httpserver.RequestAuth{}
}

// InitLogger sets up the process-wide structured logger
func InitLogger() {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
}

// StartServer opens the database, wires the services and serves the API
// until the listener fails.
func StartServer(cfg *config.Config) {
	logger.Info("Starting Star Wars API...", zap.String("port", cfg.Port), zap.String("driver", cfg.Driver))

	dbConn := database.InitializeDatabase(cfg)
	defer dbConn.Close()

	st := store.New(dbConn)
	api := handlers.NewAPI(
		services.NewUserService(st, cfg.BcryptCost),
		services.NewCatalogService(st),
		services.NewFavoriteService(st),
	)

	server := httpserver.New(cfg.Port, checkAuth)

	for _, rt := range api.Routes() {
		server.Register(httpserver.Route{
			Name:     rt.Name,
			Method:   rt.Method,
			Path:     rt.Path,
			AuthType: "none",
		}, handlers.Instrument(rt))
		logger.Debug("Registered route", zap.String("route", rt.Name), zap.String("method", rt.Method), zap.String("path", rt.Path))
	}

	logger.Info("Star Wars API started on port " + cfg.Port)
	logger.Info("Health check: GET /health")
	logger.Info("API endpoints: /users, /people, /planets, /favorite")

	if err := server.Start(); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
		dbConn.Close()
		os.Exit(1)
	}
}
