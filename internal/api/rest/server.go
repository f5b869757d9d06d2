package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/metis/internal/cache"
	"github.com/fortuna/metis/internal/importer"
	"github.com/fortuna/metis/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server. redisCache may be nil.
func NewServer(port string, db *store.Database, redisCache *cache.RedisCache, imp *importer.Importer) *Server {
	handler := NewHandler(db, redisCache, imp)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Imports
	api.HandleFunc("/imports", handler.ImportUpload).Methods("POST")
	api.HandleFunc("/imports/batch", handler.ImportBatch).Methods("POST")

	// Games
	api.HandleFunc("/games", handler.GetGames).Methods("GET")
	api.HandleFunc("/games/{gameID}", handler.GetGame).Methods("GET")
	api.HandleFunc("/games/{gameID}/scorecards", handler.GetGameScorecards).Methods("GET")

	// Players
	api.HandleFunc("/players", handler.GetPlayers).Methods("GET")
	api.HandleFunc("/players", handler.CreatePlayer).Methods("POST")
	api.HandleFunc("/players/{name}", handler.GetPlayer).Methods("GET")
	api.HandleFunc("/players/{name}", handler.DeletePlayer).Methods("DELETE")
	api.HandleFunc("/players/{name}/scorecards", handler.GetPlayerScorecards).Methods("GET")
	api.HandleFunc("/players/{name}/breakdown", handler.GetPlayerBreakdown).Methods("GET")

	// Statistics and scores
	api.HandleFunc("/stats/team", handler.GetTeamStats).Methods("GET")
	api.HandleFunc("/stats/team/overall", handler.GetTeamOverallScores).Methods("GET")
	api.HandleFunc("/stats/team/scores", handler.GetTeamCogScores).Methods("GET")
	api.HandleFunc("/stats/players/{name}/scores", handler.GetPlayerCogScores).Methods("GET")
	api.HandleFunc("/stats/sync", handler.SyncScores).Methods("POST")
	api.HandleFunc("/scores", handler.RecordScore).Methods("POST")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
