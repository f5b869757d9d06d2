package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fortuna/metis/internal/cache"
	"github.com/fortuna/metis/internal/gameid"
	"github.com/fortuna/metis/internal/importer"
	"github.com/fortuna/metis/internal/service"
	"github.com/fortuna/metis/internal/store"
	"github.com/gorilla/mux"
)

// SourceManual tags cog scores entered through the API rather than a CSV.
const SourceManual = "manual"

const maxUploadBytes = 32 << 20 // 32 MB

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db               *store.Database
	cache            *cache.RedisCache
	importer         *importer.Importer
	gameService      *service.GameService
	playerService    *service.PlayerService
	statsService     *service.StatsService
	analyticsService *service.AnalyticsService
}

// NewHandler creates a new handler. redisCache may be nil.
func NewHandler(db *store.Database, redisCache *cache.RedisCache, imp *importer.Importer) *Handler {
	return &Handler{
		db:               db,
		cache:            redisCache,
		importer:         imp,
		gameService:      service.NewGameService(db),
		playerService:    service.NewPlayerService(db),
		statsService:     service.NewStatsService(db),
		analyticsService: service.NewAnalyticsService(db, nil),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"service": "metis",
		"version": "1.0.0",
	})
}

// teamParam reads the team query parameter, falling back to the default team
func teamParam(r *http.Request) string {
	team := r.URL.Query().Get("team")
	if team == "" {
		team = gameid.DefaultTeam
	}
	return team
}

// ImportUpload accepts a multipart CSV upload and runs the import pipeline.
// The original filename is preserved because the game identity is parsed
// from it.
func (h *Handler) ImportUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing 'file' field", err)
		return
	}
	defer file.Close()

	team := r.FormValue("team")
	if team == "" {
		team = gameid.DefaultTeam
	}

	tempDir, err := os.MkdirTemp("", "metis-upload-")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to stage upload", err)
		return
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to stage upload", err)
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		respondError(w, http.StatusInternalServerError, "Failed to stage upload", err)
		return
	}
	dst.Close()

	result := h.importer.Import(r.Context(), path, team)
	switch {
	case result.Duplicate:
		respondJSON(w, http.StatusConflict, result)
	case !result.Success:
		respondJSON(w, http.StatusUnprocessableEntity, result)
	default:
		h.cache.InvalidateTeam(r.Context(), team)
		respondJSON(w, http.StatusOK, result)
	}
}

// ImportBatch imports CSVs already on the server's filesystem
func (h *Handler) ImportBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid batch request", err)
		return
	}
	if req.Team == "" {
		req.Team = gameid.DefaultTeam
	}

	var report *importer.BatchReport
	if req.Dir != "" {
		var err error
		report, err = h.importer.ImportDir(r.Context(), req.Dir, req.Team)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Failed to read import directory", err)
			return
		}
	} else {
		report = h.importer.ImportBatch(r.Context(), req.Paths, req.Team)
	}

	if report.Succeeded > 0 {
		h.cache.InvalidateTeam(r.Context(), req.Team)
	}
	respondJSON(w, http.StatusOK, report)
}

// GetGames returns all games for a team
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context(), teamParam(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetGame returns a specific game by ID
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetGameScorecards returns every scorecard attached to a game
func (h *Handler) GetGameScorecards(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["gameID"]

	cards, err := h.gameService.GetGameScorecards(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch scorecards", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scorecards": cards,
		"count":      len(cards),
	})
}

// GetPlayers returns all known players
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetPlayer returns a player by name
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	player, err := h.playerService.GetPlayer(r.Context(), name)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// CreatePlayer registers a player by name. Re-registering an existing name
// is reported, not rejected.
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player payload", err)
		return
	}

	created, err := h.playerService.CreatePlayer(r.Context(), req.Name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create player", err)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	respondJSON(w, status, map[string]interface{}{
		"name":    req.Name,
		"created": created,
	})
}

// DeletePlayer removes a player and their scorecards
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	if err := h.playerService.DeletePlayer(r.Context(), name); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete player", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Player deleted"})
}

// GetPlayerScorecards returns a player's scorecards
func (h *Handler) GetPlayerScorecards(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	cards, err := h.playerService.GetPlayerScorecards(r.Context(), name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch scorecards", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scorecards": cards,
		"count":      len(cards),
	})
}

// GetPlayerBreakdown returns a player's per-category percentages
func (h *Handler) GetPlayerBreakdown(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	breakdown, err := h.playerService.GetPlayerCategoryBreakdown(r.Context(), name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to calculate breakdown", err)
		return
	}

	respondJSON(w, http.StatusOK, breakdown)
}

// GetTeamStats returns the team statistics series, optionally filtered
// to one category
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)
	category := r.URL.Query().Get("category")

	if category != "" {
		series, err := h.statsService.GetTeamSeriesByCategory(r.Context(), team, category)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to fetch category series", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"series": series})
		return
	}

	h.respondCached(w, r, cache.TeamSeriesKey(team, "stats"), func() (interface{}, error) {
		series, err := h.statsService.GetTeamSeries(r.Context(), team)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"series": series}, nil
	})
}

// GetTeamOverallScores returns the date-ordered overall score series
func (h *Handler) GetTeamOverallScores(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)
	h.respondCached(w, r, cache.TeamSeriesKey(team, "overall"), func() (interface{}, error) {
		points, err := h.statsService.GetTeamOverallScores(r.Context(), team)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"points": points, "count": len(points)}, nil
	})
}

// GetTeamCogScores returns the team's cog score series
func (h *Handler) GetTeamCogScores(w http.ResponseWriter, r *http.Request) {
	team := teamParam(r)
	h.respondCached(w, r, cache.TeamSeriesKey(team, "scores"), func() (interface{}, error) {
		scores, err := h.statsService.GetTeamCogScores(r.Context(), team)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"scores": scores, "count": len(scores)}, nil
	})
}

// GetPlayerCogScores returns one player's cog score series
func (h *Handler) GetPlayerCogScores(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name := vars["name"]

	h.respondCached(w, r, cache.PlayerScoresKey(name), func() (interface{}, error) {
		scores, err := h.statsService.GetPlayerCogScores(r.Context(), name)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"scores": scores, "count": len(scores)}, nil
	})
}

// SyncScores reconciles statistics overall scores into the cog score series
func (h *Handler) SyncScores(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
			return
		}
	}
	if req.Team == "" {
		req.Team = gameid.DefaultTeam
	}

	report, err := h.analyticsService.SyncOverallScores(r.Context(), req.Team)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Sync failed", err)
		return
	}

	if report.Synced > 0 {
		h.cache.InvalidateTeam(r.Context(), req.Team)
	}
	respondJSON(w, http.StatusOK, report)
}

// RecordScore records a manually entered team cog score
func (h *Handler) RecordScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid score payload", err)
		return
	}

	outcome, err := h.statsService.RecordTeamScore(r.Context(), &store.TeamCogScore{
		GameDate: req.GameDate,
		Team:     req.Team,
		Opponent: req.Opponent,
		Score:    req.Score,
		Source:   SourceManual,
		Note:     req.Note,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to record score", err)
		return
	}

	h.cache.InvalidateTeam(r.Context(), req.Team)
	respondJSON(w, http.StatusOK, map[string]string{"result": outcome})
}

// respondCached serves from the redis cache when possible, otherwise
// computes the payload and stores it
func (h *Handler) respondCached(w http.ResponseWriter, r *http.Request, key string, fetch func() (interface{}, error)) {
	if cached, ok, err := h.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	data, err := fetch()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch data", err)
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to encode response", err)
		return
	}
	h.cache.Set(r.Context(), key, string(payload), cache.SeriesTTL)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
