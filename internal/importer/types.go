// Package importer orchestrates the end-to-end import of mega CSVs:
// validation, preprocessing, scoring, and persistence. Every public
// operation returns a structured result rather than letting errors cross
// into the calling layer undescribed; a duplicate game is an expected
// outcome, not a failure.
package importer

import (
	"context"

	"github.com/fortuna/metis/internal/store"
)

// ValidationResult is the structured outcome of an upload pre-check.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
	GameID    string `json:"game_id,omitempty"`
	Date      string `json:"date,omitempty"`
	Opponent  string `json:"opponent,omitempty"`
}

// ImportResult is the structured outcome of one mega CSV import.
type ImportResult struct {
	Success          bool    `json:"success"`
	Error            string  `json:"error,omitempty"`
	Duplicate        bool    `json:"duplicate,omitempty"`
	GameID           string  `json:"game_id,omitempty"`
	Date             string  `json:"date,omitempty"`
	Opponent         string  `json:"opponent,omitempty"`
	Team             string  `json:"team,omitempty"`
	TeamProcessed    bool    `json:"team_processed"`
	PlayersProcessed int     `json:"players_processed"`
	OverallScore     float64 `json:"overall_score"`
}

// BatchReport collects per-file outcomes of a batch run. Individual file
// failures never abort the batch.
type BatchReport struct {
	JobID     string                   `json:"job_id"`
	Team      string                   `json:"team"`
	Processed int                      `json:"processed"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
	Results   map[string]*ImportResult `json:"results"` // keyed by file path
}

// Store interfaces consumed by the pipeline. The concrete repository types
// satisfy them; tests substitute in-memory fakes.

type gameStore interface {
	Exists(ctx context.Context, dateString, team string) (string, bool, error)
	GetOrCreate(ctx context.Context, dateString, opponent, team string) (*store.Game, error)
}

type scorecardStore interface {
	Create(ctx context.Context, card *store.Scorecard) error
}

type cogScoreStore interface {
	UpsertTeam(ctx context.Context, score *store.TeamCogScore) (string, error)
	UpsertPlayer(ctx context.Context, score *store.PlayerCogScore) (string, error)
}

type teamStatsStore interface {
	Upsert(ctx context.Context, stats *store.TeamStatistics) error
}
