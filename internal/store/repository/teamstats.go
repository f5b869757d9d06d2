package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fortuna/metis/internal/store"
)

// TeamStatsRepository handles the per-category team statistics time series,
// the canonical queryable table behind the dashboard.
type TeamStatsRepository struct {
	db *store.Database
}

// NewTeamStatsRepository creates a new team statistics repository
func NewTeamStatsRepository(db *store.Database) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

// Upsert replaces the row for (game_date_iso, team, opponent, category).
// Unlike the cog score series this is a blind replace backed by the
// database unique constraint: recomputing a game always wins.
func (r *TeamStatsRepository) Upsert(ctx context.Context, stats *store.TeamStatistics) error {
	if stats.CalculatedAt.IsZero() {
		stats.CalculatedAt = time.Now()
	}

	query := `
		INSERT INTO team_statistics (game_date_iso, team, opponent, category,
			percentage, positive_count, negative_count, total_count,
			overall_score, csv_filename, calculated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (game_date_iso, team, opponent, category) DO UPDATE SET
			percentage = EXCLUDED.percentage,
			positive_count = EXCLUDED.positive_count,
			negative_count = EXCLUDED.negative_count,
			total_count = EXCLUDED.total_count,
			overall_score = EXCLUDED.overall_score,
			csv_filename = EXCLUDED.csv_filename,
			calculated_at = EXCLUDED.calculated_at
		RETURNING id
	`

	err := r.db.DB().QueryRowContext(ctx, query,
		stats.GameDateISO, stats.Team, stats.Opponent, stats.Category,
		stats.Percentage, stats.PositiveCount, stats.NegativeCount, stats.TotalCount,
		stats.OverallScore, stats.CSVFilename, stats.CalculatedAt,
	).Scan(&stats.ID)

	if err != nil {
		return fmt.Errorf("upserting team statistics: %w", err)
	}

	return nil
}

// Exists reports whether a row is recorded for the full key
func (r *TeamStatsRepository) Exists(ctx context.Context, gameDateISO, team, opponent, category string) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM team_statistics
			WHERE game_date_iso = $1 AND team = $2 AND opponent = $3 AND category = $4)`,
		gameDateISO, team, opponent, category,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking team statistics: %w", err)
	}
	return exists, nil
}

// SeriesByCategory returns one category's time series for a team
func (r *TeamStatsRepository) SeriesByCategory(ctx context.Context, team, category string) ([]*store.TeamStatistics, error) {
	query := `
		SELECT id, game_date_iso, team, opponent, category, percentage,
			positive_count, negative_count, total_count, overall_score,
			csv_filename, calculated_at
		FROM team_statistics
		WHERE team = $1 AND category = $2
		ORDER BY game_date_iso
	`

	rows, err := r.db.DB().QueryContext(ctx, query, team, category)
	if err != nil {
		return nil, fmt.Errorf("querying team statistics: %w", err)
	}
	defer rows.Close()

	return r.scanStats(rows)
}

// Series returns every category row for a team, date-ordered
func (r *TeamStatsRepository) Series(ctx context.Context, team string) ([]*store.TeamStatistics, error) {
	query := `
		SELECT id, game_date_iso, team, opponent, category, percentage,
			positive_count, negative_count, total_count, overall_score,
			csv_filename, calculated_at
		FROM team_statistics
		WHERE team = $1
		ORDER BY game_date_iso, category
	`

	rows, err := r.db.DB().QueryContext(ctx, query, team)
	if err != nil {
		return nil, fmt.Errorf("querying team statistics: %w", err)
	}
	defer rows.Close()

	return r.scanStats(rows)
}

// OverallScores derives the per-date overall score series. The overall is
// denormalized onto every category row, so one distinct row per date
// suffices.
func (r *TeamStatsRepository) OverallScores(ctx context.Context, team string) (map[string]float64, error) {
	query := `
		SELECT DISTINCT game_date_iso, overall_score
		FROM team_statistics
		WHERE team = $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, team)
	if err != nil {
		return nil, fmt.Errorf("querying overall scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var date string
		var score float64
		if err := rows.Scan(&date, &score); err != nil {
			return nil, fmt.Errorf("scanning overall score: %w", err)
		}
		scores[date] = score
	}

	return scores, rows.Err()
}

// GameInfo holds the per-date game metadata denormalized onto statistics rows.
type GameInfo struct {
	Opponent    string `json:"opponent"`
	CSVFilename string `json:"csv_filename"`
}

// GameInfos derives per-date game metadata, one entry per recorded date
func (r *TeamStatsRepository) GameInfos(ctx context.Context, team string) (map[string]GameInfo, error) {
	query := `
		SELECT DISTINCT game_date_iso, opponent, csv_filename
		FROM team_statistics
		WHERE team = $1
	`

	rows, err := r.db.DB().QueryContext(ctx, query, team)
	if err != nil {
		return nil, fmt.Errorf("querying game info: %w", err)
	}
	defer rows.Close()

	infos := make(map[string]GameInfo)
	for rows.Next() {
		var date string
		var info GameInfo
		if err := rows.Scan(&date, &info.Opponent, &info.CSVFilename); err != nil {
			return nil, fmt.Errorf("scanning game info: %w", err)
		}
		infos[date] = info
	}

	return infos, rows.Err()
}

// scanStats scans multiple team statistics rows
func (r *TeamStatsRepository) scanStats(rows *sql.Rows) ([]*store.TeamStatistics, error) {
	var all []*store.TeamStatistics
	for rows.Next() {
		stats := &store.TeamStatistics{}
		err := rows.Scan(
			&stats.ID, &stats.GameDateISO, &stats.Team, &stats.Opponent, &stats.Category,
			&stats.Percentage, &stats.PositiveCount, &stats.NegativeCount, &stats.TotalCount,
			&stats.OverallScore, &stats.CSVFilename, &stats.CalculatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team statistics: %w", err)
		}
		all = append(all, stats)
	}

	return all, rows.Err()
}
