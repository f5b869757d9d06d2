package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/metis/internal/store"
)

// Upsert outcomes reported to callers.
const (
	UpsertInserted = "inserted"
	UpsertUpdated  = "updated"
)

// CogScoreRepository handles the team and player cognition score series.
// (game_date, team|player, opponent) is a soft-unique key enforced here by
// check-then-act, which is safe under the pipeline's single-writer model.
type CogScoreRepository struct {
	db *store.Database
}

// NewCogScoreRepository creates a new cog score repository
func NewCogScoreRepository(db *store.Database) *CogScoreRepository {
	return &CogScoreRepository{db: db}
}

// UpsertTeam inserts or updates the team score for (game_date, team,
// opponent) and reports which happened. Re-processing the same game updates
// in place rather than duplicating.
func (r *CogScoreRepository) UpsertTeam(ctx context.Context, score *store.TeamCogScore) (string, error) {
	var id int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id FROM team_cog_scores WHERE game_date = $1 AND team = $2 AND opponent = $3`,
		score.GameDate, score.Team, score.Opponent,
	).Scan(&id)

	if err == sql.ErrNoRows {
		insert := `
			INSERT INTO team_cog_scores (game_date, team, opponent, score, source, note)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		if err := r.db.DB().QueryRowContext(ctx, insert,
			score.GameDate, score.Team, score.Opponent, score.Score, score.Source, score.Note,
		).Scan(&score.ID); err != nil {
			return "", fmt.Errorf("inserting team cog score: %w", err)
		}
		return UpsertInserted, nil
	}
	if err != nil {
		return "", fmt.Errorf("querying team cog score: %w", err)
	}

	update := `
		UPDATE team_cog_scores
		SET score = $1, source = $2, note = $3, updated_at = NOW()
		WHERE id = $4
	`
	if _, err := r.db.DB().ExecContext(ctx, update, score.Score, score.Source, score.Note, id); err != nil {
		return "", fmt.Errorf("updating team cog score: %w", err)
	}
	score.ID = id
	return UpsertUpdated, nil
}

// TeamExists reports whether a team score is recorded for the key
func (r *CogScoreRepository) TeamExists(ctx context.Context, gameDate, team, opponent string) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM team_cog_scores WHERE game_date = $1 AND team = $2 AND opponent = $3)`,
		gameDate, team, opponent,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking team cog score: %w", err)
	}
	return exists, nil
}

// TeamSeries returns a team's score series, oldest first
func (r *CogScoreRepository) TeamSeries(ctx context.Context, team string) ([]*store.TeamCogScore, error) {
	query := `
		SELECT id, game_date, team, opponent, score, source, note, created_at, updated_at
		FROM team_cog_scores
		WHERE team = $1
		ORDER BY created_at
	`

	rows, err := r.db.DB().QueryContext(ctx, query, team)
	if err != nil {
		return nil, fmt.Errorf("querying team cog scores: %w", err)
	}
	defer rows.Close()

	var scores []*store.TeamCogScore
	for rows.Next() {
		s := &store.TeamCogScore{}
		if err := rows.Scan(&s.ID, &s.GameDate, &s.Team, &s.Opponent, &s.Score, &s.Source, &s.Note, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning team cog score: %w", err)
		}
		scores = append(scores, s)
	}

	return scores, rows.Err()
}

// UpsertPlayer mirrors UpsertTeam for an individual player's series
func (r *CogScoreRepository) UpsertPlayer(ctx context.Context, score *store.PlayerCogScore) (string, error) {
	var id int
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id FROM player_cog_scores WHERE game_date = $1 AND player_name = $2 AND opponent = $3`,
		score.GameDate, score.PlayerName, score.Opponent,
	).Scan(&id)

	if err == sql.ErrNoRows {
		insert := `
			INSERT INTO player_cog_scores (game_date, player_name, opponent, score, source, note)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		if err := r.db.DB().QueryRowContext(ctx, insert,
			score.GameDate, score.PlayerName, score.Opponent, score.Score, score.Source, score.Note,
		).Scan(&score.ID); err != nil {
			return "", fmt.Errorf("inserting player cog score: %w", err)
		}
		return UpsertInserted, nil
	}
	if err != nil {
		return "", fmt.Errorf("querying player cog score: %w", err)
	}

	update := `
		UPDATE player_cog_scores
		SET score = $1, source = $2, note = $3, updated_at = NOW()
		WHERE id = $4
	`
	if _, err := r.db.DB().ExecContext(ctx, update, score.Score, score.Source, score.Note, id); err != nil {
		return "", fmt.Errorf("updating player cog score: %w", err)
	}
	score.ID = id
	return UpsertUpdated, nil
}

// PlayerSeries returns a player's score series, oldest first
func (r *CogScoreRepository) PlayerSeries(ctx context.Context, playerName string) ([]*store.PlayerCogScore, error) {
	query := `
		SELECT id, game_date, player_name, opponent, score, source, note, created_at, updated_at
		FROM player_cog_scores
		WHERE player_name = $1
		ORDER BY created_at
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerName)
	if err != nil {
		return nil, fmt.Errorf("querying player cog scores: %w", err)
	}
	defer rows.Close()

	var scores []*store.PlayerCogScore
	for rows.Next() {
		s := &store.PlayerCogScore{}
		if err := rows.Scan(&s.ID, &s.GameDate, &s.PlayerName, &s.Opponent, &s.Score, &s.Source, &s.Note, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning player cog score: %w", err)
		}
		scores = append(scores, s)
	}

	return scores, rows.Err()
}
