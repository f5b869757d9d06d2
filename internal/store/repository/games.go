package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fortuna/metis/internal/gameid"
	"github.com/fortuna/metis/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// Create inserts a game. The id is content-derived, so re-inserting the
// same game is treated as success, not error.
func (r *GameRepository) Create(ctx context.Context, game *store.Game) error {
	if game.CreatedAt == 0 {
		game.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO games (id, date, date_string, opponent, team, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		game.ID, game.Date, game.DateString, game.Opponent, game.Team, game.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting game: %w", err)
	}

	return nil
}

// GetByID finds a game by its content-derived id
func (r *GameRepository) GetByID(ctx context.Context, id string) (*store.Game, error) {
	query := `
		SELECT id, date, date_string, opponent, team, created_at
		FROM games
		WHERE id = $1
	`

	game := &store.Game{}
	err := r.db.DB().QueryRowContext(ctx, query, id).Scan(
		&game.ID, &game.Date, &game.DateString, &game.Opponent, &game.Team, &game.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// Exists reports whether a game is already recorded for the given date and
// team. Opponent is deliberately not part of the check: a team plays at
// most one game per calendar date.
func (r *GameRepository) Exists(ctx context.Context, dateString, team string) (string, bool, error) {
	query := `SELECT id FROM games WHERE date_string = $1 AND team = $2`

	var id string
	err := r.db.DB().QueryRowContext(ctx, query, dateString, team).Scan(&id)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("checking game existence: %w", err)
	}

	return id, true, nil
}

// GetOrCreate resolves the game for a (date, opponent, team) triple,
// creating it when it is first seen. The stored date is local midnight of
// the game date in epoch seconds.
func (r *GameRepository) GetOrCreate(ctx context.Context, dateString, opponent, team string) (*store.Game, error) {
	id := gameid.Generate(dateString, opponent, team)

	game, err := r.GetByID(ctx, id)
	if err == nil {
		return game, nil
	}

	date, ok := gameid.DateStringToTimestamp(dateString)
	if !ok {
		return nil, fmt.Errorf("invalid game date %q", dateString)
	}

	game = &store.Game{
		ID:         id,
		Date:       date,
		DateString: dateString,
		Opponent:   opponent,
		Team:       team,
		CreatedAt:  time.Now().Unix(),
	}
	if err := r.Create(ctx, game); err != nil {
		return nil, err
	}

	game, err = r.GetByID(ctx, id)
	if err == nil {
		return game, nil
	}

	// A same-date game for this team may already hold the unique slot
	// under a different id (different opponent string); resolve to it.
	existingID, exists, exErr := r.Exists(ctx, dateString, team)
	if exErr != nil {
		return nil, exErr
	}
	if exists {
		return r.GetByID(ctx, existingID)
	}
	return nil, err
}

// List returns all games for a team, newest first
func (r *GameRepository) List(ctx context.Context, team string) ([]*store.Game, error) {
	query := `
		SELECT id, date, date_string, opponent, team, created_at
		FROM games
		WHERE team = $1
		ORDER BY date DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, team)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// scanGames scans multiple game rows
func (r *GameRepository) scanGames(rows *sql.Rows) ([]*store.Game, error) {
	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		err := rows.Scan(
			&game.ID, &game.Date, &game.DateString, &game.Opponent, &game.Team, &game.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
