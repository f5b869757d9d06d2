package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fortuna/metis/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a player. Names are case-sensitive unique; created is
// false when the name already exists, which callers treat as a rejected
// request rather than a failure.
func (r *PlayerRepository) Create(ctx context.Context, name string) (bool, error) {
	query := `
		INSERT INTO players (name, date_created)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`

	result, err := r.db.DB().ExecContext(ctx, query, name, time.Now().Unix())
	if err != nil {
		return false, fmt.Errorf("inserting player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("inserting player: %w", err)
	}
	return affected > 0, nil
}

// GetByName finds a player by name
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*store.Player, error) {
	query := `SELECT name, date_created FROM players WHERE name = $1`

	player := &store.Player{}
	err := r.db.DB().QueryRowContext(ctx, query, name).Scan(&player.Name, &player.DateCreated)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// GetAll returns every player, alphabetical
func (r *PlayerRepository) GetAll(ctx context.Context) ([]*store.Player, error) {
	query := `SELECT name, date_created FROM players ORDER BY name`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		if err := rows.Scan(&player.Name, &player.DateCreated); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}

// Delete removes a player and all of their scorecards. The cascade lives
// here in application code: the scorecards FK is referential but deletion
// is not enforced at the database level on every path.
func (r *PlayerRepository) Delete(ctx context.Context, name string) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scorecards WHERE player_name = $1`, name); err != nil {
		return fmt.Errorf("deleting scorecards: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM players WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("player not found: %s", name)
	}

	return tx.Commit()
}
