package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fortuna/metis/internal/store"
)

// ScorecardRepository handles scorecard data access
type ScorecardRepository struct {
	db *store.Database
}

// NewScorecardRepository creates a new scorecard repository
func NewScorecardRepository(db *store.Database) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

// scorecardColumns is the full select/insert column set: base columns plus
// every counter, in schema order.
var scorecardColumns = append(
	[]string{"player_name", "game_id", "date_created"},
	store.ScorecardCounterColumns()...,
)

func scorecardPlaceholders() string {
	parts := make([]string, len(scorecardColumns))
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// Create inserts a scorecard, auto-creating the referenced player if absent
// so the pipeline tolerates out-of-order writes. Scorecards are insert-only:
// each ingestion produces a new row.
func (r *ScorecardRepository) Create(ctx context.Context, card *store.Scorecard) error {
	if card.DateCreated == 0 {
		card.DateCreated = time.Now().Unix()
	}

	playerQuery := `
		INSERT INTO players (name, date_created)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
	`
	if _, err := r.db.DB().ExecContext(ctx, playerQuery, card.PlayerName, time.Now().Unix()); err != nil {
		return fmt.Errorf("ensuring player: %w", err)
	}

	query := fmt.Sprintf(
		`INSERT INTO scorecards (%s) VALUES (%s) RETURNING id`,
		strings.Join(scorecardColumns, ", "),
		scorecardPlaceholders(),
	)

	args := make([]interface{}, 0, len(scorecardColumns))
	args = append(args, card.PlayerName, card.GameID, card.DateCreated)
	for _, counter := range card.Counters() {
		args = append(args, *counter)
	}

	if err := r.db.DB().QueryRowContext(ctx, query, args...).Scan(&card.ID); err != nil {
		return fmt.Errorf("inserting scorecard: %w", err)
	}

	return nil
}

// ListByPlayer returns all scorecards for a player, newest first
func (r *ScorecardRepository) ListByPlayer(ctx context.Context, playerName string) ([]*store.Scorecard, error) {
	query := fmt.Sprintf(
		`SELECT id, %s FROM scorecards WHERE player_name = $1 ORDER BY date_created DESC`,
		strings.Join(scorecardColumns, ", "),
	)

	rows, err := r.db.DB().QueryContext(ctx, query, playerName)
	if err != nil {
		return nil, fmt.Errorf("querying scorecards: %w", err)
	}
	defer rows.Close()

	return r.scanScorecards(rows)
}

// ListByGame returns all scorecards tied to a game
func (r *ScorecardRepository) ListByGame(ctx context.Context, gameID string) ([]*store.Scorecard, error) {
	query := fmt.Sprintf(
		`SELECT id, %s FROM scorecards WHERE game_id = $1 ORDER BY player_name`,
		strings.Join(scorecardColumns, ", "),
	)

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying scorecards: %w", err)
	}
	defer rows.Close()

	return r.scanScorecards(rows)
}

// Delete removes a single scorecard by id
func (r *ScorecardRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.DB().ExecContext(ctx, `DELETE FROM scorecards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting scorecard: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting scorecard: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("scorecard not found: %d", id)
	}
	return nil
}

// scanScorecards scans multiple scorecard rows
func (r *ScorecardRepository) scanScorecards(rows *sql.Rows) ([]*store.Scorecard, error) {
	var cards []*store.Scorecard
	for rows.Next() {
		card := &store.Scorecard{}
		dests := make([]interface{}, 0, len(scorecardColumns)+1)
		dests = append(dests, &card.ID, &card.PlayerName, &card.GameID, &card.DateCreated)
		for _, counter := range card.Counters() {
			dests = append(dests, counter)
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scanning scorecard: %w", err)
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}
