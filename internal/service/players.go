package service

import (
	"context"
	"fmt"

	"github.com/fortuna/metis/internal/scoring"
	"github.com/fortuna/metis/internal/store"
	"github.com/fortuna/metis/internal/store/repository"
)

// PlayerService handles player-related business logic
type PlayerService struct {
	playerRepo    *repository.PlayerRepository
	scorecardRepo *repository.ScorecardRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(db *store.Database) *PlayerService {
	return &PlayerService{
		playerRepo:    repository.NewPlayerRepository(db),
		scorecardRepo: repository.NewScorecardRepository(db),
	}
}

// GetPlayer retrieves a player by name
func (s *PlayerService) GetPlayer(ctx context.Context, name string) (*store.Player, error) {
	player, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}
	return player, nil
}

// ListPlayers retrieves every known player
func (s *PlayerService) ListPlayers(ctx context.Context) ([]*store.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return players, nil
}

// CreatePlayer registers a player explicitly. created is false when the
// name is already taken — reported to the caller, not raised.
func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (bool, error) {
	created, err := s.playerRepo.Create(ctx, name)
	if err != nil {
		return false, fmt.Errorf("creating player: %w", err)
	}
	return created, nil
}

// DeletePlayer removes a player and all their scorecards
func (s *PlayerService) DeletePlayer(ctx context.Context, name string) error {
	if err := s.playerRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	return nil
}

// GetPlayerScorecards retrieves a player's scorecards, newest first
func (s *PlayerService) GetPlayerScorecards(ctx context.Context, name string) ([]*store.Scorecard, error) {
	cards, err := s.scorecardRepo.ListByPlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching scorecards: %w", err)
	}
	return cards, nil
}

// CategoryBreakdown is a player's aggregate positive rate per display
// category. Nil percentages mean the player has no tagged events there.
type CategoryBreakdown struct {
	PlayerName  string              `json:"player_name"`
	Scorecards  int                 `json:"scorecards"`
	Percentages map[string]*float64 `json:"percentages"`
}

// GetPlayerCategoryBreakdown aggregates all of a player's scorecards into
// per-category percentages
func (s *PlayerService) GetPlayerCategoryBreakdown(ctx context.Context, name string) (*CategoryBreakdown, error) {
	cards, err := s.scorecardRepo.ListByPlayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetching scorecards: %w", err)
	}

	return &CategoryBreakdown{
		PlayerName:  name,
		Scorecards:  len(cards),
		Percentages: scoring.AllCategoryPercentages(cards),
	}, nil
}
