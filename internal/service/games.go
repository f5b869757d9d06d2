package service

import (
	"context"
	"fmt"

	"github.com/fortuna/metis/internal/store"
	"github.com/fortuna/metis/internal/store/repository"
)

// GameService handles game-related business logic
type GameService struct {
	gameRepo      *repository.GameRepository
	scorecardRepo *repository.ScorecardRepository
}

// NewGameService creates a new game service
func NewGameService(db *store.Database) *GameService {
	return &GameService{
		gameRepo:      repository.NewGameRepository(db),
		scorecardRepo: repository.NewScorecardRepository(db),
	}
}

// GetGame retrieves a game by its content-derived id
func (s *GameService) GetGame(ctx context.Context, gameID string) (*store.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}
	return game, nil
}

// ListGames retrieves all games for a team, newest first
func (s *GameService) ListGames(ctx context.Context, team string) ([]*store.Game, error) {
	games, err := s.gameRepo.List(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}
	return games, nil
}

// GetGameScorecards retrieves every scorecard tied to a game, the team's
// pseudo-player sheet included
func (s *GameService) GetGameScorecards(ctx context.Context, gameID string) ([]*store.Scorecard, error) {
	cards, err := s.scorecardRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game scorecards: %w", err)
	}
	return cards, nil
}
