package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/fortuna/metis/internal/store"
	"github.com/fortuna/metis/internal/store/repository"
)

// StatsService handles the dashboard read models: the per-category team
// statistics series and the single-number cog score series.
type StatsService struct {
	teamStatsRepo *repository.TeamStatsRepository
	cogScoreRepo  *repository.CogScoreRepository
}

// NewStatsService creates a new stats service
func NewStatsService(db *store.Database) *StatsService {
	return &StatsService{
		teamStatsRepo: repository.NewTeamStatsRepository(db),
		cogScoreRepo:  repository.NewCogScoreRepository(db),
	}
}

// GetTeamSeries returns every statistics row for a team, date-ordered
func (s *StatsService) GetTeamSeries(ctx context.Context, team string) ([]*store.TeamStatistics, error) {
	series, err := s.teamStatsRepo.Series(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching team series: %w", err)
	}
	return series, nil
}

// GetTeamSeriesByCategory returns one category's time series for a team
func (s *StatsService) GetTeamSeriesByCategory(ctx context.Context, team, category string) ([]*store.TeamStatistics, error) {
	series, err := s.teamStatsRepo.SeriesByCategory(ctx, team, category)
	if err != nil {
		return nil, fmt.Errorf("fetching category series: %w", err)
	}
	return series, nil
}

// OverallPoint is one date's overall score with its game metadata.
type OverallPoint struct {
	GameDateISO  string  `json:"game_date_iso"`
	OverallScore float64 `json:"overall_score"`
	Opponent     string  `json:"opponent"`
	CSVFilename  string  `json:"csv_filename"`
}

// GetTeamOverallScores derives the per-date overall score series from the
// statistics table
func (s *StatsService) GetTeamOverallScores(ctx context.Context, team string) ([]*OverallPoint, error) {
	scores, err := s.teamStatsRepo.OverallScores(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching overall scores: %w", err)
	}
	infos, err := s.teamStatsRepo.GameInfos(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching game info: %w", err)
	}

	points := make([]*OverallPoint, 0, len(scores))
	for date, score := range scores {
		point := &OverallPoint{GameDateISO: date, OverallScore: score}
		if info, ok := infos[date]; ok {
			point.Opponent = info.Opponent
			point.CSVFilename = info.CSVFilename
		}
		points = append(points, point)
	}
	sort.Slice(points, func(a, b int) bool {
		return points[a].GameDateISO < points[b].GameDateISO
	})

	return points, nil
}

// GetTeamCogScores returns the team's upserted score series
func (s *StatsService) GetTeamCogScores(ctx context.Context, team string) ([]*store.TeamCogScore, error) {
	scores, err := s.cogScoreRepo.TeamSeries(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching team cog scores: %w", err)
	}
	return scores, nil
}

// GetPlayerCogScores returns a player's score series
func (s *StatsService) GetPlayerCogScores(ctx context.Context, playerName string) ([]*store.PlayerCogScore, error) {
	scores, err := s.cogScoreRepo.PlayerSeries(ctx, playerName)
	if err != nil {
		return nil, fmt.Errorf("fetching player cog scores: %w", err)
	}
	return scores, nil
}

// RecordTeamScore upserts a manually entered team cog score and reports
// whether it was inserted or updated
func (s *StatsService) RecordTeamScore(ctx context.Context, score *store.TeamCogScore) (string, error) {
	action, err := s.cogScoreRepo.UpsertTeam(ctx, score)
	if err != nil {
		return "", fmt.Errorf("recording team score: %w", err)
	}
	return action, nil
}
