package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/fortuna/metis/internal/store"
	"github.com/fortuna/metis/internal/store/repository"
)

// SourceStatisticsSync tags cog scores backfilled from the statistics table.
const SourceStatisticsSync = "statistics_sync"

// AnalyticsService reconciles the two score stores: team_statistics carries
// an overall score per game, team_cog_scores is the curated series the
// dashboard reads. Sync copies overall scores into the cog score series for
// any game date that does not have one yet.
type AnalyticsService struct {
	teamStatsRepo *repository.TeamStatsRepository
	cogScoreRepo  *repository.CogScoreRepository
	logger        *log.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(db *store.Database, logger *log.Logger) *AnalyticsService {
	if logger == nil {
		logger = log.New(log.Writer(), "[analytics] ", log.LstdFlags)
	}
	return &AnalyticsService{
		teamStatsRepo: repository.NewTeamStatsRepository(db),
		cogScoreRepo:  repository.NewCogScoreRepository(db),
		logger:        logger,
	}
}

// SyncReport summarizes one reconciliation run.
type SyncReport struct {
	Team    string   `json:"team"`
	Checked int      `json:"checked"`
	Synced  int      `json:"synced"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// SyncOverallScores walks every game date present in team_statistics and
// inserts a cog score for the dates missing one. Existing rows are left
// alone so manual entries are never overwritten. The run is best effort: a
// failure on one date is recorded and the walk continues.
func (s *AnalyticsService) SyncOverallScores(ctx context.Context, team string) (*SyncReport, error) {
	overall, err := s.teamStatsRepo.OverallScores(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching overall scores: %w", err)
	}
	infos, err := s.teamStatsRepo.GameInfos(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("fetching game infos: %w", err)
	}

	report := &SyncReport{Team: team}
	for isoDate, score := range overall {
		report.Checked++

		gameDate, err := isoToGameDate(isoDate)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", isoDate, err))
			continue
		}

		info := infos[isoDate]
		exists, err := s.cogScoreRepo.TeamExists(ctx, gameDate, team, info.Opponent)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", isoDate, err))
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		_, err = s.cogScoreRepo.UpsertTeam(ctx, &store.TeamCogScore{
			GameDate: gameDate,
			Team:     team,
			Opponent: info.Opponent,
			Score:    int(math.Round(score)),
			Source:   SourceStatisticsSync,
			Note:     fmt.Sprintf("synced from %s", info.CSVFilename),
		})
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", isoDate, err))
			continue
		}

		s.logger.Printf("✓ Synced cog score for %s vs %s (%d)", gameDate, info.Opponent, int(math.Round(score)))
		report.Synced++
	}

	return report, nil
}

// isoToGameDate converts YYYY-MM-DD to the MM.DD.YY form the cog score
// tables key on.
func isoToGameDate(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", fmt.Errorf("parsing game date %q: %w", isoDate, err)
	}
	return t.Format("01.02.06"), nil
}
