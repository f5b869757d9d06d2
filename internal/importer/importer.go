package importer

import (
	"context"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/fortuna/metis/internal/gameid"
	"github.com/fortuna/metis/internal/ingest/megacsv"
	"github.com/fortuna/metis/internal/scoring"
	"github.com/fortuna/metis/internal/store"
	"github.com/fortuna/metis/internal/store/repository"
)

// SourceCSVImport tags cog score rows produced by the import pipeline.
const SourceCSVImport = "csv_import"

// Importer runs the Validator -> Preprocessor -> Score Calculator ->
// persistence pipeline for mega CSVs. One file at a time, synchronous.
type Importer struct {
	games      gameStore
	scorecards scorecardStore
	cogScores  cogScoreStore
	teamStats  teamStatsStore

	logger *log.Logger
}

// New constructs an Importer over the database-backed repositories.
func New(db *store.Database, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.New(log.Writer(), "[importer] ", log.LstdFlags)
	}
	return &Importer{
		games:      repository.NewGameRepository(db),
		scorecards: repository.NewScorecardRepository(db),
		cogScores:  repository.NewCogScoreRepository(db),
		teamStats:  repository.NewTeamStatsRepository(db),
		logger:     logger,
	}
}

// Import runs the full pipeline for one mega CSV. A duplicate game returns
// {Success:false, Duplicate:true} with the existing game id and leaves all
// state untouched.
func (i *Importer) Import(ctx context.Context, path, team string) *ImportResult {
	validation := i.ValidateUpload(ctx, path, team)
	if !validation.Valid {
		return &ImportResult{
			Success:   false,
			Error:     validation.Error,
			Duplicate: validation.Duplicate,
			GameID:    validation.GameID,
			Date:      validation.Date,
			Opponent:  validation.Opponent,
			Team:      team,
		}
	}

	manifest, err := megacsv.Preprocess(path, team)
	if err != nil {
		return &ImportResult{Success: false, Error: err.Error(), Team: team}
	}
	defer func() {
		if err := manifest.Cleanup(); err != nil {
			i.logger.Printf("cleanup after %s failed: %v", filepath.Base(path), err)
		}
	}()

	game, err := i.games.GetOrCreate(ctx, manifest.Date, manifest.Opponent, team)
	if err != nil {
		return &ImportResult{Success: false, Error: fmt.Sprintf("creating game: %v", err), Team: team}
	}

	result := &ImportResult{
		Success:  true,
		GameID:   game.ID,
		Date:     manifest.Date,
		Opponent: manifest.Opponent,
		Team:     team,
	}

	if manifest.TeamCSV != "" {
		overall, err := i.importTeamSlice(ctx, manifest, game, filepath.Base(path))
		if err != nil {
			return &ImportResult{Success: false, Error: err.Error(), GameID: game.ID, Team: team}
		}
		result.TeamProcessed = true
		result.OverallScore = overall
	}

	for _, name := range manifest.PlayerNames {
		if err := i.importPlayerSlice(ctx, manifest, game, name); err != nil {
			return &ImportResult{Success: false, Error: err.Error(), GameID: game.ID, Team: team}
		}
		result.PlayersProcessed++
	}

	i.logger.Printf("imported %s: game %s, team=%v, players=%d",
		filepath.Base(path), game.ID, result.TeamProcessed, result.PlayersProcessed)

	return result
}

// importTeamSlice scores the team partition and persists its scorecard,
// per-category statistics rows, and the overall cog score.
func (i *Importer) importTeamSlice(ctx context.Context, manifest *megacsv.Manifest, game *store.Game, filename string) (float64, error) {
	table, err := megacsv.ReadTable(manifest.TeamCSV)
	if err != nil {
		return 0, fmt.Errorf("reading team slice: %w", err)
	}

	score := scoring.ScoreTable(table)

	card := scoring.BuildScorecard(table)
	card.PlayerName = manifest.Team // team as pseudo-player
	card.GameID.String = game.ID
	card.GameID.Valid = true
	if err := i.scorecards.Create(ctx, card); err != nil {
		return 0, fmt.Errorf("storing team scorecard: %w", err)
	}

	dateISO, err := dateStringToISO(manifest.Date)
	if err != nil {
		return 0, err
	}

	calculatedAt := time.Now()
	for _, column := range scoring.RawColumns {
		tally := score.Categories[column]
		stats := &store.TeamStatistics{
			GameDateISO:   dateISO,
			Team:          manifest.Team,
			Opponent:      manifest.Opponent,
			Category:      column,
			Percentage:    tally.Score,
			PositiveCount: tally.Positive,
			NegativeCount: tally.Negative,
			TotalCount:    tally.Total,
			OverallScore:  score.Overall,
			CSVFilename:   filename,
			CalculatedAt:  calculatedAt,
		}
		if err := i.teamStats.Upsert(ctx, stats); err != nil {
			return 0, fmt.Errorf("storing team statistics for %s: %w", column, err)
		}
	}

	teamScore := &store.TeamCogScore{
		GameDate: manifest.Date,
		Team:     manifest.Team,
		Opponent: manifest.Opponent,
		Score:    int(math.Round(score.Overall)),
		Source:   SourceCSVImport,
		Note:     filename,
	}
	if _, err := i.cogScores.UpsertTeam(ctx, teamScore); err != nil {
		return 0, fmt.Errorf("storing team cog score: %w", err)
	}

	return score.Overall, nil
}

// importPlayerSlice scores one player partition and persists the scorecard
// and the player's cog score.
func (i *Importer) importPlayerSlice(ctx context.Context, manifest *megacsv.Manifest, game *store.Game, name string) error {
	table, err := megacsv.ReadTable(manifest.PlayerCSVs[name])
	if err != nil {
		return fmt.Errorf("reading slice for %s: %w", name, err)
	}

	score := scoring.ScoreTable(table)

	card := scoring.BuildScorecard(table)
	card.PlayerName = name
	card.GameID.String = game.ID
	card.GameID.Valid = true
	if err := i.scorecards.Create(ctx, card); err != nil {
		return fmt.Errorf("storing scorecard for %s: %w", name, err)
	}

	playerScore := &store.PlayerCogScore{
		GameDate:   manifest.Date,
		PlayerName: name,
		Opponent:   manifest.Opponent,
		Score:      int(math.Round(score.Overall)),
		Source:     SourceCSVImport,
	}
	if _, err := i.cogScores.UpsertPlayer(ctx, playerScore); err != nil {
		return fmt.Errorf("storing cog score for %s: %w", name, err)
	}

	return nil
}

// dateStringToISO converts MM.DD.YY to YYYY-MM-DD.
func dateStringToISO(dateString string) (string, error) {
	ts, ok := gameid.DateStringToTimestamp(dateString)
	if !ok {
		return "", fmt.Errorf("invalid game date %q", dateString)
	}
	return time.Unix(ts, 0).Format("2006-01-02"), nil
}
