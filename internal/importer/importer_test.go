package importer

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/fortuna/metis/internal/gameid"
	"github.com/fortuna/metis/internal/store"
)

// In-memory fakes for the store interfaces.

type fakeGameStore struct {
	games map[string]*store.Game // keyed by date|team
	err   error
}

func newFakeGameStore() *fakeGameStore {
	return &fakeGameStore{games: make(map[string]*store.Game)}
}

func gameKey(dateString, team string) string {
	return dateString + "|" + team
}

func (f *fakeGameStore) Exists(ctx context.Context, dateString, team string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	if game, ok := f.games[gameKey(dateString, team)]; ok {
		return game.ID, true, nil
	}
	return "", false, nil
}

func (f *fakeGameStore) GetOrCreate(ctx context.Context, dateString, opponent, team string) (*store.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := gameKey(dateString, team)
	if game, ok := f.games[key]; ok {
		return game, nil
	}
	game := &store.Game{
		ID:         gameid.Generate(dateString, opponent, team),
		DateString: dateString,
		Opponent:   opponent,
		Team:       team,
	}
	f.games[key] = game
	return game, nil
}

type fakeScorecardStore struct {
	cards []*store.Scorecard
	err   error
}

func (f *fakeScorecardStore) Create(ctx context.Context, card *store.Scorecard) error {
	if f.err != nil {
		return f.err
	}
	f.cards = append(f.cards, card)
	return nil
}

type fakeCogScoreStore struct {
	team    []*store.TeamCogScore
	players []*store.PlayerCogScore
}

func (f *fakeCogScoreStore) UpsertTeam(ctx context.Context, score *store.TeamCogScore) (string, error) {
	f.team = append(f.team, score)
	return "inserted", nil
}

func (f *fakeCogScoreStore) UpsertPlayer(ctx context.Context, score *store.PlayerCogScore) (string, error) {
	f.players = append(f.players, score)
	return "inserted", nil
}

type fakeTeamStatsStore struct {
	rows []*store.TeamStatistics
}

func (f *fakeTeamStatsStore) Upsert(ctx context.Context, stats *store.TeamStatistics) error {
	f.rows = append(f.rows, stats)
	return nil
}

type fakes struct {
	games      *fakeGameStore
	scorecards *fakeScorecardStore
	cogScores  *fakeCogScoreStore
	teamStats  *fakeTeamStatsStore
}

func newTestImporter() (*Importer, *fakes) {
	f := &fakes{
		games:      newFakeGameStore(),
		scorecards: &fakeScorecardStore{},
		cogScores:  &fakeCogScoreStore{},
		teamStats:  &fakeTeamStatsStore{},
	}
	imp := &Importer{
		games:      f.games,
		scorecards: f.scorecards,
		cogScores:  f.cogScores,
		teamStats:  f.teamStats,
		logger:     log.New(io.Discard, "", 0),
	}
	return imp, f
}

const megaFixture = `Timeline,Row,Space Read,QB12 DM
03.15.24 Heat v Celtics,Miami Heat,+ve Space Read: Catch,
03.15.24 Heat v Celtics,Jimmy Butler,,+ve QB12 DM: Roller
03.15.24 Heat v Celtics,Bam Adebayo,-ve Space Read: Penetration,
`

func writeCSV(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestValidateUpload(t *testing.T) {
	imp, _ := newTestImporter()
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		result := imp.ValidateUpload(ctx, filepath.Join(dir, "nope.csv"), "Heat")
		if result.Valid {
			t.Error("missing file validated")
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := writeCSV(t, dir, "03.15.24 Heat v Celtics.txt", megaFixture)
		result := imp.ValidateUpload(ctx, path, "Heat")
		if result.Valid {
			t.Error("non-csv file validated")
		}
	})

	t.Run("unparseable filename", func(t *testing.T) {
		path := writeCSV(t, dir, "notes.csv", megaFixture)
		result := imp.ValidateUpload(ctx, path, "Heat")
		if result.Valid {
			t.Error("dateless filename validated")
		}
	})

	t.Run("valid upload", func(t *testing.T) {
		path := writeCSV(t, dir, "03.15.24 Heat v Celtics.csv", megaFixture)
		result := imp.ValidateUpload(ctx, path, "Heat")
		if !result.Valid {
			t.Fatalf("validation failed: %s", result.Error)
		}
		if result.Date != "03.15.24" || result.Opponent != "Celtics" {
			t.Errorf("metadata = %q/%q", result.Date, result.Opponent)
		}
		if want := gameid.Generate("03.15.24", "Celtics", "Heat"); result.GameID != want {
			t.Errorf("game id = %q, want %q", result.GameID, want)
		}
	})
}

func TestValidateUploadDuplicate(t *testing.T) {
	imp, f := newTestImporter()
	ctx := context.Background()

	existing, _ := f.games.GetOrCreate(ctx, "03.15.24", "Celtics", "Heat")

	// Same date and team but a different opponent: still a duplicate,
	// the opponent never participates in the check.
	path := writeCSV(t, t.TempDir(), "03.15.24 Heat v Lakers.csv", megaFixture)
	result := imp.ValidateUpload(ctx, path, "Heat")

	if result.Valid {
		t.Fatal("duplicate validated")
	}
	if !result.Duplicate {
		t.Fatal("duplicate not flagged")
	}
	if result.GameID != existing.ID {
		t.Errorf("game id = %q, want existing %q", result.GameID, existing.ID)
	}
}

func TestImport(t *testing.T) {
	imp, f := newTestImporter()
	ctx := context.Background()

	path := writeCSV(t, t.TempDir(), "03.15.24 Heat v Celtics.csv", megaFixture)
	result := imp.Import(ctx, path, "Heat")

	if !result.Success {
		t.Fatalf("import failed: %s", result.Error)
	}
	if !result.TeamProcessed {
		t.Error("team slice not processed")
	}
	if result.PlayersProcessed != 2 {
		t.Errorf("players processed = %d, want 2", result.PlayersProcessed)
	}

	// One scorecard per entity: team pseudo-player plus two players.
	if len(f.scorecards.cards) != 3 {
		t.Fatalf("got %d scorecards, want 3", len(f.scorecards.cards))
	}
	for _, card := range f.scorecards.cards {
		if !card.GameID.Valid || card.GameID.String != result.GameID {
			t.Errorf("scorecard for %s not linked to game", card.PlayerName)
		}
	}

	// One statistics row per raw category column.
	if len(f.teamStats.rows) != 11 {
		t.Errorf("got %d statistics rows, want 11", len(f.teamStats.rows))
	}
	for _, row := range f.teamStats.rows {
		if row.GameDateISO != "2024-03-15" {
			t.Errorf("stats date = %q, want 2024-03-15", row.GameDateISO)
			break
		}
	}

	if len(f.cogScores.team) != 1 {
		t.Fatalf("got %d team cog scores, want 1", len(f.cogScores.team))
	}
	if got := f.cogScores.team[0].Source; got != SourceCSVImport {
		t.Errorf("team cog score source = %q", got)
	}
	if len(f.cogScores.players) != 2 {
		t.Errorf("got %d player cog scores, want 2", len(f.cogScores.players))
	}
}

func TestImportDuplicateLeavesStateUntouched(t *testing.T) {
	imp, f := newTestImporter()
	ctx := context.Background()

	f.games.GetOrCreate(ctx, "03.15.24", "Celtics", "Heat")

	path := writeCSV(t, t.TempDir(), "03.15.24 Heat v Celtics.csv", megaFixture)
	result := imp.Import(ctx, path, "Heat")

	if result.Success {
		t.Fatal("duplicate import succeeded")
	}
	if !result.Duplicate {
		t.Fatal("duplicate not flagged")
	}
	if len(f.scorecards.cards) != 0 || len(f.teamStats.rows) != 0 || len(f.cogScores.team) != 0 {
		t.Error("duplicate import wrote state")
	}
}

func TestImportGameStoreError(t *testing.T) {
	imp, f := newTestImporter()
	f.games.err = fmt.Errorf("connection refused")

	path := writeCSV(t, t.TempDir(), "03.15.24 Heat v Celtics.csv", megaFixture)
	result := imp.Import(context.Background(), path, "Heat")

	if result.Success {
		t.Fatal("import succeeded despite store error")
	}
	if result.Duplicate {
		t.Error("store error misreported as duplicate")
	}
}

func TestImportBatchContinuesPastFailures(t *testing.T) {
	imp, _ := newTestImporter()
	dir := t.TempDir()

	good := writeCSV(t, dir, "03.15.24 Heat v Celtics.csv", megaFixture)
	bad := writeCSV(t, dir, "notes.csv", megaFixture)

	report := imp.ImportBatch(context.Background(), []string{bad, good}, "Heat")

	if report.JobID == "" {
		t.Error("report has no job id")
	}
	if report.Processed != 2 || report.Succeeded != 1 || report.Failed != 1 {
		t.Errorf("report = %d/%d/%d, want 2 processed, 1 succeeded, 1 failed",
			report.Processed, report.Succeeded, report.Failed)
	}
	if !report.Results[good].Success {
		t.Error("good file not reported as success")
	}
	if report.Results[bad].Success {
		t.Error("bad file reported as success")
	}
}

func TestImportDir(t *testing.T) {
	imp, _ := newTestImporter()
	dir := t.TempDir()

	writeCSV(t, dir, "03.15.24 Heat v Celtics.csv", megaFixture)
	writeCSV(t, dir, "README.md", "not a csv")

	report, err := imp.ImportDir(context.Background(), dir, "Heat")
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if report.Processed != 1 {
		t.Errorf("processed = %d, want 1 (non-csv files skipped)", report.Processed)
	}
}

func TestDateStringToISO(t *testing.T) {
	iso, err := dateStringToISO("03.15.24")
	if err != nil {
		t.Fatalf("dateStringToISO: %v", err)
	}
	if iso != "2024-03-15" {
		t.Errorf("iso = %q, want 2024-03-15", iso)
	}

	if _, err := dateStringToISO("13.45.24"); err == nil {
		t.Error("expected an error for an impossible date")
	}
}
