package megacsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fortuna/metis/internal/gameid"
)

const megaFixture = `Timeline,Row,Space Read,QB12 DM
03.15.24 Heat v Celtics,Miami Heat,+ve Catch,
03.15.24 Heat v Celtics,Jimmy Butler,,+ve Roller
03.15.24 Heat v Celtics,Bam Adebayo,-ve Penetration,
03.15.24 Heat v Celtics,Jimmy Butler,+ve Catch,
03.15.24 Heat v Celtics,,ignored row,
`

func writeMegaFixture(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestPreprocess(t *testing.T) {
	path := writeMegaFixture(t, "03.15.24 Heat v Celtics.csv", megaFixture)

	manifest, err := Preprocess(path, "Heat")
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	defer manifest.Cleanup()

	if manifest.Date != "03.15.24" || manifest.Opponent != "Celtics" || manifest.Team != "Heat" {
		t.Errorf("metadata = %q/%q/%q", manifest.Date, manifest.Opponent, manifest.Team)
	}
	if want := gameid.Generate("03.15.24", "Celtics", "Heat"); manifest.GameID != want {
		t.Errorf("game id = %q, want %q", manifest.GameID, want)
	}

	// "Miami Heat" is the team partition even though the team is "Heat".
	if manifest.TeamCSV == "" {
		t.Fatal("team slice missing")
	}
	teamTable, err := ReadTable(manifest.TeamCSV)
	if err != nil {
		t.Fatalf("reading team slice: %v", err)
	}
	if len(teamTable.Rows) != 1 {
		t.Errorf("team slice has %d rows, want 1", len(teamTable.Rows))
	}

	if len(manifest.PlayerNames) != 2 {
		t.Fatalf("player names = %v, want 2", manifest.PlayerNames)
	}
	// First-appearance order.
	if manifest.PlayerNames[0] != "Jimmy Butler" || manifest.PlayerNames[1] != "Bam Adebayo" {
		t.Errorf("player order = %v", manifest.PlayerNames)
	}

	butler, err := ReadTable(manifest.PlayerCSVs["Jimmy Butler"])
	if err != nil {
		t.Fatalf("reading player slice: %v", err)
	}
	if len(butler.Rows) != 2 {
		t.Errorf("Jimmy Butler slice has %d rows, want 2", len(butler.Rows))
	}
	if !butler.HasColumn("QB12 DM") {
		t.Error("player slice lost a column")
	}
}

func TestPreprocessMissingRowColumn(t *testing.T) {
	path := writeMegaFixture(t, "03.15.24 Heat v Celtics.csv", "Timeline,Space Read\nlabel,+ve Catch\n")

	if _, err := Preprocess(path, "Heat"); err == nil {
		t.Error("expected an error when the Row column is missing")
	}
}

func TestPreprocessUnparseableFilename(t *testing.T) {
	path := writeMegaFixture(t, "notes.csv", megaFixture)

	if _, err := Preprocess(path, "Heat"); err == nil {
		t.Error("expected an error for a filename without a game date")
	}
}

func TestPreprocessNoTeamRows(t *testing.T) {
	fixture := "Timeline,Row,Space Read\nlabel,Jimmy Butler,+ve Catch\n"
	path := writeMegaFixture(t, "03.15.24 Heat v Celtics.csv", fixture)

	manifest, err := Preprocess(path, "Heat")
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	defer manifest.Cleanup()

	if manifest.TeamCSV != "" {
		t.Errorf("team csv = %q, want empty", manifest.TeamCSV)
	}
	if len(manifest.PlayerNames) != 1 {
		t.Errorf("player names = %v", manifest.PlayerNames)
	}
}

func TestCleanupRemovesTempDir(t *testing.T) {
	path := writeMegaFixture(t, "03.15.24 Heat v Celtics.csv", megaFixture)

	manifest, err := Preprocess(path, "Heat")
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}

	sliceDir := filepath.Dir(manifest.TeamCSV)
	if err := manifest.Cleanup(); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := os.Stat(sliceDir); !os.IsNotExist(err) {
		t.Errorf("temp dir still exists after cleanup: %v", err)
	}
}

func TestIsTeamRow(t *testing.T) {
	tests := []struct {
		value, team string
		want        bool
	}{
		{"Heat", "Heat", true},
		{"heat", "Heat", true},
		{"Miami Heat", "Heat", true},
		{"Jimmy Butler", "Heat", false},
		{"Heatcheck", "Heat", false},
	}
	for _, tt := range tests {
		if got := isTeamRow(tt.value, tt.team); got != tt.want {
			t.Errorf("isTeamRow(%q, %q) = %v, want %v", tt.value, tt.team, got, tt.want)
		}
	}
}
