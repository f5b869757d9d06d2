package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fortuna/metis/internal/ingest/megacsv"
)

func tableWith(columns []string, rows ...map[string]string) *megacsv.Table {
	return &megacsv.Table{Columns: columns, Rows: rows}
}

func TestScoreTableCategoryTally(t *testing.T) {
	table := tableWith(
		[]string{"Timeline", ColSpaceRead},
		map[string]string{"Timeline": "03.15.24 Heat v Celtics", ColSpaceRead: "+ve Space Read: Catch"},
		map[string]string{"Timeline": "", ColSpaceRead: "+ve Space Read: Catch -ve Space Read: Penetration"},
	)

	score := ScoreTable(table)

	tally := score.Categories[ColSpaceRead]
	if tally.Positive != 2 || tally.Negative != 1 || tally.Total != 3 {
		t.Fatalf("tally = %+v, want 2 positive, 1 negative, 3 total", tally)
	}
	if tally.Score != 66.67 {
		t.Errorf("score = %v, want 66.67", tally.Score)
	}
}

func TestScoreTableMultipleEventsPerCell(t *testing.T) {
	table := tableWith(
		[]string{ColTransition},
		map[string]string{ColTransition: "+ve Lane Fill +ve Rim Run -ve Stop Ball +ve Kick Ahead"},
	)

	tally := ScoreTable(table).Categories[ColTransition]
	if tally.Positive != 3 || tally.Negative != 1 {
		t.Fatalf("tally = %+v, want 3 positive, 1 negative", tally)
	}
}

func TestScoreTableMissingColumn(t *testing.T) {
	table := tableWith(
		[]string{ColSpaceRead},
		map[string]string{ColSpaceRead: "+ve Catch"},
	)

	score := ScoreTable(table)

	tally, ok := score.Categories[ColPassing]
	if !ok {
		t.Fatal("missing column should still produce a tally entry")
	}
	if tally.Total != 0 || tally.Score != 0 {
		t.Errorf("missing column tally = %+v, want zeroes", tally)
	}
}

func TestScoreTableEmptyCategoryScoresZero(t *testing.T) {
	table := tableWith(
		[]string{ColSpaceRead, ColDriving},
		map[string]string{ColSpaceRead: "", ColDriving: "+ve Paint Touch"},
	)

	score := ScoreTable(table)
	if got := score.Categories[ColSpaceRead].Score; got != 0 {
		t.Errorf("empty category score = %v, want 0", got)
	}
}

func TestScoreTableOverallAveragesOnlyCategoriesWithData(t *testing.T) {
	table := tableWith(
		[]string{ColSpaceRead, ColDriving},
		map[string]string{
			ColSpaceRead: "+ve Catch +ve Catch",       // 100%
			ColDriving:   "+ve Paint Touch -ve Floater", // 50%
		},
	)

	score := ScoreTable(table)
	if score.Overall != 75 {
		t.Errorf("overall = %v, want 75 (mean of 100 and 50, other categories ignored)", score.Overall)
	}
}

func TestScoreTableNoEventsAnywhere(t *testing.T) {
	table := tableWith(
		[]string{ColSpaceRead},
		map[string]string{ColSpaceRead: "untagged commentary"},
	)

	score := ScoreTable(table)
	if score.Overall != 0 {
		t.Errorf("overall = %v, want 0 when no category has data", score.Overall)
	}
}

func TestScoreTableExtractsGameMetadata(t *testing.T) {
	table := tableWith(
		[]string{"Timeline", ColSpaceRead},
		map[string]string{"Timeline": "3.9.24 Heat v Celtics", ColSpaceRead: "+ve Catch"},
	)

	score := ScoreTable(table)
	if score.Label != "3.9.24 Heat v Celtics" {
		t.Errorf("label = %q", score.Label)
	}
	if score.DateString != "03.09.24" {
		t.Errorf("date string = %q, want 03.09.24", score.DateString)
	}
}

func TestScoreFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.csv")
	csv := "Timeline,Space Read\n03.15.24 Heat v Celtics,+ve Catch\n,-ve Penetration\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	score, err := ScoreFile(path)
	if err != nil {
		t.Fatalf("ScoreFile: %v", err)
	}
	tally := score.Categories[ColSpaceRead]
	if tally.Positive != 1 || tally.Negative != 1 || tally.Score != 50 {
		t.Errorf("tally = %+v, want 1/1 at 50", tally)
	}
}
