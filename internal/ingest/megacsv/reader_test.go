package megacsv

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReadTable(t *testing.T) {
	path := writeFixture(t, "game.csv", []byte("Timeline,Row,Space Read\nlabel,Heat,+ve Catch\nlabel,LeBron James,\n"))

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(table.Columns) != 3 || table.Columns[1] != "Row" {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if table.Rows[0]["Space Read"] != "+ve Catch" {
		t.Errorf("cell = %q", table.Rows[0]["Space Read"])
	}
}

func TestReadTableSkipsBannerLine(t *testing.T) {
	path := writeFixture(t, "banner.csv", []byte("Table 1,,\nTimeline,Row,Space Read\nlabel,Heat,\n"))

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if table.Columns[0] != "Timeline" {
		t.Errorf("header = %v, banner line not skipped", table.Columns)
	}
	if len(table.Rows) != 1 {
		t.Errorf("got %d rows, want 1", len(table.Rows))
	}
}

func TestReadTableShortRecords(t *testing.T) {
	path := writeFixture(t, "short.csv", []byte("Timeline,Row,Space Read\nlabel,Heat\n"))

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if got := table.Rows[0]["Space Read"]; got != "" {
		t.Errorf("missing cell = %q, want empty", got)
	}
}

func TestReadTableLatin1Fallback(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid on its own in UTF-8.
	data := []byte("Timeline,Row\nlabel,Jos\xe9\n")
	path := writeFixture(t, "latin1.csv", data)

	table, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if got := table.Rows[0]["Row"]; got != "José" {
		t.Errorf("Row = %q, want José", got)
	}
}

func TestReadTableEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", nil)

	if _, err := ReadTable(path); err == nil {
		t.Error("expected an error for an empty file")
	}
}

func TestHasColumn(t *testing.T) {
	table := &Table{Columns: []string{"Timeline", "Row"}}
	if !table.HasColumn("Row") {
		t.Error("Row not found")
	}
	if table.HasColumn("row") {
		t.Error("column match should be exact")
	}
}
