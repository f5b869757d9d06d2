package megacsv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fortuna/metis/internal/gameid"
)

// Manifest describes the per-entity slices produced from one mega CSV.
// Callers must invoke Cleanup after consuming the slices; a crash in
// between leaks the temp directory, which is accepted as non-fatal.
type Manifest struct {
	GameID      string            `json:"game_id"`
	Date        string            `json:"date"` // MM.DD.YY
	Opponent    string            `json:"opponent"`
	Team        string            `json:"team"`
	TeamCSV     string            `json:"team_csv"` // "" when the file has no team rows
	PlayerCSVs  map[string]string `json:"player_csvs"`
	PlayerNames []string          `json:"player_names"`

	tempDir string
}

// Cleanup removes the temp directory holding the CSV slices.
func (m *Manifest) Cleanup() error {
	if m.tempDir == "" {
		return nil
	}
	return os.RemoveAll(m.tempDir)
}

// Preprocess loads a mega CSV and splits it by the Row column into one
// temp CSV per entity: the partition matching the team's display name
// becomes the team slice, every other partition a player slice. Game
// metadata comes from the filename. Rows with an empty Row value are
// skipped; a missing Row column is a hard error.
func Preprocess(path, team string) (*Manifest, error) {
	date, _, opponent, ok := gameid.ParseLabel(filepath.Base(path))
	if !ok {
		return nil, fmt.Errorf("filename %q does not contain a MM.DD.YY game date", filepath.Base(path))
	}

	table, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if !table.HasColumn("Row") {
		return nil, fmt.Errorf("csv is missing the required Row column")
	}

	// Partition rows by distinct Row value, preserving first-appearance
	// order so slice files come out stable across runs.
	partitions := make(map[string][]map[string]string)
	var order []string
	for _, row := range table.Rows {
		value := strings.TrimSpace(row["Row"])
		if value == "" {
			continue
		}
		if _, seen := partitions[value]; !seen {
			order = append(order, value)
		}
		partitions[value] = append(partitions[value], row)
	}

	tempDir, err := os.MkdirTemp("", "megacsv-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}

	manifest := &Manifest{
		GameID:     gameid.Generate(date, opponent, team),
		Date:       date,
		Opponent:   opponent,
		Team:       team,
		PlayerCSVs: make(map[string]string),
		tempDir:    tempDir,
	}

	for _, value := range order {
		rows := partitions[value]
		if isTeamRow(value, team) {
			slicePath := filepath.Join(tempDir, "team_"+sanitizeName(value)+".csv")
			if err := writeRows(slicePath, table.Columns, rows); err != nil {
				manifest.Cleanup()
				return nil, err
			}
			manifest.TeamCSV = slicePath
			continue
		}

		slicePath := filepath.Join(tempDir, "player_"+sanitizeName(value)+".csv")
		if err := writeRows(slicePath, table.Columns, rows); err != nil {
			manifest.Cleanup()
			return nil, err
		}
		manifest.PlayerCSVs[value] = slicePath
		manifest.PlayerNames = append(manifest.PlayerNames, value)
	}

	return manifest, nil
}

// isTeamRow matches the team partition. Exports label it either with the
// short display name ("Heat") or the full franchise name ("Miami Heat").
func isTeamRow(value, team string) bool {
	if strings.EqualFold(value, team) {
		return true
	}
	return strings.HasSuffix(strings.ToLower(value), " "+strings.ToLower(team))
}

// sanitizeName reduces a Row value to a filesystem-safe token.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
