package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fortuna/metis/internal/gameid"
)

// ValidateUpload checks an uploaded file before any state is touched.
// Checks short-circuit on first failure: file well-formedness, then
// filename parseability, then duplicate detection. The duplicate check
// keys on (date, team) only — the opponent never participates, because a
// team has at most one recorded game per calendar date.
func (i *Importer) ValidateUpload(ctx context.Context, path, team string) *ValidationResult {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &ValidationResult{Valid: false, Error: fmt.Sprintf("file not found: %s", path)}
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return &ValidationResult{Valid: false, Error: "file must have a .csv extension"}
	}
	f, err := os.Open(path)
	if err != nil {
		return &ValidationResult{Valid: false, Error: fmt.Sprintf("file not readable: %v", err)}
	}
	f.Close()

	date, _, opponent, ok := gameid.ParseLabel(filepath.Base(path))
	if !ok {
		return &ValidationResult{
			Valid: false,
			Error: `filename must look like "MM.DD.YY Team v Opponent.csv"`,
		}
	}

	existingID, exists, err := i.games.Exists(ctx, date, team)
	if err != nil {
		return &ValidationResult{Valid: false, Error: fmt.Sprintf("checking for existing game: %v", err)}
	}
	if exists {
		return &ValidationResult{
			Valid:     false,
			Duplicate: true,
			GameID:    existingID,
			Date:      date,
			Opponent:  opponent,
			Error:     fmt.Sprintf("a game for %s on %s is already recorded", team, date),
		}
	}

	return &ValidationResult{
		Valid:    true,
		GameID:   gameid.Generate(date, opponent, team),
		Date:     date,
		Opponent: opponent,
	}
}
