package scoring

import (
	"math"
	"strings"

	"github.com/fortuna/metis/internal/gameid"
	"github.com/fortuna/metis/internal/ingest/megacsv"
)

// Markers tagged onto action events. Only these three characters are
// semantically parsed; the rest of the cell is a human-readable label.
const (
	positiveMarker = "+ve"
	negativeMarker = "-ve"
)

// CategoryTally is the tagged-event tally for one raw category column.
type CategoryTally struct {
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Total    int     `json:"total"`
	Score    float64 `json:"score"`
}

// GameScore is the per-category and overall result of scoring one CSV.
type GameScore struct {
	Label      string                   `json:"label"`       // raw Timeline cell from the first row
	DateString string                   `json:"date_string"` // MM.DD.YY parsed from the label, "" if unparseable
	Categories map[string]CategoryTally `json:"categories"`  // keyed by raw column name
	Overall    float64                  `json:"overall"`
}

// ScoreFile reads and scores one CSV (team- or player-scoped).
func ScoreFile(path string) (*GameScore, error) {
	table, err := megacsv.ReadTable(path)
	if err != nil {
		return nil, err
	}
	return ScoreTable(table), nil
}

// ScoreTable tallies +ve/-ve markers per category column. A single cell may
// hold several tagged events and every marker occurrence counts. A category
// with no tagged events scores 0.0 — callers must check Total before
// treating the score as meaningful. The overall score averages only the
// categories that have data.
func ScoreTable(table *megacsv.Table) *GameScore {
	score := &GameScore{
		Categories: make(map[string]CategoryTally, len(RawColumns)),
	}

	for _, column := range RawColumns {
		tally := CategoryTally{}
		// A missing column is tolerated: it tallies to zero, same as an
		// empty one.
		if table.HasColumn(column) {
			for _, row := range table.Rows {
				cell := row[column]
				tally.Positive += strings.Count(cell, positiveMarker)
				tally.Negative += strings.Count(cell, negativeMarker)
			}
		}
		tally.Total = tally.Positive + tally.Negative
		if tally.Total > 0 {
			tally.Score = round2(float64(tally.Positive) / float64(tally.Total) * 100)
		}
		score.Categories[column] = tally
	}

	var sum float64
	var counted int
	for _, tally := range score.Categories {
		if tally.Total > 0 {
			sum += tally.Score
			counted++
		}
	}
	if counted > 0 {
		score.Overall = round2(sum / float64(counted))
	}

	if len(table.Rows) > 0 {
		score.Label = table.Rows[0]["Timeline"]
		if date, _, _, ok := gameid.ParseLabel(score.Label); ok {
			score.DateString = date
		}
	}

	return score
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
