package scoring

import (
	"strings"

	"github.com/fortuna/metis/internal/ingest/megacsv"
	"github.com/fortuna/metis/internal/store"
)

type taggedEvent struct {
	positive bool
	label    string
}

// BuildScorecard tallies one entity's CSV slice into scorecard counters.
// Each tagged event's label is resolved against the static subskill table;
// labels the table doesn't know still count toward category scores (see
// ScoreTable) but land on no stored field.
func BuildScorecard(table *megacsv.Table) *store.Scorecard {
	card := &store.Scorecard{}
	for _, column := range RawColumns {
		if !table.HasColumn(column) {
			continue
		}
		for _, row := range table.Rows {
			for _, event := range scanTaggedEvents(row[column]) {
				sub, ok := ResolveSubskill(column, event.label)
				if !ok {
					continue
				}
				if event.positive {
					*sub.Pos(card)++
				} else {
					*sub.Neg(card)++
				}
			}
		}
	}
	return card
}

// scanTaggedEvents splits a free-text cell into its tagged tokens. A cell
// may hold several events back to back; each one runs from its marker to
// the next marker or the end of the cell.
func scanTaggedEvents(cell string) []taggedEvent {
	var events []taggedEvent
	for i := 0; i+len(positiveMarker) <= len(cell); {
		var positive bool
		switch {
		case strings.HasPrefix(cell[i:], positiveMarker):
			positive = true
		case strings.HasPrefix(cell[i:], negativeMarker):
			positive = false
		default:
			i++
			continue
		}

		start := i + len(positiveMarker)
		end := len(cell)
		if next := nextMarker(cell, start); next >= 0 {
			end = next
		}
		label := strings.Trim(cell[start:end], " \t\r\n,;")
		events = append(events, taggedEvent{positive: positive, label: label})
		i = end
	}
	return events
}

func nextMarker(cell string, from int) int {
	pos := strings.Index(cell[from:], positiveMarker)
	neg := strings.Index(cell[from:], negativeMarker)
	switch {
	case pos < 0 && neg < 0:
		return -1
	case pos < 0:
		return from + neg
	case neg < 0:
		return from + pos
	case pos < neg:
		return from + pos
	default:
		return from + neg
	}
}
