package scoring

import "github.com/fortuna/metis/internal/store"

// CategoryCounts sums a display category's positive and negative counters
// across the given scorecards. ok is false for unknown category names.
func CategoryCounts(cards []*store.Scorecard, category string) (positive, negative int, ok bool) {
	cat, ok := CategoryByName(category)
	if !ok {
		return 0, 0, false
	}
	for _, card := range cards {
		for i := range cat.Subskills {
			positive += *cat.Subskills[i].Pos(card)
			negative += *cat.Subskills[i].Neg(card)
		}
	}
	return positive, negative, true
}

// CategoryPercentage returns the positive rate for one display category
// across the given scorecards, rounded to two decimals. A nil result means
// "no data" — distinct from 0%, and deliberately different from the CSV
// calculator's zero-score policy.
func CategoryPercentage(cards []*store.Scorecard, category string) *float64 {
	positive, negative, ok := CategoryCounts(cards, category)
	if !ok {
		return nil
	}
	total := positive + negative
	if total == 0 {
		return nil
	}
	pct := round2(float64(positive) / float64(total) * 100)
	return &pct
}

// AllCategoryPercentages evaluates every display category. Categories with
// no data (including Footwork and Passing, which have no stored fields) map
// to nil.
func AllCategoryPercentages(cards []*store.Scorecard) map[string]*float64 {
	out := make(map[string]*float64, len(Categories))
	for i := range Categories {
		out[Categories[i].Name] = CategoryPercentage(cards, Categories[i].Name)
	}
	return out
}
