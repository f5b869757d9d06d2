package scoring

import (
	"testing"

	"github.com/fortuna/metis/internal/store"
)

func TestCategoryCounts(t *testing.T) {
	cards := []*store.Scorecard{
		{SpaceReadCatch: 3, SpaceReadCatchNegative: 1, SpaceReadPenetration: 2},
		{SpaceReadLiveDribble: 1, SpaceReadLiveDribbleNegative: 2},
	}

	positive, negative, ok := CategoryCounts(cards, CatSpaceRead)
	if !ok {
		t.Fatal("known category reported not ok")
	}
	if positive != 6 || negative != 3 {
		t.Errorf("counts = %d/%d, want 6/3", positive, negative)
	}
}

func TestCategoryCountsUnknownCategory(t *testing.T) {
	_, _, ok := CategoryCounts(nil, "Rebounding")
	if ok {
		t.Error("unknown category reported ok")
	}
}

func TestCategoryPercentage(t *testing.T) {
	cards := []*store.Scorecard{
		{QB12Roller: 2, QB12RollerNegative: 1},
	}

	pct := CategoryPercentage(cards, CatQB12)
	if pct == nil {
		t.Fatal("expected a percentage, got nil")
	}
	if *pct != 66.67 {
		t.Errorf("percentage = %v, want 66.67", *pct)
	}
}

func TestCategoryPercentageNoData(t *testing.T) {
	cards := []*store.Scorecard{{}}

	// No data is nil, not zero. Zero would mean "all negative".
	if pct := CategoryPercentage(cards, CatTransition); pct != nil {
		t.Errorf("empty category percentage = %v, want nil", *pct)
	}
}

func TestCategoryPercentageUnknownCategory(t *testing.T) {
	if pct := CategoryPercentage(nil, "Rebounding"); pct != nil {
		t.Errorf("unknown category percentage = %v, want nil", *pct)
	}
}

func TestAllCategoryPercentages(t *testing.T) {
	cards := []*store.Scorecard{
		{DrivingPaintTouch: 1, DrivingFinishRim: 1, DrivingFloaterNegative: 2},
	}

	out := AllCategoryPercentages(cards)
	if len(out) != len(Categories) {
		t.Fatalf("got %d categories, want %d", len(out), len(Categories))
	}

	driving := out[CatDriving]
	if driving == nil || *driving != 50 {
		t.Errorf("driving = %v, want 50", driving)
	}

	// Footwork and Passing have no stored fields and always read as no data.
	if out[CatFootwork] != nil {
		t.Errorf("footwork = %v, want nil", *out[CatFootwork])
	}
	if out[CatPassing] != nil {
		t.Errorf("passing = %v, want nil", *out[CatPassing])
	}
}
