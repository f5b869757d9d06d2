package scoring

import (
	"reflect"
	"testing"
)

func TestBuildScorecard(t *testing.T) {
	table := tableWith(
		[]string{ColSpaceRead, ColQB12DM},
		map[string]string{
			ColSpaceRead: "+ve Space Read: Catch",
			ColQB12DM:    "-ve QB12 DM: Roller",
		},
		map[string]string{
			ColSpaceRead: "+ve Space Read: Catch -ve Space Read: Penetration",
			ColQB12DM:    "+ve QB12 DM: Skip Pass",
		},
	)

	card := BuildScorecard(table)

	if card.SpaceReadCatch != 2 {
		t.Errorf("SpaceReadCatch = %d, want 2", card.SpaceReadCatch)
	}
	if card.SpaceReadPenetrationNegative != 1 {
		t.Errorf("SpaceReadPenetrationNegative = %d, want 1", card.SpaceReadPenetrationNegative)
	}
	if card.QB12RollerNegative != 1 {
		t.Errorf("QB12RollerNegative = %d, want 1", card.QB12RollerNegative)
	}
	if card.QB12SkipPass != 1 {
		t.Errorf("QB12SkipPass = %d, want 1", card.QB12SkipPass)
	}
}

func TestBuildScorecardBareLabels(t *testing.T) {
	// Some exports drop the "Category:" prefix inside the cell.
	table := tableWith(
		[]string{ColDriving},
		map[string]string{ColDriving: "+ve Paint Touch"},
	)

	card := BuildScorecard(table)
	if card.DrivingPaintTouch != 1 {
		t.Errorf("DrivingPaintTouch = %d, want 1", card.DrivingPaintTouch)
	}
}

func TestBuildScorecardFinishingFoldsIntoDriving(t *testing.T) {
	table := tableWith(
		[]string{ColFinishing},
		map[string]string{ColFinishing: "+ve Rim Finish -ve Floater"},
	)

	card := BuildScorecard(table)
	if card.DrivingFinishRim != 1 || card.DrivingFloaterNegative != 1 {
		t.Errorf("finishing counters = %d/%d, want 1/1", card.DrivingFinishRim, card.DrivingFloaterNegative)
	}
}

func TestBuildScorecardUnknownLabelSkipped(t *testing.T) {
	table := tableWith(
		[]string{ColSpaceRead},
		map[string]string{ColSpaceRead: "+ve Something New"},
	)

	card := BuildScorecard(table)
	for _, counter := range card.Counters() {
		if *counter != 0 {
			t.Fatalf("unknown label incremented a counter: %+v", card)
		}
	}
}

func TestScanTaggedEvents(t *testing.T) {
	tests := []struct {
		cell string
		want []taggedEvent
	}{
		{"", nil},
		{"untagged text", nil},
		{"+ve Catch", []taggedEvent{{true, "Catch"}}},
		{"-ve Roller", []taggedEvent{{false, "Roller"}}},
		{
			"+ve Catch -ve Penetration",
			[]taggedEvent{{true, "Catch"}, {false, "Penetration"}},
		},
		{
			"note +ve Catch, -ve Drift",
			[]taggedEvent{{true, "Catch"}, {false, "Drift"}},
		},
	}

	for _, tt := range tests {
		got := scanTaggedEvents(tt.cell)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("scanTaggedEvents(%q) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestResolveSubskill(t *testing.T) {
	sub, ok := ResolveSubskill(ColSpaceRead, "Space Read: Catch")
	if !ok {
		t.Fatal("prefixed label did not resolve")
	}
	if sub.PosField != "space_read_catch" {
		t.Errorf("PosField = %q, want space_read_catch", sub.PosField)
	}

	if _, ok := ResolveSubskill(ColSpaceRead, "Roller"); ok {
		t.Error("label from another column resolved under Space Read")
	}
	if _, ok := ResolveSubskill("Rebounding", "Catch"); ok {
		t.Error("unknown column resolved")
	}
}
