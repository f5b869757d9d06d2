// Package scoring computes cognition scores from tagged event CSVs and from
// stored scorecards.
//
// Two calculators live here with deliberately different "no data" policies:
// the CSV calculator reports 0.0 for a category with no tagged events, while
// the scorecard statistics calculator reports nil. Dashboards depend on both
// behaviors, so the divergence is kept.
package scoring

import (
	"strings"

	"github.com/fortuna/metis/internal/store"
)

// Raw category columns as they appear in exported mega CSVs. The
// "Cutting & Screeing" spelling is the literal upstream column header.
const (
	ColSpaceRead        = "Space Read"
	ColDMCatch          = "DM Catch"
	ColDriving          = "Driving"
	ColFinishing        = "Finishing"
	ColFootwork         = "Footwork"
	ColPassing          = "Passing"
	ColPositioning      = "Positioning"
	ColQB12DM           = "QB12 DM"
	ColRelocation       = "Relocation"
	ColCuttingScreening = "Cutting & Screeing"
	ColTransition       = "Transition"
)

// RawColumns lists every category column the CSV calculator tallies.
var RawColumns = []string{
	ColSpaceRead,
	ColDMCatch,
	ColDriving,
	ColFinishing,
	ColFootwork,
	ColPassing,
	ColPositioning,
	ColQB12DM,
	ColRelocation,
	ColCuttingScreening,
	ColTransition,
}

// Accessor resolves one counter on a scorecard.
type Accessor func(*store.Scorecard) *int

// Subskill binds an event label under a raw CSV column to its positive and
// negative scorecard counters.
type Subskill struct {
	Label    string // label text after the +ve/-ve marker, e.g. "Catch"
	Column   string // raw CSV column the label appears under
	PosField string // scorecard column for positive tallies
	NegField string // scorecard column for negative tallies
	Pos      Accessor
	Neg      Accessor
}

// Category is one display category backed by scorecard counters. Footwork
// and Passing are declared with no subskills: the scorecard has no stored
// fields for them yet, and the statistics calculator reports them as having
// no data rather than failing.
type Category struct {
	Name      string
	Subskills []Subskill
}

// Display category names.
const (
	CatSpaceRead        = "Space Read"
	CatDMCatch          = "DM Catch"
	CatDriving          = "Driving"
	CatQB12             = "QB12 Decision Making"
	CatPositioning      = "Off-Ball Positioning"
	CatTransition       = "Transition"
	CatCuttingScreening = "Cutting & Screening"
	CatRelocation       = "Relocation"
	CatFootwork         = "Footwork"
	CatPassing          = "Passing"
)

// Categories is the static field mapping resolved at init time. Every
// scorecard counter appears in exactly one subskill.
var Categories = []Category{
	{
		Name: CatSpaceRead,
		Subskills: []Subskill{
			{
				Label: "Catch", Column: ColSpaceRead,
				PosField: "space_read_catch", NegField: "space_read_catch_negative",
				Pos: func(c *store.Scorecard) *int { return &c.SpaceReadCatch },
				Neg: func(c *store.Scorecard) *int { return &c.SpaceReadCatchNegative },
			},
			{
				Label: "Live Dribble", Column: ColSpaceRead,
				PosField: "space_read_live_dribble", NegField: "space_read_live_dribble_negative",
				Pos: func(c *store.Scorecard) *int { return &c.SpaceReadLiveDribble },
				Neg: func(c *store.Scorecard) *int { return &c.SpaceReadLiveDribbleNegative },
			},
			{
				Label: "Penetration", Column: ColSpaceRead,
				PosField: "space_read_penetration", NegField: "space_read_penetration_negative",
				Pos: func(c *store.Scorecard) *int { return &c.SpaceReadPenetration },
				Neg: func(c *store.Scorecard) *int { return &c.SpaceReadPenetrationNegative },
			},
		},
	},
	{
		Name: CatDMCatch,
		Subskills: []Subskill{
			{
				Label: "Shot", Column: ColDMCatch,
				PosField: "dm_catch_shot", NegField: "dm_catch_shot_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DMCatchShot },
				Neg: func(c *store.Scorecard) *int { return &c.DMCatchShotNegative },
			},
			{
				Label: "Drive", Column: ColDMCatch,
				PosField: "dm_catch_drive", NegField: "dm_catch_drive_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DMCatchDrive },
				Neg: func(c *store.Scorecard) *int { return &c.DMCatchDriveNegative },
			},
			{
				Label: "Pass", Column: ColDMCatch,
				PosField: "dm_catch_pass", NegField: "dm_catch_pass_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DMCatchPass },
				Neg: func(c *store.Scorecard) *int { return &c.DMCatchPassNegative },
			},
		},
	},
	{
		// Driving folds in the raw Finishing column: finishing events have
		// no display category of their own.
		Name: CatDriving,
		Subskills: []Subskill{
			{
				Label: "Paint Touch", Column: ColDriving,
				PosField: "driving_paint_touch", NegField: "driving_paint_touch_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DrivingPaintTouch },
				Neg: func(c *store.Scorecard) *int { return &c.DrivingPaintTouchNegative },
			},
			{
				Label: "Kick Pass", Column: ColDriving,
				PosField: "driving_kick_pass", NegField: "driving_kick_pass_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DrivingKickPass },
				Neg: func(c *store.Scorecard) *int { return &c.DrivingKickPassNegative },
			},
			{
				Label: "Rim Finish", Column: ColFinishing,
				PosField: "driving_finish_rim", NegField: "driving_finish_rim_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DrivingFinishRim },
				Neg: func(c *store.Scorecard) *int { return &c.DrivingFinishRimNegative },
			},
			{
				Label: "Floater", Column: ColFinishing,
				PosField: "driving_floater", NegField: "driving_floater_negative",
				Pos: func(c *store.Scorecard) *int { return &c.DrivingFloater },
				Neg: func(c *store.Scorecard) *int { return &c.DrivingFloaterNegative },
			},
		},
	},
	{
		Name: CatQB12,
		Subskills: []Subskill{
			{
				Label: "Roller", Column: ColQB12DM,
				PosField: "qb12_roller", NegField: "qb12_roller_negative",
				Pos: func(c *store.Scorecard) *int { return &c.QB12Roller },
				Neg: func(c *store.Scorecard) *int { return &c.QB12RollerNegative },
			},
			{
				Label: "Corner", Column: ColQB12DM,
				PosField: "qb12_corner", NegField: "qb12_corner_negative",
				Pos: func(c *store.Scorecard) *int { return &c.QB12Corner },
				Neg: func(c *store.Scorecard) *int { return &c.QB12CornerNegative },
			},
			{
				Label: "Skip Pass", Column: ColQB12DM,
				PosField: "qb12_skip_pass", NegField: "qb12_skip_pass_negative",
				Pos: func(c *store.Scorecard) *int { return &c.QB12SkipPass },
				Neg: func(c *store.Scorecard) *int { return &c.QB12SkipPassNegative },
			},
			{
				Label: "Pocket", Column: ColQB12DM,
				PosField: "qb12_pocket", NegField: "qb12_pocket_negative",
				Pos: func(c *store.Scorecard) *int { return &c.QB12Pocket },
				Neg: func(c *store.Scorecard) *int { return &c.QB12PocketNegative },
			},
		},
	},
	{
		Name: CatPositioning,
		Subskills: []Subskill{
			{
				Label: "Spacing", Column: ColPositioning,
				PosField: "positioning_spacing", NegField: "positioning_spacing_negative",
				Pos: func(c *store.Scorecard) *int { return &c.PositioningSpacing },
				Neg: func(c *store.Scorecard) *int { return &c.PositioningSpacingNegative },
			},
			{
				Label: "Weak Side", Column: ColPositioning,
				PosField: "positioning_weak_side", NegField: "positioning_weak_side_negative",
				Pos: func(c *store.Scorecard) *int { return &c.PositioningWeakSide },
				Neg: func(c *store.Scorecard) *int { return &c.PositioningWeakSideNegative },
			},
			{
				Label: "Dunker Spot", Column: ColPositioning,
				PosField: "positioning_dunker_spot", NegField: "positioning_dunker_spot_negative",
				Pos: func(c *store.Scorecard) *int { return &c.PositioningDunkerSpot },
				Neg: func(c *store.Scorecard) *int { return &c.PositioningDunkerSpotNegative },
			},
		},
	},
	{
		Name: CatTransition,
		Subskills: []Subskill{
			{
				Label: "Lane Fill", Column: ColTransition,
				PosField: "transition_lane_fill", NegField: "transition_lane_fill_negative",
				Pos: func(c *store.Scorecard) *int { return &c.TransitionLaneFill },
				Neg: func(c *store.Scorecard) *int { return &c.TransitionLaneFillNegative },
			},
			{
				Label: "Rim Run", Column: ColTransition,
				PosField: "transition_rim_run", NegField: "transition_rim_run_negative",
				Pos: func(c *store.Scorecard) *int { return &c.TransitionRimRun },
				Neg: func(c *store.Scorecard) *int { return &c.TransitionRimRunNegative },
			},
			{
				Label: "Kick Ahead", Column: ColTransition,
				PosField: "transition_kick_ahead", NegField: "transition_kick_ahead_negative",
				Pos: func(c *store.Scorecard) *int { return &c.TransitionKickAhead },
				Neg: func(c *store.Scorecard) *int { return &c.TransitionKickAheadNegative },
			},
			{
				Label: "Stop Ball", Column: ColTransition,
				PosField: "transition_stop_ball", NegField: "transition_stop_ball_negative",
				Pos: func(c *store.Scorecard) *int { return &c.TransitionStopBall },
				Neg: func(c *store.Scorecard) *int { return &c.TransitionStopBallNegative },
			},
		},
	},
	{
		Name: CatCuttingScreening,
		Subskills: []Subskill{
			{
				Label: "Back Cut", Column: ColCuttingScreening,
				PosField: "cut_screen_back_cut", NegField: "cut_screen_back_cut_negative",
				Pos: func(c *store.Scorecard) *int { return &c.CutScreenBackCut },
				Neg: func(c *store.Scorecard) *int { return &c.CutScreenBackCutNegative },
			},
			{
				Label: "Screen Angle", Column: ColCuttingScreening,
				PosField: "cut_screen_screen_angle", NegField: "cut_screen_screen_angle_negative",
				Pos: func(c *store.Scorecard) *int { return &c.CutScreenScreenAngle },
				Neg: func(c *store.Scorecard) *int { return &c.CutScreenScreenAngleNegative },
			},
			{
				Label: "Slip", Column: ColCuttingScreening,
				PosField: "cut_screen_slip", NegField: "cut_screen_slip_negative",
				Pos: func(c *store.Scorecard) *int { return &c.CutScreenSlip },
				Neg: func(c *store.Scorecard) *int { return &c.CutScreenSlipNegative },
			},
		},
	},
	{
		Name: CatRelocation,
		Subskills: []Subskill{
			{
				Label: "After Pass", Column: ColRelocation,
				PosField: "relocation_after_pass", NegField: "relocation_after_pass_negative",
				Pos: func(c *store.Scorecard) *int { return &c.RelocationAfterPass },
				Neg: func(c *store.Scorecard) *int { return &c.RelocationAfterPassNegative },
			},
			{
				Label: "Drift", Column: ColRelocation,
				PosField: "relocation_drift", NegField: "relocation_drift_negative",
				Pos: func(c *store.Scorecard) *int { return &c.RelocationDrift },
				Neg: func(c *store.Scorecard) *int { return &c.RelocationDriftNegative },
			},
			{
				Label: "Lift", Column: ColRelocation,
				PosField: "relocation_lift", NegField: "relocation_lift_negative",
				Pos: func(c *store.Scorecard) *int { return &c.RelocationLift },
				Neg: func(c *store.Scorecard) *int { return &c.RelocationLiftNegative },
			},
		},
	},
	{Name: CatFootwork},
	{Name: CatPassing},
}

// subskillsByColumn: raw column -> normalized label -> subskill.
var subskillsByColumn = func() map[string]map[string]*Subskill {
	idx := make(map[string]map[string]*Subskill)
	for i := range Categories {
		for j := range Categories[i].Subskills {
			sub := &Categories[i].Subskills[j]
			byLabel, ok := idx[sub.Column]
			if !ok {
				byLabel = make(map[string]*Subskill)
				idx[sub.Column] = byLabel
			}
			byLabel[normalizeLabel(sub.Label)] = sub
		}
	}
	return idx
}()

// CategoryByName returns the display category with the given name.
func CategoryByName(name string) (*Category, bool) {
	for i := range Categories {
		if Categories[i].Name == name {
			return &Categories[i], true
		}
	}
	return nil, false
}

// ResolveSubskill maps a raw column and the free-text label that followed a
// +ve/-ve marker to a scorecard counter pair. Labels the table doesn't know
// are not an error: they still count toward the column tally, just not
// toward any stored field.
func ResolveSubskill(column, label string) (*Subskill, bool) {
	byLabel, ok := subskillsByColumn[column]
	if !ok {
		return nil, false
	}
	sub, ok := byLabel[normalizeLabel(label)]
	return sub, ok
}

// normalizeLabel reduces an event label to its comparable form. Exported
// cells usually repeat the category before the subskill ("Space Read:
// Catch"), so only the text after the last colon counts.
func normalizeLabel(label string) string {
	if idx := strings.LastIndex(label, ":"); idx >= 0 {
		label = label[idx+1:]
	}
	return strings.ToLower(strings.TrimSpace(label))
}
