package store

import (
	"database/sql"
	"time"
)

// Game represents one real-world match. The id is content-derived from
// (date, team, opponent), so re-importing the same file resolves to the
// same row. Games are never mutated after creation.
type Game struct {
	ID         string `json:"id" db:"id"`
	Date       int64  `json:"date" db:"date"`               // epoch seconds, local midnight
	DateString string `json:"date_string" db:"date_string"` // MM.DD.YY
	Opponent   string `json:"opponent" db:"opponent"`
	Team       string `json:"team" db:"team"`
	CreatedAt  int64  `json:"created_at" db:"created_at"`
}

// Player is a named individual, auto-vivified on first reference from any
// scorecard-producing path.
type Player struct {
	Name        string `json:"name" db:"name"`
	DateCreated int64  `json:"date_created" db:"date_created"`
}

// Scorecard is one performance sheet for one player (or the team as a
// pseudo-player), optionally tied to a game. Every counter is a tally of
// tagged events from one CSV ingestion; positive counters are unsuffixed,
// negative counters carry the _negative suffix. A new scorecard is inserted
// per ingestion, never updated in place.
type Scorecard struct {
	ID          int            `json:"id" db:"id"`
	PlayerName  string         `json:"player_name" db:"player_name"`
	GameID      sql.NullString `json:"game_id,omitempty" db:"game_id"`
	DateCreated int64          `json:"date_created" db:"date_created"`

	// Space Read
	SpaceReadCatch               int `json:"space_read_catch" db:"space_read_catch"`
	SpaceReadCatchNegative       int `json:"space_read_catch_negative" db:"space_read_catch_negative"`
	SpaceReadLiveDribble         int `json:"space_read_live_dribble" db:"space_read_live_dribble"`
	SpaceReadLiveDribbleNegative int `json:"space_read_live_dribble_negative" db:"space_read_live_dribble_negative"`
	SpaceReadPenetration         int `json:"space_read_penetration" db:"space_read_penetration"`
	SpaceReadPenetrationNegative int `json:"space_read_penetration_negative" db:"space_read_penetration_negative"`

	// DM Catch
	DMCatchShot          int `json:"dm_catch_shot" db:"dm_catch_shot"`
	DMCatchShotNegative  int `json:"dm_catch_shot_negative" db:"dm_catch_shot_negative"`
	DMCatchDrive         int `json:"dm_catch_drive" db:"dm_catch_drive"`
	DMCatchDriveNegative int `json:"dm_catch_drive_negative" db:"dm_catch_drive_negative"`
	DMCatchPass          int `json:"dm_catch_pass" db:"dm_catch_pass"`
	DMCatchPassNegative  int `json:"dm_catch_pass_negative" db:"dm_catch_pass_negative"`

	// Driving (includes the raw Finishing column's subskills)
	DrivingPaintTouch         int `json:"driving_paint_touch" db:"driving_paint_touch"`
	DrivingPaintTouchNegative int `json:"driving_paint_touch_negative" db:"driving_paint_touch_negative"`
	DrivingKickPass           int `json:"driving_kick_pass" db:"driving_kick_pass"`
	DrivingKickPassNegative   int `json:"driving_kick_pass_negative" db:"driving_kick_pass_negative"`
	DrivingFinishRim          int `json:"driving_finish_rim" db:"driving_finish_rim"`
	DrivingFinishRimNegative  int `json:"driving_finish_rim_negative" db:"driving_finish_rim_negative"`
	DrivingFloater            int `json:"driving_floater" db:"driving_floater"`
	DrivingFloaterNegative    int `json:"driving_floater_negative" db:"driving_floater_negative"`

	// QB12 Decision Making
	QB12Roller           int `json:"qb12_roller" db:"qb12_roller"`
	QB12RollerNegative   int `json:"qb12_roller_negative" db:"qb12_roller_negative"`
	QB12Corner           int `json:"qb12_corner" db:"qb12_corner"`
	QB12CornerNegative   int `json:"qb12_corner_negative" db:"qb12_corner_negative"`
	QB12SkipPass         int `json:"qb12_skip_pass" db:"qb12_skip_pass"`
	QB12SkipPassNegative int `json:"qb12_skip_pass_negative" db:"qb12_skip_pass_negative"`
	QB12Pocket           int `json:"qb12_pocket" db:"qb12_pocket"`
	QB12PocketNegative   int `json:"qb12_pocket_negative" db:"qb12_pocket_negative"`

	// Off-Ball Positioning
	PositioningSpacing            int `json:"positioning_spacing" db:"positioning_spacing"`
	PositioningSpacingNegative    int `json:"positioning_spacing_negative" db:"positioning_spacing_negative"`
	PositioningWeakSide           int `json:"positioning_weak_side" db:"positioning_weak_side"`
	PositioningWeakSideNegative   int `json:"positioning_weak_side_negative" db:"positioning_weak_side_negative"`
	PositioningDunkerSpot         int `json:"positioning_dunker_spot" db:"positioning_dunker_spot"`
	PositioningDunkerSpotNegative int `json:"positioning_dunker_spot_negative" db:"positioning_dunker_spot_negative"`

	// Transition
	TransitionLaneFill          int `json:"transition_lane_fill" db:"transition_lane_fill"`
	TransitionLaneFillNegative  int `json:"transition_lane_fill_negative" db:"transition_lane_fill_negative"`
	TransitionRimRun            int `json:"transition_rim_run" db:"transition_rim_run"`
	TransitionRimRunNegative    int `json:"transition_rim_run_negative" db:"transition_rim_run_negative"`
	TransitionKickAhead         int `json:"transition_kick_ahead" db:"transition_kick_ahead"`
	TransitionKickAheadNegative int `json:"transition_kick_ahead_negative" db:"transition_kick_ahead_negative"`
	TransitionStopBall          int `json:"transition_stop_ball" db:"transition_stop_ball"`
	TransitionStopBallNegative  int `json:"transition_stop_ball_negative" db:"transition_stop_ball_negative"`

	// Cutting & Screening
	CutScreenBackCut             int `json:"cut_screen_back_cut" db:"cut_screen_back_cut"`
	CutScreenBackCutNegative     int `json:"cut_screen_back_cut_negative" db:"cut_screen_back_cut_negative"`
	CutScreenScreenAngle         int `json:"cut_screen_screen_angle" db:"cut_screen_screen_angle"`
	CutScreenScreenAngleNegative int `json:"cut_screen_screen_angle_negative" db:"cut_screen_screen_angle_negative"`
	CutScreenSlip                int `json:"cut_screen_slip" db:"cut_screen_slip"`
	CutScreenSlipNegative        int `json:"cut_screen_slip_negative" db:"cut_screen_slip_negative"`

	// Relocation
	RelocationAfterPass         int `json:"relocation_after_pass" db:"relocation_after_pass"`
	RelocationAfterPassNegative int `json:"relocation_after_pass_negative" db:"relocation_after_pass_negative"`
	RelocationDrift             int `json:"relocation_drift" db:"relocation_drift"`
	RelocationDriftNegative     int `json:"relocation_drift_negative" db:"relocation_drift_negative"`
	RelocationLift              int `json:"relocation_lift" db:"relocation_lift"`
	RelocationLiftNegative      int `json:"relocation_lift_negative" db:"relocation_lift_negative"`
}

// TeamCogScore is one overall cognition percentage for a team's game,
// soft-unique on (game_date, team, opponent) at the application layer.
type TeamCogScore struct {
	ID        int       `json:"id" db:"id"`
	GameDate  string    `json:"game_date" db:"game_date"` // MM.DD.YY
	Team      string    `json:"team" db:"team"`
	Opponent  string    `json:"opponent" db:"opponent"`
	Score     int       `json:"score" db:"score"`
	Source    string    `json:"source" db:"source"`
	Note      string    `json:"note" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PlayerCogScore mirrors TeamCogScore for an individual player.
type PlayerCogScore struct {
	ID         int       `json:"id" db:"id"`
	GameDate   string    `json:"game_date" db:"game_date"`
	PlayerName string    `json:"player_name" db:"player_name"`
	Opponent   string    `json:"opponent" db:"opponent"`
	Score      int       `json:"score" db:"score"`
	Source     string    `json:"source" db:"source"`
	Note       string    `json:"note" db:"note"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// TeamStatistics is one (date, team, opponent, category) row of the
// denormalized dashboard time series. The game's overall score is duplicated
// onto every category row so any single row per date carries the summary.
type TeamStatistics struct {
	ID            int       `json:"id" db:"id"`
	GameDateISO   string    `json:"game_date_iso" db:"game_date_iso"` // YYYY-MM-DD
	Team          string    `json:"team" db:"team"`
	Opponent      string    `json:"opponent" db:"opponent"`
	Category      string    `json:"category" db:"category"`
	Percentage    float64   `json:"percentage" db:"percentage"`
	PositiveCount int       `json:"positive_count" db:"positive_count"`
	NegativeCount int       `json:"negative_count" db:"negative_count"`
	TotalCount    int       `json:"total_count" db:"total_count"`
	OverallScore  float64   `json:"overall_score" db:"overall_score"`
	CSVFilename   string    `json:"csv_filename" db:"csv_filename"`
	CalculatedAt  time.Time `json:"calculated_at" db:"calculated_at"`
}

// ScorecardCounterColumns lists every stored counter column in schema
// order. Inserts and selects build their column sets from this list so the
// full field set is always written explicitly.
func ScorecardCounterColumns() []string {
	return []string{
		"space_read_catch", "space_read_catch_negative",
		"space_read_live_dribble", "space_read_live_dribble_negative",
		"space_read_penetration", "space_read_penetration_negative",
		"dm_catch_shot", "dm_catch_shot_negative",
		"dm_catch_drive", "dm_catch_drive_negative",
		"dm_catch_pass", "dm_catch_pass_negative",
		"driving_paint_touch", "driving_paint_touch_negative",
		"driving_kick_pass", "driving_kick_pass_negative",
		"driving_finish_rim", "driving_finish_rim_negative",
		"driving_floater", "driving_floater_negative",
		"qb12_roller", "qb12_roller_negative",
		"qb12_corner", "qb12_corner_negative",
		"qb12_skip_pass", "qb12_skip_pass_negative",
		"qb12_pocket", "qb12_pocket_negative",
		"positioning_spacing", "positioning_spacing_negative",
		"positioning_weak_side", "positioning_weak_side_negative",
		"positioning_dunker_spot", "positioning_dunker_spot_negative",
		"transition_lane_fill", "transition_lane_fill_negative",
		"transition_rim_run", "transition_rim_run_negative",
		"transition_kick_ahead", "transition_kick_ahead_negative",
		"transition_stop_ball", "transition_stop_ball_negative",
		"cut_screen_back_cut", "cut_screen_back_cut_negative",
		"cut_screen_screen_angle", "cut_screen_screen_angle_negative",
		"cut_screen_slip", "cut_screen_slip_negative",
		"relocation_after_pass", "relocation_after_pass_negative",
		"relocation_drift", "relocation_drift_negative",
		"relocation_lift", "relocation_lift_negative",
	}
}

// Counters returns pointers to every counter field in the same order as
// ScorecardCounterColumns.
func (s *Scorecard) Counters() []*int {
	return []*int{
		&s.SpaceReadCatch, &s.SpaceReadCatchNegative,
		&s.SpaceReadLiveDribble, &s.SpaceReadLiveDribbleNegative,
		&s.SpaceReadPenetration, &s.SpaceReadPenetrationNegative,
		&s.DMCatchShot, &s.DMCatchShotNegative,
		&s.DMCatchDrive, &s.DMCatchDriveNegative,
		&s.DMCatchPass, &s.DMCatchPassNegative,
		&s.DrivingPaintTouch, &s.DrivingPaintTouchNegative,
		&s.DrivingKickPass, &s.DrivingKickPassNegative,
		&s.DrivingFinishRim, &s.DrivingFinishRimNegative,
		&s.DrivingFloater, &s.DrivingFloaterNegative,
		&s.QB12Roller, &s.QB12RollerNegative,
		&s.QB12Corner, &s.QB12CornerNegative,
		&s.QB12SkipPass, &s.QB12SkipPassNegative,
		&s.QB12Pocket, &s.QB12PocketNegative,
		&s.PositioningSpacing, &s.PositioningSpacingNegative,
		&s.PositioningWeakSide, &s.PositioningWeakSideNegative,
		&s.PositioningDunkerSpot, &s.PositioningDunkerSpotNegative,
		&s.TransitionLaneFill, &s.TransitionLaneFillNegative,
		&s.TransitionRimRun, &s.TransitionRimRunNegative,
		&s.TransitionKickAhead, &s.TransitionKickAheadNegative,
		&s.TransitionStopBall, &s.TransitionStopBallNegative,
		&s.CutScreenBackCut, &s.CutScreenBackCutNegative,
		&s.CutScreenScreenAngle, &s.CutScreenScreenAngleNegative,
		&s.CutScreenSlip, &s.CutScreenSlipNegative,
		&s.RelocationAfterPass, &s.RelocationAfterPassNegative,
		&s.RelocationDrift, &s.RelocationDriftNegative,
		&s.RelocationLift, &s.RelocationLiftNegative,
	}
}
