package store

// migration is one versioned schema step. Steps are applied in order at
// startup and recorded in schema_migrations; the scorecard counter set is
// fixed here so every write path can assume the full column set exists.
type migration struct {
	version string
	sql     string
}

var migrations = []migration{
	{
		version: "001_create_games",
		sql: `
			CREATE TABLE IF NOT EXISTS games (
				id VARCHAR(16) PRIMARY KEY,
				date BIGINT NOT NULL,
				date_string VARCHAR(8) NOT NULL,
				opponent TEXT NOT NULL,
				team TEXT NOT NULL,
				created_at BIGINT NOT NULL,
				UNIQUE (date_string, team)
			);
			CREATE INDEX IF NOT EXISTS idx_games_team_date ON games (team, date);
		`,
	},
	{
		version: "002_create_players",
		sql: `
			CREATE TABLE IF NOT EXISTS players (
				name TEXT PRIMARY KEY,
				date_created BIGINT NOT NULL
			);
		`,
	},
	{
		version: "003_create_scorecards",
		sql: `
			CREATE TABLE IF NOT EXISTS scorecards (
				id SERIAL PRIMARY KEY,
				player_name TEXT NOT NULL REFERENCES players(name),
				game_id VARCHAR(16) REFERENCES games(id),
				date_created BIGINT NOT NULL,

				space_read_catch INTEGER NOT NULL DEFAULT 0,
				space_read_catch_negative INTEGER NOT NULL DEFAULT 0,
				space_read_live_dribble INTEGER NOT NULL DEFAULT 0,
				space_read_live_dribble_negative INTEGER NOT NULL DEFAULT 0,
				space_read_penetration INTEGER NOT NULL DEFAULT 0,
				space_read_penetration_negative INTEGER NOT NULL DEFAULT 0,

				dm_catch_shot INTEGER NOT NULL DEFAULT 0,
				dm_catch_shot_negative INTEGER NOT NULL DEFAULT 0,
				dm_catch_drive INTEGER NOT NULL DEFAULT 0,
				dm_catch_drive_negative INTEGER NOT NULL DEFAULT 0,
				dm_catch_pass INTEGER NOT NULL DEFAULT 0,
				dm_catch_pass_negative INTEGER NOT NULL DEFAULT 0,

				driving_paint_touch INTEGER NOT NULL DEFAULT 0,
				driving_paint_touch_negative INTEGER NOT NULL DEFAULT 0,
				driving_kick_pass INTEGER NOT NULL DEFAULT 0,
				driving_kick_pass_negative INTEGER NOT NULL DEFAULT 0,
				driving_finish_rim INTEGER NOT NULL DEFAULT 0,
				driving_finish_rim_negative INTEGER NOT NULL DEFAULT 0,
				driving_floater INTEGER NOT NULL DEFAULT 0,
				driving_floater_negative INTEGER NOT NULL DEFAULT 0,

				qb12_roller INTEGER NOT NULL DEFAULT 0,
				qb12_roller_negative INTEGER NOT NULL DEFAULT 0,
				qb12_corner INTEGER NOT NULL DEFAULT 0,
				qb12_corner_negative INTEGER NOT NULL DEFAULT 0,
				qb12_skip_pass INTEGER NOT NULL DEFAULT 0,
				qb12_skip_pass_negative INTEGER NOT NULL DEFAULT 0,
				qb12_pocket INTEGER NOT NULL DEFAULT 0,
				qb12_pocket_negative INTEGER NOT NULL DEFAULT 0,

				positioning_spacing INTEGER NOT NULL DEFAULT 0,
				positioning_spacing_negative INTEGER NOT NULL DEFAULT 0,
				positioning_weak_side INTEGER NOT NULL DEFAULT 0,
				positioning_weak_side_negative INTEGER NOT NULL DEFAULT 0,
				positioning_dunker_spot INTEGER NOT NULL DEFAULT 0,
				positioning_dunker_spot_negative INTEGER NOT NULL DEFAULT 0,

				transition_lane_fill INTEGER NOT NULL DEFAULT 0,
				transition_lane_fill_negative INTEGER NOT NULL DEFAULT 0,
				transition_rim_run INTEGER NOT NULL DEFAULT 0,
				transition_rim_run_negative INTEGER NOT NULL DEFAULT 0,
				transition_kick_ahead INTEGER NOT NULL DEFAULT 0,
				transition_kick_ahead_negative INTEGER NOT NULL DEFAULT 0,
				transition_stop_ball INTEGER NOT NULL DEFAULT 0,
				transition_stop_ball_negative INTEGER NOT NULL DEFAULT 0,

				cut_screen_back_cut INTEGER NOT NULL DEFAULT 0,
				cut_screen_back_cut_negative INTEGER NOT NULL DEFAULT 0,
				cut_screen_screen_angle INTEGER NOT NULL DEFAULT 0,
				cut_screen_screen_angle_negative INTEGER NOT NULL DEFAULT 0,
				cut_screen_slip INTEGER NOT NULL DEFAULT 0,
				cut_screen_slip_negative INTEGER NOT NULL DEFAULT 0,

				relocation_after_pass INTEGER NOT NULL DEFAULT 0,
				relocation_after_pass_negative INTEGER NOT NULL DEFAULT 0,
				relocation_drift INTEGER NOT NULL DEFAULT 0,
				relocation_drift_negative INTEGER NOT NULL DEFAULT 0,
				relocation_lift INTEGER NOT NULL DEFAULT 0,
				relocation_lift_negative INTEGER NOT NULL DEFAULT 0,

				CONSTRAINT scorecards_counters_nonnegative CHECK (
					space_read_catch >= 0 AND space_read_catch_negative >= 0 AND
					space_read_live_dribble >= 0 AND space_read_live_dribble_negative >= 0 AND
					space_read_penetration >= 0 AND space_read_penetration_negative >= 0 AND
					dm_catch_shot >= 0 AND dm_catch_shot_negative >= 0 AND
					dm_catch_drive >= 0 AND dm_catch_drive_negative >= 0 AND
					dm_catch_pass >= 0 AND dm_catch_pass_negative >= 0 AND
					driving_paint_touch >= 0 AND driving_paint_touch_negative >= 0 AND
					driving_kick_pass >= 0 AND driving_kick_pass_negative >= 0 AND
					driving_finish_rim >= 0 AND driving_finish_rim_negative >= 0 AND
					driving_floater >= 0 AND driving_floater_negative >= 0 AND
					qb12_roller >= 0 AND qb12_roller_negative >= 0 AND
					qb12_corner >= 0 AND qb12_corner_negative >= 0 AND
					qb12_skip_pass >= 0 AND qb12_skip_pass_negative >= 0 AND
					qb12_pocket >= 0 AND qb12_pocket_negative >= 0 AND
					positioning_spacing >= 0 AND positioning_spacing_negative >= 0 AND
					positioning_weak_side >= 0 AND positioning_weak_side_negative >= 0 AND
					positioning_dunker_spot >= 0 AND positioning_dunker_spot_negative >= 0 AND
					transition_lane_fill >= 0 AND transition_lane_fill_negative >= 0 AND
					transition_rim_run >= 0 AND transition_rim_run_negative >= 0 AND
					transition_kick_ahead >= 0 AND transition_kick_ahead_negative >= 0 AND
					transition_stop_ball >= 0 AND transition_stop_ball_negative >= 0 AND
					cut_screen_back_cut >= 0 AND cut_screen_back_cut_negative >= 0 AND
					cut_screen_screen_angle >= 0 AND cut_screen_screen_angle_negative >= 0 AND
					cut_screen_slip >= 0 AND cut_screen_slip_negative >= 0 AND
					relocation_after_pass >= 0 AND relocation_after_pass_negative >= 0 AND
					relocation_drift >= 0 AND relocation_drift_negative >= 0 AND
					relocation_lift >= 0 AND relocation_lift_negative >= 0
				)
			);
			CREATE INDEX IF NOT EXISTS idx_scorecards_player ON scorecards (player_name);
			CREATE INDEX IF NOT EXISTS idx_scorecards_game ON scorecards (game_id);
		`,
	},
	{
		version: "004_create_team_cog_scores",
		sql: `
			CREATE TABLE IF NOT EXISTS team_cog_scores (
				id SERIAL PRIMARY KEY,
				game_date VARCHAR(8) NOT NULL,
				team TEXT NOT NULL,
				opponent TEXT NOT NULL,
				score INTEGER NOT NULL CHECK (score >= 0 AND score <= 100),
				source TEXT NOT NULL DEFAULT '',
				note TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_team_cog_scores_key ON team_cog_scores (game_date, team, opponent);
		`,
	},
	{
		version: "005_create_player_cog_scores",
		sql: `
			CREATE TABLE IF NOT EXISTS player_cog_scores (
				id SERIAL PRIMARY KEY,
				game_date VARCHAR(8) NOT NULL,
				player_name TEXT NOT NULL,
				opponent TEXT NOT NULL,
				score INTEGER NOT NULL CHECK (score >= 0 AND score <= 100),
				source TEXT NOT NULL DEFAULT '',
				note TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_player_cog_scores_key ON player_cog_scores (game_date, player_name, opponent);
		`,
	},
	{
		version: "006_create_team_statistics",
		sql: `
			CREATE TABLE IF NOT EXISTS team_statistics (
				id SERIAL PRIMARY KEY,
				game_date_iso VARCHAR(10) NOT NULL,
				team TEXT NOT NULL,
				opponent TEXT NOT NULL,
				category TEXT NOT NULL,
				percentage DOUBLE PRECISION NOT NULL,
				positive_count INTEGER NOT NULL,
				negative_count INTEGER NOT NULL,
				total_count INTEGER NOT NULL,
				overall_score DOUBLE PRECISION NOT NULL,
				csv_filename TEXT NOT NULL DEFAULT '',
				calculated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (game_date_iso, team, opponent, category)
			);
			CREATE INDEX IF NOT EXISTS idx_team_statistics_team_date ON team_statistics (team, game_date_iso);
		`,
	},
}
