package rest

import "github.com/go-playground/validator/v10"

// validate is shared across handlers; Struct is safe for concurrent use.
var validate = validator.New()

// ScoreRequest is the payload for manually recording a team cog score.
type ScoreRequest struct {
	GameDate string `json:"game_date" validate:"required,datetime=01.02.06"`
	Team     string `json:"team" validate:"required"`
	Opponent string `json:"opponent" validate:"required"`
	Score    int    `json:"score" validate:"min=0,max=100"`
	Note     string `json:"note" validate:"max=500"`
}

// BatchImportRequest asks the server to import CSVs already on its
// filesystem. Either a directory or an explicit list of paths.
type BatchImportRequest struct {
	Dir   string   `json:"dir" validate:"required_without=Paths"`
	Paths []string `json:"paths" validate:"required_without=Dir,dive,required"`
	Team  string   `json:"team"`
}

// PlayerRequest registers a player by name.
type PlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// SyncRequest scopes a statistics sync to one team.
type SyncRequest struct {
	Team string `json:"team"`
}
