package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type ActivityPayload struct {
	Name        string   `json:"name"`
	Development string   `json:"development"`
	StartTime   string   `json:"start_time"`
	DurationMin int      `json:"duration_min"`
	Responsible string   `json:"responsible"`
	Materials   []string `json:"materials"`
	Notes       string   `json:"notes"`
}

func (p ActivityPayload) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.StartTime, validation.Match(timeOfDayExp)),
		validation.Field(&p.DurationMin, validation.Min(0), validation.Max(24*60)),
	)
}

type ProgramRequest struct {
	StartDate  string            `json:"start_date" binding:"required" format:"DD/MM/YYYY"`
	EndDate    string            `json:"end_date" binding:"required" format:"DD/MM/YYYY"`
	Theme      string            `json:"theme" binding:"required"`
	Branch     string            `json:"branch" binding:"required"`
	Objectives []string          `json:"objectives"`
	Status     string            `json:"status"`
	LeaderName string            `json:"leader_name"`
	Notes      string            `json:"notes"`
	Activities []ActivityPayload `json:"activities"`
}

func (req *ProgramRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StartDate, validation.Required, validation.Date("02/01/2006")),
		validation.Field(&req.EndDate, validation.Required, validation.Date("02/01/2006")),
		validation.Field(&req.Theme, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Branch, validation.Required, validation.In("manada", "tropa", "comunidad", "clan")),
		validation.Field(&req.Status, validation.In("planned", "in_progress", "completed", "cancelled")),
		validation.Field(&req.Notes, validation.Length(0, 2000)),
	)
}
