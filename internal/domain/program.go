package domain

import "time"

type Branch string

const (
	BranchManada    Branch = "manada"
	BranchTropa     Branch = "tropa"
	BranchComunidad Branch = "comunidad"
	BranchClan      Branch = "clan"
)

func (b Branch) IsValid() bool {
	switch b {
	case BranchManada, BranchTropa, BranchComunidad, BranchClan:
		return true
	}
	return false
}

type ProgramStatus string

const (
	ProgramPlanned    ProgramStatus = "planned"
	ProgramInProgress ProgramStatus = "in_progress"
	ProgramCompleted  ProgramStatus = "completed"
	ProgramCancelled  ProgramStatus = "cancelled"
)

func (s ProgramStatus) IsValid() bool {
	switch s {
	case ProgramPlanned, ProgramInProgress, ProgramCompleted, ProgramCancelled:
		return true
	}
	return false
}

// Program is one planned week of troop activities for a single branch.
type Program struct {
	ID         uint          `json:"id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Theme      string        `json:"theme"`
	Branch     Branch        `json:"branch"`
	Objectives []string      `json:"objectives"`
	Status     ProgramStatus `json:"status"`
	LeaderName string        `json:"leader_name"`
	Notes      string        `json:"notes"`
	Activities []Activity    `json:"activities"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Activity is one scheduled exercise within a Program. Position carries the
// execution order and is preserved as insertion order.
type Activity struct {
	ID          uint     `json:"id"`
	ProgramID   uint     `json:"program_id"`
	Position    int      `json:"position"`
	Name        string   `json:"name"`
	Development string   `json:"development"`
	StartTime   string   `json:"start_time"`
	DurationMin int      `json:"duration_min"`
	Responsible string   `json:"responsible"`
	Materials   []string `json:"materials"`
	Notes       string   `json:"notes"`
}

// ProgramFilter narrows program listings. Zero values mean "no filter".
type ProgramFilter struct {
	Branch Branch
	From   time.Time
	To     time.Time
	Leader string
}
