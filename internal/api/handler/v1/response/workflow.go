package response

import (
	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/workflow"
)

const (
	StepSelectingProgram  = "selecting_program"
	StepSelectingActivity = "selecting_activity"
	StepAssigningScores   = "assigning_scores"
	StepMarkingAttendance = "marking_attendance"
)

// WorkflowStateResponse is the wire view of a wizard session. Only the fields
// belonging to the current step are populated.
type WorkflowStateResponse struct {
	SessionID string                   `json:"session_id"`
	Step      string                   `json:"step"`
	Program   *domain.Program          `json:"program,omitempty"`
	Activity  *domain.Activity         `json:"activity,omitempty"`
	Rows      []workflow.ScoreRow      `json:"rows,omitempty"`
	Roster    []workflow.AttendanceRow `json:"roster,omitempty"`
	Ranking   []domain.RankingRow      `json:"ranking,omitempty"`
}

func NewScoringState(sessionID string, w *workflow.Scoring) WorkflowStateResponse {
	resp := WorkflowStateResponse{
		SessionID: sessionID,
		Ranking:   w.Ranking(),
	}

	switch s := w.State().(type) {
	case workflow.SelectingActivity:
		resp.Step = StepSelectingActivity
		program := s.Program
		resp.Program = &program
	case workflow.AssigningScores:
		resp.Step = StepAssigningScores
		program := s.Program
		activity := s.Activity
		resp.Program = &program
		resp.Activity = &activity
		resp.Rows = s.Rows
	default:
		resp.Step = StepSelectingProgram
	}

	return resp
}

func NewAttendanceState(sessionID string, w *workflow.Attendance) WorkflowStateResponse {
	resp := WorkflowStateResponse{
		SessionID: sessionID,
	}

	switch s := w.State().(type) {
	case workflow.MarkingAttendance:
		resp.Step = StepMarkingAttendance
		program := s.Program
		resp.Program = &program
		resp.Roster = s.Rows
	default:
		resp.Step = StepSelectingProgram
	}

	return resp
}
