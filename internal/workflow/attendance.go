package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/gruposcout/tropa-api/internal/domain"
	"github.com/gruposcout/tropa-api/internal/metrics"
)

type RosterSource interface {
	RosterForProgram(ctx context.Context, program domain.Program) ([]domain.AttendanceRecord, []domain.Member, error)
	SaveAll(ctx context.Context, records []domain.AttendanceRecord) (int, error)
}

type AttendanceState interface {
	attendanceState()
}

type AttendanceSelectingProgram struct{}

type MarkingAttendance struct {
	Program domain.Program
	Rows    []AttendanceRow
}

func (AttendanceSelectingProgram) attendanceState() {}
func (MarkingAttendance) attendanceState()          {}

// AttendanceRow is one roster line with its in-memory status.
type AttendanceRow struct {
	Member domain.Member           `json:"member"`
	Status domain.AttendanceStatus `json:"status"`
}

// Attendance drives the two step attendance wizard:
// SelectingProgram -> MarkingAttendance.
type Attendance struct {
	mu sync.Mutex

	programs ProgramSource
	roster   RosterSource

	state AttendanceState
}

func NewAttendance(programs ProgramSource, roster RosterSource) *Attendance {
	return &Attendance{
		programs: programs,
		roster:   roster,
		state:    AttendanceSelectingProgram{},
	}
}

func (w *Attendance) State() AttendanceState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// SelectProgram loads the branch roster merged with any saved records and
// moves to MarkingAttendance. Members without a prior record start as
// presente.
func (w *Attendance) SelectProgram(ctx context.Context, programID uint) error {
	program, err := w.programs.GetProgram(ctx, programID)
	if err != nil {
		return fmt.Errorf("w.programs.GetProgram -> %w", err)
	}

	records, members, err := w.roster.RosterForProgram(ctx, program)
	if err != nil {
		return fmt.Errorf("w.roster.RosterForProgram -> %w", err)
	}

	byID := make(map[uint]domain.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	rows := make([]AttendanceRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, AttendanceRow{
			Member: byID[rec.MemberID],
			Status: rec.Status,
		})
	}

	w.mu.Lock()
	w.state = MarkingAttendance{Program: program, Rows: rows}
	w.mu.Unlock()

	metrics.WorkflowTransitions.WithLabelValues("attendance", "marking").Inc()

	return nil
}

// CycleStatus advances one member through the fixed cycle
// presente -> tardanza -> ausente -> presente and returns the new status.
func (w *Attendance) CycleStatus(memberID uint) (domain.AttendanceStatus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	current, ok := w.state.(MarkingAttendance)
	if !ok {
		return "", ErrInvalidTransition
	}

	for i := range current.Rows {
		if current.Rows[i].Member.ID == memberID {
			current.Rows[i].Status = current.Rows[i].Status.Next()
			w.state = current
			return current.Rows[i].Status, nil
		}
	}

	return "", ErrUnknownMember
}

// SaveAll submits the full roster's current statuses as one batch, tagged with
// the program's start date. The wizard stays on MarkingAttendance.
func (w *Attendance) SaveAll(ctx context.Context) (int, error) {
	w.mu.Lock()
	current, ok := w.state.(MarkingAttendance)
	w.mu.Unlock()
	if !ok {
		return 0, ErrInvalidTransition
	}

	records := make([]domain.AttendanceRecord, 0, len(current.Rows))
	for _, row := range current.Rows {
		records = append(records, domain.AttendanceRecord{
			MemberID:  row.Member.ID,
			ProgramID: current.Program.ID,
			Status:    row.Status,
			Date:      current.Program.StartDate,
		})
	}

	count, err := w.roster.SaveAll(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("w.roster.SaveAll -> %w", err)
	}

	return count, nil
}

// Back discards the roster and returns to program selection.
func (w *Attendance) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.state.(MarkingAttendance); ok {
		w.state = AttendanceSelectingProgram{}
	}
}
