package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruposcout/tropa-api/internal/domain"
)

type fakeRoster struct {
	records []domain.AttendanceRecord
	members []domain.Member

	lastBatch []domain.AttendanceRecord
	saveErr   error
}

func (f *fakeRoster) RosterForProgram(_ context.Context, _ domain.Program) ([]domain.AttendanceRecord, []domain.Member, error) {
	return f.records, f.members, nil
}

func (f *fakeRoster) SaveAll(_ context.Context, records []domain.AttendanceRecord) (int, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.lastBatch = records
	return len(records), nil
}

func newAttendanceFixtures() (*fakeBackend, *fakeRoster) {
	programs := &fakeBackend{
		programs: map[uint]domain.Program{
			1: {
				ID:        1,
				Theme:     "Semana de pionerismo",
				Branch:    domain.BranchTropa,
				StartDate: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	roster := &fakeRoster{
		members: []domain.Member{
			{ID: 1, Name: "Ana", Branch: domain.BranchTropa},
			{ID: 2, Name: "Bruno", Branch: domain.BranchTropa},
		},
		records: []domain.AttendanceRecord{
			{MemberID: 1, ProgramID: 1, Status: domain.AttendancePresente},
			{MemberID: 2, ProgramID: 1, Status: domain.AttendanceAusente},
		},
	}

	return programs, roster
}

func TestAttendance_SelectProgram(t *testing.T) {
	t.Run("loads the roster and moves to marking", func(t *testing.T) {
		programs, roster := newAttendanceFixtures()
		w := NewAttendance(programs, roster)

		err := w.SelectProgram(context.Background(), 1)

		require.NoError(t, err)
		state, ok := w.State().(MarkingAttendance)
		require.True(t, ok)
		require.Len(t, state.Rows, 2)
		assert.Equal(t, "Ana", state.Rows[0].Member.Name)
		assert.Equal(t, domain.AttendancePresente, state.Rows[0].Status)
		assert.Equal(t, domain.AttendanceAusente, state.Rows[1].Status)
	})

	t.Run("unknown program keeps the wizard on program selection", func(t *testing.T) {
		programs, roster := newAttendanceFixtures()
		w := NewAttendance(programs, roster)

		err := w.SelectProgram(context.Background(), 404)

		require.Error(t, err)
		assert.IsType(t, AttendanceSelectingProgram{}, w.State())
	})
}

func TestAttendance_CycleStatus(t *testing.T) {
	programs, roster := newAttendanceFixtures()
	w := NewAttendance(programs, roster)

	t.Run("rejected before a program is selected", func(t *testing.T) {
		_, err := w.CycleStatus(1)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	require.NoError(t, w.SelectProgram(context.Background(), 1))

	t.Run("wraps through the full cycle", func(t *testing.T) {
		status, err := w.CycleStatus(1)
		require.NoError(t, err)
		assert.Equal(t, domain.AttendanceTardanza, status)

		status, err = w.CycleStatus(1)
		require.NoError(t, err)
		assert.Equal(t, domain.AttendanceAusente, status)

		status, err = w.CycleStatus(1)
		require.NoError(t, err)
		assert.Equal(t, domain.AttendancePresente, status)
	})

	t.Run("unknown member", func(t *testing.T) {
		_, err := w.CycleStatus(404)
		assert.ErrorIs(t, err, ErrUnknownMember)
	})
}

func TestAttendance_SaveAll(t *testing.T) {
	t.Run("submits the whole roster tagged with the program date", func(t *testing.T) {
		programs, roster := newAttendanceFixtures()
		w := NewAttendance(programs, roster)
		require.NoError(t, w.SelectProgram(context.Background(), 1))
		_, err := w.CycleStatus(2)
		require.NoError(t, err)

		count, err := w.SaveAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, roster.lastBatch, 2)
		assert.Equal(t, uint(1), roster.lastBatch[0].ProgramID)
		assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), roster.lastBatch[0].Date)
		assert.Equal(t, domain.AttendancePresente, roster.lastBatch[1].Status)

		// Still on the marking step.
		assert.IsType(t, MarkingAttendance{}, w.State())
	})

	t.Run("rejected before a program is selected", func(t *testing.T) {
		programs, roster := newAttendanceFixtures()
		w := NewAttendance(programs, roster)

		_, err := w.SaveAll(context.Background())

		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("failed save keeps the in-memory statuses", func(t *testing.T) {
		programs, roster := newAttendanceFixtures()
		roster.saveErr = errors.New("db down")
		w := NewAttendance(programs, roster)
		require.NoError(t, w.SelectProgram(context.Background(), 1))
		_, err := w.CycleStatus(1)
		require.NoError(t, err)

		_, err = w.SaveAll(context.Background())

		require.Error(t, err)
		state := w.State().(MarkingAttendance)
		assert.Equal(t, domain.AttendanceTardanza, state.Rows[0].Status)
	})
}

func TestAttendance_Back(t *testing.T) {
	programs, roster := newAttendanceFixtures()
	w := NewAttendance(programs, roster)
	require.NoError(t, w.SelectProgram(context.Background(), 1))

	w.Back()

	assert.IsType(t, AttendanceSelectingProgram{}, w.State())
}

func TestStore_Sessions(t *testing.T) {
	programs, roster := newAttendanceFixtures()
	store := NewStore(programs, programs, programs, programs, roster)

	t.Run("scoring sessions are independent", func(t *testing.T) {
		id1, w1 := store.CreateScoring()
		id2, _ := store.CreateScoring()
		require.NotEqual(t, id1, id2)

		require.NoError(t, w1.SelectProgram(context.Background(), 1))

		got, err := store.GetScoring(id1)
		require.NoError(t, err)
		assert.IsType(t, SelectingActivity{}, got.State())

		other, err := store.GetScoring(id2)
		require.NoError(t, err)
		assert.IsType(t, SelectingProgram{}, other.State())
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := store.GetScoring("nope")
		assert.ErrorIs(t, err, ErrSessionUnknown)

		_, err = store.GetAttendance("nope")
		assert.ErrorIs(t, err, ErrSessionUnknown)
	})

	t.Run("delete closes both kinds", func(t *testing.T) {
		id, _ := store.CreateAttendance()
		store.Delete(id)

		_, err := store.GetAttendance(id)
		assert.ErrorIs(t, err, ErrSessionUnknown)
	})
}
