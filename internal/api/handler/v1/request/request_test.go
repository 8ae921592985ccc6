package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Email:           "ana@gruposcout.org",
		Password:        "contrasena1",
		ConfirmPassword: "contrasena1",
		Name:            "Ana",
		Role:            "dirigente",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("password needs a digit", func(t *testing.T) {
		req := valid
		req.Password = "contrasena"
		req.ConfirmPassword = "contrasena"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password needs a letter", func(t *testing.T) {
		req := valid
		req.Password = "12345678"
		req.ConfirmPassword = "12345678"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password too short", func(t *testing.T) {
		req := valid
		req.Password = "abc1"
		req.ConfirmPassword = "abc1"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("confirmation must match", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "otracosa1"
		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := valid
		req.Role = "scout"
		assert.Error(t, req.Validate())
	})
}

func TestProgramRequest_Validate(t *testing.T) {
	valid := ProgramRequest{
		StartDate: "08/03/2025",
		EndDate:   "09/03/2025",
		Theme:     "Semana de pionerismo",
		Branch:    "tropa",
		Status:    "planned",
		Activities: []ActivityPayload{
			{Name: "Nudos", StartTime: "09:30", DurationMin: 45},
		},
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("dates must be DD/MM/YYYY", func(t *testing.T) {
		req := valid
		req.StartDate = "2025-03-08"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown branch", func(t *testing.T) {
		req := valid
		req.Branch = "castores"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		req := valid
		req.Status = "paused"
		assert.Error(t, req.Validate())
	})
}

func TestActivityPayload_Validate(t *testing.T) {
	t.Run("start time must be HH:MM", func(t *testing.T) {
		p := ActivityPayload{Name: "Nudos", StartTime: "25:00"}
		assert.Error(t, p.Validate())
	})

	t.Run("start time is optional", func(t *testing.T) {
		p := ActivityPayload{Name: "Nudos"}
		assert.NoError(t, p.Validate())
	})

	t.Run("duration cannot exceed a day", func(t *testing.T) {
		p := ActivityPayload{Name: "Nudos", DurationMin: 2000}
		assert.Error(t, p.Validate())
	})
}

func TestScoreEntryPayload_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := ScoreEntryPayload{UnitID: 1, Score: 100}
		assert.NoError(t, p.Validate())
	})

	t.Run("zero score is allowed", func(t *testing.T) {
		p := ScoreEntryPayload{UnitID: 1, Score: 0}
		assert.NoError(t, p.Validate())
	})

	t.Run("score above 100", func(t *testing.T) {
		p := ScoreEntryPayload{UnitID: 1, Score: 101}
		assert.Error(t, p.Validate())
	})

	t.Run("unit is required", func(t *testing.T) {
		p := ScoreEntryPayload{Score: 50}
		assert.Error(t, p.Validate())
	})
}

func TestBulkAttendanceRequest_Validate(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		req := BulkAttendanceRequest{}
		assert.ErrorIs(t, req.Validate(), errEmptyBatch)
	})

	t.Run("valid batch", func(t *testing.T) {
		req := BulkAttendanceRequest{
			Records: []AttendanceRecordPayload{
				{MemberID: 1, ProgramID: 1, Date: "08/03/2025", Status: "presente"},
			},
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		req := BulkAttendanceRequest{
			Records: []AttendanceRecordPayload{
				{MemberID: 1, ProgramID: 1, Date: "08/03/2025", Status: "maybe"},
			},
		}
		assert.Error(t, req.Validate())
	})
}
