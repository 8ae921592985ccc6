package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatus_Next(t *testing.T) {
	assert.Equal(t, AttendanceTardanza, AttendancePresente.Next())
	assert.Equal(t, AttendanceAusente, AttendanceTardanza.Next())
	assert.Equal(t, AttendancePresente, AttendanceAusente.Next())

	// Unknown statuses fall back to the start of the cycle.
	assert.Equal(t, AttendancePresente, AttendanceStatus("maybe").Next())
}

func TestAttendanceStatus_IsValid(t *testing.T) {
	assert.True(t, AttendancePresente.IsValid())
	assert.True(t, AttendanceTardanza.IsValid())
	assert.True(t, AttendanceAusente.IsValid())
	assert.False(t, AttendanceStatus("").IsValid())
	assert.False(t, AttendanceStatus("maybe").IsValid())
}

func TestBranch_IsValid(t *testing.T) {
	for _, b := range []Branch{BranchManada, BranchTropa, BranchComunidad, BranchClan} {
		assert.True(t, b.IsValid())
	}
	assert.False(t, Branch("castores").IsValid())
}
