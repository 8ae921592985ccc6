package domain

import "time"

type AttendanceStatus string

const (
	AttendancePresente AttendanceStatus = "presente"
	AttendanceTardanza AttendanceStatus = "tardanza"
	AttendanceAusente  AttendanceStatus = "ausente"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresente, AttendanceTardanza, AttendanceAusente:
		return true
	}
	return false
}

// Next advances the status through the fixed 3-cycle
// presente -> tardanza -> ausente -> presente.
func (s AttendanceStatus) Next() AttendanceStatus {
	switch s {
	case AttendancePresente:
		return AttendanceTardanza
	case AttendanceTardanza:
		return AttendanceAusente
	default:
		return AttendancePresente
	}
}

// AttendanceRecord marks one member's status for one program. Uniqueness per
// (member, program) is enforced by the store.
type AttendanceRecord struct {
	MemberID  uint             `json:"member_id"`
	ProgramID uint             `json:"program_id"`
	Status    AttendanceStatus `json:"status"`
	Date      time.Time        `json:"date"`
}
