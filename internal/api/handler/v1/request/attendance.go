package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEmptyBatch = errors.New("records must not be empty")

type AttendanceRecordPayload struct {
	MemberID  uint   `json:"member_id"`
	ProgramID uint   `json:"program_id"`
	Date      string `json:"date" format:"DD/MM/YYYY"`
	Status    string `json:"status"`
}

func (p AttendanceRecordPayload) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.MemberID, validation.Required, validation.Min(uint(1))),
		validation.Field(&p.ProgramID, validation.Required, validation.Min(uint(1))),
		validation.Field(&p.Date, validation.Required, validation.Date("02/01/2006")),
		validation.Field(&p.Status, validation.Required, validation.In("presente", "tardanza", "ausente")),
	)
}

type BulkAttendanceRequest struct {
	Records []AttendanceRecordPayload `json:"records"`
}

func (req *BulkAttendanceRequest) Validate() error {
	if len(req.Records) == 0 {
		return errEmptyBatch
	}
	for _, r := range req.Records {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}
