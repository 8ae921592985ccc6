package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type SelectProgramRequest struct {
	ProgramID uint `json:"program_id" binding:"required"`
}

func (req *SelectProgramRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProgramID, validation.Required, validation.Min(uint(1))),
	)
}

type SelectActivityRequest struct {
	ActivityID uint `json:"activity_id" binding:"required"`
}

func (req *SelectActivityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ActivityID, validation.Required, validation.Min(uint(1))),
	)
}

type CycleStatusRequest struct {
	MemberID uint `json:"member_id" binding:"required"`
}

func (req *CycleStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MemberID, validation.Required, validation.Min(uint(1))),
	)
}
