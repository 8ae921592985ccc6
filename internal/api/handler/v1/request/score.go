package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var timeOfDayExp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type ScoreEntryPayload struct {
	UnitID uint   `json:"unit_id"`
	Score  int    `json:"score"`
	Note   string `json:"note"`
}

func (p ScoreEntryPayload) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.UnitID, validation.Required, validation.Min(uint(1))),
		validation.Field(&p.Score, validation.Min(0), validation.Max(100)),
		validation.Field(&p.Note, validation.Length(0, 500)),
	)
}

type SaveScoresRequest struct {
	Entries []ScoreEntryPayload `json:"entries"`
}

func (req *SaveScoresRequest) Validate() error {
	for _, e := range req.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
