package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type GoldenBookEntryRequest struct {
	Title      string `json:"title" binding:"required"`
	Body       string `json:"body" binding:"required"`
	EventDate  string `json:"event_date" binding:"required" format:"DD/MM/YYYY"`
	AuthorName string `json:"author_name"`
}

func (req *GoldenBookEntryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Body, validation.Required, validation.Length(1, 10000)),
		validation.Field(&req.EventDate, validation.Required, validation.Date("02/01/2006")),
		validation.Field(&req.AuthorName, validation.Length(0, 100)),
	)
}
