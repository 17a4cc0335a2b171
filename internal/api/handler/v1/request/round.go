package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateRoundRequest struct {
	CourseID    uint   `json:"course_id"`
	TeeID       uint   `json:"tee_id"`
	Date        string `json:"date"`
	ScoreByHole []int  `json:"score_by_hole"`
	Putts       []int  `json:"putts"`
	Fairways    []int  `json:"fairways"`
	GIR         []int  `json:"gir"`
}

func (req *CreateRoundRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.CourseID, validation.Required),
		validation.Field(&req.TeeID, validation.Required),
		validation.Field(&req.ScoreByHole, validation.Required),
		validation.Field(&req.Date, validation.Date("2006-01-02")),
	)
}

type UpdateRoundRequest struct {
	CourseID    *uint `json:"course_id"`
	TeeID       *uint `json:"tee_id"`
	ScoreByHole []int `json:"score_by_hole"`
	Putts       []int `json:"putts"`
	Fairways    []int `json:"fairways"`
	GIR         []int `json:"gir"`
}
