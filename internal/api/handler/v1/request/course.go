package request

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request validation is syntactic only (presence and shape); domain
// invariants such as hole number and par ranges are enforced once, in
// the domain model.

type CreateCourseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (req *CreateCourseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Location, validation.Required),
	)
}

type UpdateCourseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type CreateTeeRequest struct {
	Colour       string   `json:"colour"`
	CourseRating *float64 `json:"course_rating"`
	SlopeRating  *float64 `json:"slope_rating"`
}

func (req *CreateTeeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Colour, validation.Required),
	)
}

type UpdateTeeRequest struct {
	Colour       *string  `json:"colour"`
	CourseRating *float64 `json:"course_rating"`
	SlopeRating  *float64 `json:"slope_rating"`
}

// TeeYardageRequest references a tee by colour and gives the distance
// from it to the enclosing hole.
type TeeYardageRequest struct {
	Colour  string `json:"colour"`
	Yardage int    `json:"yardage"`
}

type HoleRequest struct {
	Number int                 `json:"number"`
	Par    int                 `json:"par"`
	Tees   []TeeYardageRequest `json:"tees"`
}

func (req *HoleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Number, validation.Required),
		validation.Field(&req.Par, validation.Required),
	)
}

// CreateHolesRequest accepts either a single hole object or an ordered
// sequence of hole objects as its body.
type CreateHolesRequest struct {
	Holes []HoleRequest
}

func (req *CreateHolesRequest) UnmarshalJSON(data []byte) error {
	var list []HoleRequest
	if err := json.Unmarshal(data, &list); err == nil {
		req.Holes = list
		return nil
	}

	var one HoleRequest
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	req.Holes = []HoleRequest{one}

	return nil
}

func (req *CreateHolesRequest) Validate() error {
	if len(req.Holes) == 0 {
		return validation.NewError("validation_required", "at least one hole is required")
	}

	for i := range req.Holes {
		if err := req.Holes[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

type ScorecardTeeRequest struct {
	Colour       string   `json:"colour"`
	CourseRating *float64 `json:"course_rating"`
	SlopeRating  *float64 `json:"slope_rating"`
}

type CreateScorecardRequest struct {
	Tees  []ScorecardTeeRequest `json:"tees"`
	Holes []HoleRequest         `json:"holes"`
}

func (req *CreateScorecardRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Tees, validation.Required),
		validation.Field(&req.Holes, validation.Required),
	); err != nil {
		return err
	}

	for i := range req.Holes {
		if err := req.Holes[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
