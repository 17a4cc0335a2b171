package response

import "github.com/linkslog/scorecard-api/internal/domain"

// Projections come in two sizes per entity: basic for list views,
// detail for single-resource views. Building them never mutates the
// domain aggregates they read.

type CourseBasic struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCourseBasic(course domain.Course) CourseBasic {
	return CourseBasic{
		ID:   course.ID,
		Name: course.Name,
	}
}

func NewCourseList(courses []domain.Course) []CourseBasic {
	list := make([]CourseBasic, len(courses))
	for i, course := range courses {
		list[i] = NewCourseBasic(course)
	}

	return list
}

type CourseDetail struct {
	ID            uint        `json:"id"`
	Name          string      `json:"name"`
	Location      string      `json:"location"`
	Par           int         `json:"par"`
	NumberOfHoles int         `json:"number_of_holes"`
	Holes         []HoleBasic `json:"holes"`
	Tees          []TeeBasic  `json:"tees"`
}

func NewCourseDetail(course domain.Course) CourseDetail {
	return CourseDetail{
		ID:            course.ID,
		Name:          course.Name,
		Location:      course.Location,
		Par:           course.Par(),
		NumberOfHoles: course.NumberOfHoles(),
		Holes:         NewHoleList(course.Holes),
		Tees:          NewTeeList(course.Tees),
	}
}

type HoleBasic struct {
	ID       uint `json:"id"`
	CourseID uint `json:"course_id"`
	Number   int  `json:"number"`
	Par      int  `json:"par"`
}

func NewHoleBasic(hole domain.Hole) HoleBasic {
	return HoleBasic{
		ID:       hole.ID,
		CourseID: hole.CourseID,
		Number:   hole.Number,
		Par:      hole.Par,
	}
}

func NewHoleList(holes []domain.Hole) []HoleBasic {
	list := make([]HoleBasic, len(holes))
	for i, hole := range holes {
		list[i] = NewHoleBasic(hole)
	}

	return list
}

type HoleDetail struct {
	HoleBasic
	Tees []HoleTeeYardage `json:"tees"`
}

// HoleTeeYardage is one tee's distance for the hole being rendered.
type HoleTeeYardage struct {
	TeeID   uint   `json:"tee_id"`
	Colour  string `json:"colour"`
	Yardage int    `json:"yardage"`
}

func NewHoleDetail(hole domain.Hole) HoleDetail {
	detail := HoleDetail{
		HoleBasic: NewHoleBasic(hole),
		Tees:      make([]HoleTeeYardage, len(hole.Yardages)),
	}
	for i, y := range hole.Yardages {
		detail.Tees[i] = HoleTeeYardage{
			TeeID:   y.TeeID,
			Colour:  y.Colour,
			Yardage: y.Yards,
		}
	}

	return detail
}

func NewHoleDetailList(holes []domain.Hole) []HoleDetail {
	list := make([]HoleDetail, len(holes))
	for i, hole := range holes {
		list[i] = NewHoleDetail(hole)
	}

	return list
}

type TeeBasic struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Colour   string `json:"colour"`
}

func NewTeeBasic(tee domain.Tee) TeeBasic {
	return TeeBasic{
		ID:       tee.ID,
		CourseID: tee.CourseID,
		Colour:   tee.Colour,
	}
}

func NewTeeList(tees []domain.Tee) []TeeBasic {
	list := make([]TeeBasic, len(tees))
	for i, tee := range tees {
		list[i] = NewTeeBasic(tee)
	}

	return list
}

type TeeDetail struct {
	TeeBasic
	CourseRating *float64 `json:"course_rating"`
	SlopeRating  *float64 `json:"slope_rating"`
	Yardage      int      `json:"yardage"`
}

func NewTeeDetail(tee domain.Tee) TeeDetail {
	return TeeDetail{
		TeeBasic:     NewTeeBasic(tee),
		CourseRating: tee.CourseRating,
		SlopeRating:  tee.SlopeRating,
		Yardage:      tee.TotalYardage(),
	}
}

type Scorecard struct {
	Course CourseBasic  `json:"course"`
	Holes  []HoleDetail `json:"holes"`
	Tees   []TeeDetail  `json:"tees"`
}

func NewScorecard(scorecard domain.Scorecard) Scorecard {
	out := Scorecard{
		Course: NewCourseBasic(scorecard.Course),
		Holes:  NewHoleDetailList(scorecard.Holes),
		Tees:   make([]TeeDetail, len(scorecard.Tees)),
	}
	for i, tee := range scorecard.Tees {
		out.Tees[i] = NewTeeDetail(tee)
	}

	return out
}
