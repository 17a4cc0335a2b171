package domain

import "time"

type Course struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`

	Holes []Hole `json:"holes,omitempty"`
	Tees  []Tee  `json:"tees,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Par is the sum of the pars of the course's holes.
func (c *Course) Par() int {
	par := 0
	for _, hole := range c.Holes {
		par += hole.Par
	}

	return par
}

func (c *Course) NumberOfHoles() int {
	return len(c.Holes)
}

// TeeByColour looks up a tee by its colour, the natural key distinguishing
// tees within a course.
func (c *Course) TeeByColour(colour string) (Tee, bool) {
	for _, tee := range c.Tees {
		if tee.Colour == colour {
			return tee, true
		}
	}

	return Tee{}, false
}

// Validate checks the course's own invariants.
func (c *Course) Validate() error {
	if c.Name == "" {
		return NewValidationError("course name must not be empty")
	}
	if c.Location == "" {
		return NewValidationError("course location must not be empty")
	}

	return nil
}

type Hole struct {
	ID       uint `json:"id"`
	CourseID uint `json:"course_id"`
	Number   int  `json:"number"`
	Par      int  `json:"par"`

	// Yardages holds one entry per tee that has recorded a distance for
	// this hole. Populated on detail reads.
	Yardages []Yardage `json:"yardages,omitempty"`
}

func (h *Hole) Validate() error {
	if err := ValidateHoleNumber(h.Number); err != nil {
		return err
	}

	return ValidateHolePar(h.Par)
}

// ValidateHoleNumber checks that a hole number is between 1 and 18.
func ValidateHoleNumber(number int) error {
	if number < 1 || number > 18 {
		return NewValidationError("hole number must be between 1 and 18, got %v", number)
	}

	return nil
}

// ValidateHolePar checks that the par for a hole is 3, 4 or 5.
func ValidateHolePar(par int) error {
	if par < 3 || par > 5 {
		return NewValidationError("par may only be 3, 4 or 5, got %v", par)
	}

	return nil
}

// ValidateHoleNumbers checks that a scorecard's hole numbers form the
// contiguous set {1..N} where N is 9 or 18.
func ValidateHoleNumbers(numbers []int) error {
	if len(numbers) != 9 && len(numbers) != 18 {
		return NewValidationError("a scorecard must have 9 or 18 holes, got %v", len(numbers))
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if err := ValidateHoleNumber(n); err != nil {
			return err
		}
		if seen[n] {
			return NewValidationError("duplicate hole number %v", n)
		}
		seen[n] = true
	}

	for n := 1; n <= len(numbers); n++ {
		if !seen[n] {
			return NewValidationError("hole number %v is missing from the scorecard", n)
		}
	}

	return nil
}

type Tee struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Colour   string `json:"colour"`

	// Ratings are optional; the handicap differential of a round played
	// from this tee is unavailable while either is nil.
	CourseRating *float64 `json:"course_rating,omitempty"`
	SlopeRating  *float64 `json:"slope_rating,omitempty"`

	Yardages []Yardage `json:"yardages,omitempty"`
}

// TotalYardage is the sum of the tee's recorded distances.
func (t *Tee) TotalYardage() int {
	total := 0
	for _, y := range t.Yardages {
		total += y.Yards
	}

	return total
}

func (t *Tee) Validate() error {
	if t.Colour == "" {
		return NewValidationError("tee colour must not be empty")
	}

	return nil
}

// Yardage is the distance from one tee to one hole. At most one exists
// per (tee, hole) pair.
type Yardage struct {
	TeeID  uint `json:"tee_id"`
	HoleID uint `json:"hole_id"`
	Yards  int  `json:"yardage"`

	// Colour denormalizes the owning tee's colour for read projections.
	Colour string `json:"colour,omitempty"`
}

// HoleSpec describes a hole to be created, with optional per-tee
// distances keyed by colour.
type HoleSpec struct {
	Number int
	Par    int
	Tees   []TeeYardageSpec
}

type TeeYardageSpec struct {
	Colour string
	Yards  int
}

// TeeSpec describes a tee to be created as part of a scorecard.
type TeeSpec struct {
	Colour       string
	CourseRating *float64
	SlopeRating  *float64
}

// ScorecardSpec is the bulk payload creating a course's full scorecard
// in one operation.
type ScorecardSpec struct {
	Tees  []TeeSpec
	Holes []HoleSpec
}

// Validate checks the spec's structural invariants before anything is
// persisted: hole numbers contiguous from 1, pars in range, every
// referenced colour present in the tee list.
func (s *ScorecardSpec) Validate() error {
	colours := make(map[string]bool, len(s.Tees))
	for _, tee := range s.Tees {
		if tee.Colour == "" {
			return NewValidationError("tee colour must not be empty")
		}
		colours[tee.Colour] = true
	}

	numbers := make([]int, 0, len(s.Holes))
	for _, hole := range s.Holes {
		if err := ValidateHolePar(hole.Par); err != nil {
			return err
		}
		for _, ty := range hole.Tees {
			if !colours[ty.Colour] {
				return NewValidationError("hole %v references tee colour %q which is not part of the scorecard", hole.Number, ty.Colour)
			}
		}
		numbers = append(numbers, hole.Number)
	}

	return ValidateHoleNumbers(numbers)
}

// CoursePatch carries the fields a course update may touch.
type CoursePatch struct {
	Name     *string
	Location *string
}

// TeePatch carries the fields a tee update may touch. Colour is present
// only so the mutation attempt can be rejected.
type TeePatch struct {
	Colour       *string
	CourseRating *float64
	SlopeRating  *float64
}

// HolePatch carries the fields a hole update may touch. Number and Par
// are present only so mutation attempts can be rejected; Tees upsert
// the corresponding yardages by colour.
type HolePatch struct {
	Number *int
	Par    *int
	Tees   []TeeYardageSpec
}

// Scorecard is the read-side aggregate of a course's holes, tees and
// yardages.
type Scorecard struct {
	Course Course
	Holes  []Hole
	Tees   []Tee
}
