package domain

import "time"

// slopeBase is the slope rating of a course of standard difficulty.
const slopeBase = 113

type Round struct {
	ID       uint      `json:"id"`
	UserID   uint      `json:"user_id"`
	CourseID uint      `json:"course_id"`
	TeeID    uint      `json:"tee_id"`
	Date     time.Time `json:"date"`

	ScoreByHole []int `json:"score_by_hole"`
	Putts       []int `json:"putts,omitempty"`
	Fairways    []int `json:"fairways,omitempty"`
	GIR         []int `json:"gir,omitempty"`

	// Tee is populated on reads so derived values can be computed
	// without another lookup.
	Tee *Tee `json:"-"`
}

// TotalScore is the sum of the round's per-hole scores.
func (r *Round) TotalScore() int {
	total := 0
	for _, s := range r.ScoreByHole {
		total += s
	}

	return total
}

// HandicapDifferential computes (slope / 113) * score - rating for the
// tee the round was played from. Reports ok == false when either rating
// is missing; a differential is never substituted with zero.
func (r *Round) HandicapDifferential() (float64, bool) {
	if r.Tee == nil || r.Tee.CourseRating == nil || r.Tee.SlopeRating == nil {
		return 0, false
	}

	diff := *r.Tee.SlopeRating/slopeBase*float64(r.TotalScore()) - *r.Tee.CourseRating

	return diff, true
}

// Validate checks the round's own invariants. Cross-entity checks
// (the tee belonging to the round's course) are separate, see
// ValidateRoundTee.
func (r *Round) Validate() error {
	if err := ValidateScoreByHole(r.ScoreByHole); err != nil {
		return err
	}
	if err := ValidateStatSequence("putts", r.Putts, r.ScoreByHole); err != nil {
		return err
	}
	if err := ValidateStatSequence("fairways", r.Fairways, r.ScoreByHole); err != nil {
		return err
	}

	return ValidateStatSequence("gir", r.GIR, r.ScoreByHole)
}

// ValidateScoreByHole checks that a score sequence has exactly 9 or 18
// values.
func ValidateScoreByHole(scores []int) error {
	if len(scores) != 9 && len(scores) != 18 {
		return NewValidationError("score_by_hole should contain either 9 or 18 values, got %v", len(scores))
	}

	return nil
}

// ValidateStatSequence checks that an optional per-hole stat sequence,
// when present, has the same cardinality as the score sequence.
func ValidateStatSequence(name string, stat, scores []int) error {
	if stat == nil {
		return nil
	}
	if len(stat) != len(scores) {
		return NewValidationError("%v should contain one value per hole scored (%v), got %v", name, len(scores), len(stat))
	}

	return nil
}

// ValidateRoundTee checks that the tee a round references belongs to the
// round's course. Enforced here rather than by the storage engine.
func ValidateRoundTee(round Round, tee Tee) error {
	if tee.CourseID != round.CourseID {
		return NewValidationError("tee %v does not belong to course %v", tee.ID, round.CourseID)
	}

	return nil
}

// RoundPatch carries the fields a round update may touch. CourseID and
// TeeID are present only so the mutation attempt can be rejected.
type RoundPatch struct {
	CourseID *uint
	TeeID    *uint

	ScoreByHole []int
	Putts       []int
	Fairways    []int
	GIR         []int
}
