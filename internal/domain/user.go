package domain

import "time"

type User struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	DateJoined time.Time `json:"date_joined"`

	// Rounds are ordered most recent first when populated.
	Rounds []Round `json:"rounds,omitempty"`
}

func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("user name must not be empty")
	}

	return nil
}

// RecentDifferentials collects handicap differentials from the user's
// most recent rounds, newest first, up to limit. Rounds whose tee is
// missing a rating contribute nothing.
func (u *User) RecentDifferentials(limit int) []float64 {
	diffs := make([]float64, 0, limit)
	for _, round := range u.Rounds {
		if len(diffs) == limit {
			break
		}
		if diff, ok := round.HandicapDifferential(); ok {
			diffs = append(diffs, diff)
		}
	}

	return diffs
}
