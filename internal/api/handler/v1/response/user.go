package response

import "github.com/linkslog/scorecard-api/internal/domain"

type UserDetail struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	DateJoined string `json:"date_joined"`

	// Handicap is omitted until the aggregate formula can compute one.
	Handicap *float64 `json:"handicap,omitempty"`
}

func NewUserDetail(user domain.User, handicap *float64) UserDetail {
	return UserDetail{
		ID:         user.ID,
		Name:       user.Name,
		DateJoined: user.DateJoined.Format(dateLayout),
		Handicap:   handicap,
	}
}
