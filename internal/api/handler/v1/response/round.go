package response

import "github.com/linkslog/scorecard-api/internal/domain"

const dateLayout = "2006-01-02"

type RoundBasic struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	CourseID uint   `json:"course_id"`
	TeeID    uint   `json:"tee_id"`
	Date     string `json:"date"`
	Score    int    `json:"score"`

	// Handicap is the round's handicap differential, omitted when the
	// tee's ratings are missing.
	Handicap *float64 `json:"handicap,omitempty"`
}

func NewRoundBasic(round domain.Round) RoundBasic {
	basic := RoundBasic{
		ID:       round.ID,
		UserID:   round.UserID,
		CourseID: round.CourseID,
		TeeID:    round.TeeID,
		Date:     round.Date.Format(dateLayout),
		Score:    round.TotalScore(),
	}
	if diff, ok := round.HandicapDifferential(); ok {
		basic.Handicap = &diff
	}

	return basic
}

func NewRoundList(rounds []domain.Round) []RoundBasic {
	list := make([]RoundBasic, len(rounds))
	for i, round := range rounds {
		list[i] = NewRoundBasic(round)
	}

	return list
}

type RoundDetail struct {
	RoundBasic
	ScoreByHole []int `json:"score_by_hole"`
	Putts       []int `json:"putts,omitempty"`
	Fairways    []int `json:"fairways,omitempty"`
	GIR         []int `json:"gir,omitempty"`
}

func NewRoundDetail(round domain.Round) RoundDetail {
	return RoundDetail{
		RoundBasic:  NewRoundBasic(round),
		ScoreByHole: round.ScoreByHole,
		Putts:       round.Putts,
		Fairways:    round.Fairways,
		GIR:         round.GIR,
	}
}
