package domain

// HandicapRoundsConsidered caps how many recent rounds feed a user's
// aggregate handicap.
const HandicapRoundsConsidered = 20

// HandicapCalculator turns a user's recent handicap differentials,
// newest first, into an aggregate handicap. Implementations report
// ok == false when no handicap can be computed from the given data.
type HandicapCalculator interface {
	Compute(differentials []float64) (float64, bool)
}

// UnsettledHandicapCalculator is the default calculator. The aggregate
// formula has not been settled yet, so it reports every handicap as
// unavailable rather than guessing.
type UnsettledHandicapCalculator struct{}

func (UnsettledHandicapCalculator) Compute(_ []float64) (float64, bool) {
	return 0, false
}
