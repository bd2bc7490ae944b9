package gesture

// Decision is the outcome of releasing a card.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionLike
	DecisionDislike
)

func (d Decision) String() string {
	switch d {
	case DecisionLike:
		return "like"
	case DecisionDislike:
		return "dislike"
	default:
		return "none"
	}
}

// Threshold is the horizontal drag distance a card must travel before a
// release counts as a decision. A release exactly at the threshold counts
// as neither.
const Threshold = 140.0

// Classify maps a horizontal drag offset to a decision.
func Classify(dx float64) Decision {
	switch {
	case dx > Threshold:
		return DecisionLike
	case dx < -Threshold:
		return DecisionDislike
	default:
		return DecisionNone
	}
}
