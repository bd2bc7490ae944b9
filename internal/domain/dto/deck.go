package dto

// DeckState is the presentation state of the deck. Loading, Empty and Failed
// are distinct, explicit states: an empty deck after depletion is the
// terminal "no more candidates" display, not an error, and neither is
// inferred from mere absence of data.
type DeckState int

const (
	DeckLoading DeckState = iota
	DeckReady
	DeckEmpty
	DeckFailed
)

func (s DeckState) String() string {
	switch s {
	case DeckReady:
		return "ready"
	case DeckEmpty:
		return "empty"
	case DeckFailed:
		return "failed"
	default:
		return "loading"
	}
}
