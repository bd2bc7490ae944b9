package primary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/gesture"
)

// SwipeService turns committed decisions into an optimistic deck advance plus
// a fire-and-forget vote submission.
type SwipeService interface {
	// Commit advances the deck synchronously and dispatches the vote
	// asynchronously. Never blocks on network I/O.
	Commit(ctx context.Context, clubID int64, liked bool)
	// OnDecision is the decision-commit callback handed to card recognizers.
	OnDecision(clubID int64, decision gesture.Decision)
	// Drain waits for in-flight vote submissions. Shutdown and tests only.
	Drain()
}
