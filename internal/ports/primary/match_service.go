package primary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/dto"
)

// MatchService builds the matches view: liked clubs joined with their
// upcoming events.
type MatchService interface {
	// Aggregate returns one MatchItem per liked club, in liked-clubs order.
	// A liked-clubs fetch failure returns an error (the "couldn't load"
	// state); a per-club events failure leaves that club in the result with
	// an empty event list.
	Aggregate(ctx context.Context, userID int64) ([]dto.MatchItem, error)
}
