package secondary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// EventSource provides a club's upcoming events as visible to the given
// viewer, soonest first.
type EventSource interface {
	UpcomingEvents(ctx context.Context, clubID, viewerID int64) ([]entity.Event, error)
}
