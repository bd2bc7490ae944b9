package secondary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// MatchSource answers the view-specific "which clubs has this user liked"
// query. The remote store is authoritative; this is not a replay of local
// vote records.
type MatchSource interface {
	LikedClubs(ctx context.Context, userID int64) ([]entity.Club, error)
}
