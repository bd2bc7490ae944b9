package secondary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// RecommendationSource provides the externally ranked candidate clubs that
// seed the deck, in ranking order.
type RecommendationSource interface {
	Recommendations(ctx context.Context, userID int64, limit int) ([]entity.Club, error)
}
