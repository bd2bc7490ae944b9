package primary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/dto"
	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// DeckService owns the ordered per-session deck of candidate clubs.
type DeckService interface {
	// Load seeds the deck for a user from the recommendation source. Called
	// once per session/user change; a missing user id is a gated no-op.
	Load(ctx context.Context, userID int64) error
	// Window returns the top-K clubs in back-to-front render order.
	Window(k int) []entity.Club
	// Commit removes a club from the deck. Idempotent: committing an absent
	// id is a no-op and reports false.
	Commit(clubID int64) bool
	State() dto.DeckState
	UserID() int64
	Remaining() int
}
