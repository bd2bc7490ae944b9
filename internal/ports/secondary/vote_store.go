package secondary

import (
	"context"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// VoteStore receives committed swipe votes. The returned swipe may carry a
// server-assigned id; the engine does not keep an authoritative copy either
// way.
type VoteStore interface {
	SubmitVote(ctx context.Context, swipe *entity.Swipe) (*entity.Swipe, error)
}
