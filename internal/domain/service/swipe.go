package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
	"github.com/campusclubs/clubdeck/internal/domain/gesture"
	"github.com/campusclubs/clubdeck/internal/ports/primary"
	"github.com/campusclubs/clubdeck/internal/ports/secondary"
	"github.com/campusclubs/clubdeck/pkg/logger"
)

// SwipeService performs the optimistic deck advance and submits the vote to
// the remote store asynchronously. The deck is the session's source of truth:
// a failed submission is logged and dropped, never retried and never rolled
// back.
type SwipeService struct {
	deck   primary.DeckService
	store  secondary.VoteStore
	logger *logger.Logger

	wg sync.WaitGroup
}

func NewSwipeService(deck primary.DeckService, store secondary.VoteStore, lg *logger.Logger) *SwipeService {
	return &SwipeService{
		deck:   deck,
		store:  store,
		logger: lg,
	}
}

// Commit removes the club from the deck immediately and unconditionally, then
// dispatches the vote in its own goroutine. Multiple dispatches may be in
// flight at once; they share no state and are never serialized behind one
// another.
func (s *SwipeService) Commit(ctx context.Context, clubID int64, liked bool) {
	userID := s.deck.UserID()
	if userID == 0 {
		return
	}

	// If the club was already gone this is the second leg of a double-fire;
	// the first leg already dispatched the vote.
	if !s.deck.Commit(clubID) {
		return
	}

	swipe := &entity.Swipe{
		ClientID:  uuid.NewString(),
		UserID:    userID,
		ClubID:    clubID,
		Liked:     liked,
		CreatedAt: time.Now(),
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// The interaction that triggered this vote may finish long before the
		// submission does; the request must outlive it.
		if _, err := s.store.SubmitVote(context.WithoutCancel(ctx), swipe); err != nil {
			s.logger.Errorf("vote submission failed (user %d, club %d, liked %t): %v", userID, clubID, liked, err)
		}
	}()
}

// OnDecision adapts recognizer decisions to Commit. DecisionNone carries no
// side effects.
func (s *SwipeService) OnDecision(clubID int64, decision gesture.Decision) {
	switch decision {
	case gesture.DecisionLike:
		s.Commit(context.Background(), clubID, true)
	case gesture.DecisionDislike:
		s.Commit(context.Background(), clubID, false)
	}
}

// Drain blocks until every in-flight vote submission has resolved. Used at
// shutdown and in tests; never called on the interaction path.
func (s *SwipeService) Drain() {
	s.wg.Wait()
}
