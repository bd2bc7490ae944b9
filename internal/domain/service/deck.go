package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/campusclubs/clubdeck/internal/domain/dto"
	"github.com/campusclubs/clubdeck/internal/domain/entity"
	"github.com/campusclubs/clubdeck/internal/ports/secondary"
	"github.com/campusclubs/clubdeck/pkg/logger"
)

// WindowSize is the number of stacked cards the UI renders at once.
const WindowSize = 5

// DeckService holds the ranked sequence of candidate clubs for the current
// user. Insertion order is ranking order; the deck is never reordered after
// load, only shortened by commits.
type DeckService struct {
	mu sync.Mutex

	source   secondary.RecommendationSource
	fallback []entity.Club
	logger   *logger.Logger
	limit    int

	userID int64
	clubs  []entity.Club
	// seen tracks every club id that has entered the deck this session; a
	// committed id must never reappear.
	seen  map[int64]struct{}
	state dto.DeckState
}

func NewDeckService(source secondary.RecommendationSource, fallback []entity.Club, lg *logger.Logger, limit int) *DeckService {
	return &DeckService{
		source:   source,
		fallback: fallback,
		logger:   lg,
		limit:    limit,
		seen:     make(map[int64]struct{}),
		state:    dto.DeckLoading,
	}
}

// Load seeds the deck from the recommendation source. A user change starts a
// fresh session; reloading for the same user only appends clubs this session
// has not seen yet.
func (s *DeckService) Load(ctx context.Context, userID int64) error {
	if userID == 0 {
		return ErrNoSession
	}

	s.mu.Lock()
	if userID != s.userID {
		s.userID = userID
		s.clubs = nil
		s.seen = make(map[int64]struct{})
		s.state = dto.DeckLoading
	}
	s.mu.Unlock()

	clubs, err := s.source.Recommendations(ctx, userID, s.limit)
	if err != nil {
		if len(s.fallback) > 0 {
			s.logger.Warnf("recommendations fetch failed for user %d, using fallback deck: %v", userID, err)
			clubs = s.fallback
		} else {
			s.mu.Lock()
			// A failed refresh must not present an error over a deck that
			// still holds swipeable cards.
			if len(s.clubs) == 0 {
				s.state = dto.DeckFailed
			}
			s.mu.Unlock()
			return fmt.Errorf("load recommendations: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, club := range clubs {
		if _, ok := s.seen[club.ID]; ok {
			continue
		}
		s.seen[club.ID] = struct{}{}
		s.clubs = append(s.clubs, club)
	}

	if len(s.clubs) == 0 {
		s.state = dto.DeckEmpty
	} else {
		s.state = dto.DeckReady
	}
	return nil
}

// Window returns up to k clubs from the front of the deck in back-to-front
// render order: the last element is the top card, so callers can render with
// increasing z-order.
func (s *DeckService) Window(k int) []entity.Club {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k > len(s.clubs) {
		k = len(s.clubs)
	}
	window := make([]entity.Club, k)
	for i := 0; i < k; i++ {
		window[i] = s.clubs[k-1-i]
	}
	return window
}

// Commit removes a club from the deck, preserving the relative order of the
// survivors. Committing an id that is not present is a no-op, which guards
// against the pointer-driven and button-driven paths double-firing.
func (s *DeckService) Commit(clubID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, club := range s.clubs {
		if club.ID == clubID {
			s.clubs = append(s.clubs[:i], s.clubs[i+1:]...)
			if len(s.clubs) == 0 && s.state == dto.DeckReady {
				s.state = dto.DeckEmpty
			}
			return true
		}
	}
	return false
}

func (s *DeckService) State() dto.DeckState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *DeckService) UserID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *DeckService) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clubs)
}
