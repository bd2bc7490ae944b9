package service

import (
	"context"
	"fmt"

	"github.com/campusclubs/clubdeck/internal/domain/dto"
	"github.com/campusclubs/clubdeck/internal/ports/secondary"
	"github.com/campusclubs/clubdeck/pkg/logger"
)

// MatchService joins the user's liked clubs with each club's upcoming events
// into the flat matches list.
type MatchService struct {
	likes  secondary.MatchSource
	events secondary.EventSource
	logger *logger.Logger
}

func NewMatchService(likes secondary.MatchSource, events secondary.EventSource, lg *logger.Logger) *MatchService {
	return &MatchService{
		likes:  likes,
		events: events,
		logger: lg,
	}
}

// Aggregate returns one MatchItem per liked club, preserving the liked-clubs
// order and each club's event order. Partial results are preferred over total
// failure: a club whose events cannot be fetched still appears, with an empty
// event list.
func (s *MatchService) Aggregate(ctx context.Context, userID int64) ([]dto.MatchItem, error) {
	if userID == 0 {
		return nil, ErrNoSession
	}

	clubs, err := s.likes.LikedClubs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load liked clubs: %w", err)
	}

	items := make([]dto.MatchItem, 0, len(clubs))
	for _, club := range clubs {
		events, err := s.events.UpcomingEvents(ctx, club.ID, userID)
		if err != nil {
			s.logger.Warnf("events fetch failed for club %d: %v", club.ID, err)
			events = nil
		}

		eventDTOs := make([]dto.Event, 0, len(events))
		for _, e := range events {
			eventDTOs = append(eventDTOs, dto.NewEvent(e))
		}

		items = append(items, dto.MatchItem{
			ClubID: club.ID,
			Name:   club.Name,
			Tags:   club.TagList(),
			Events: eventDTOs,
		})
	}

	return items, nil
}
