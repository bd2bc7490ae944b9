package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
	"github.com/campusclubs/clubdeck/internal/domain/utils/visibility"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// UpcomingEvents returns a club's future events visible to the viewer,
// soonest first. An unknown viewer still sees public events.
func (s *EventRepository) UpcomingEvents(ctx context.Context, clubID, viewerID int64) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND start_time >= ?", clubID, time.Now()).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	var viewerDomain string
	if viewerID != 0 {
		var viewer entity.User
		err := s.db.WithContext(ctx).First(&viewer, viewerID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		viewerDomain = viewer.EmailDomain()
	}

	visible := events[:0]
	for _, event := range events {
		if visibility.EventVisible(event, viewerDomain, false) {
			visible = append(visible, event)
		}
	}
	return visible, nil
}
