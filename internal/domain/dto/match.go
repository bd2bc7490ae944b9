package dto

import (
	"time"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// Event is the public event shape shown in the matches view. Visibility
// internals are deliberately not included.
type Event struct {
	ID          int64     `json:"id"`
	ClubID      int64     `json:"club_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	IsOnline    bool      `json:"is_online"`
	JoinLink    string    `json:"join_link"`
	Capacity    int       `json:"capacity"`
}

func NewEvent(e entity.Event) Event {
	return Event{
		ID:          e.ID,
		ClubID:      e.ClubID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Location:    e.Location,
		IsOnline:    e.IsOnline,
		JoinLink:    e.JoinLink,
		Capacity:    e.Capacity,
	}
}

// MatchItem is one liked club together with its upcoming events. Derived and
// read-only: rebuilt on every aggregation, never persisted client-side.
type MatchItem struct {
	ClubID int64    `json:"club_id"`
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	Events []Event  `json:"events"`
}
