package entity

import (
	"strings"
	"time"
)

type Club struct {
	ID          int64     `json:"club_id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	// Tags - comma-joined tag string, e.g. "AI,Programming,Tech"
	Tags string `json:"tags"`
	// MeetingTime - free-form schedule string, e.g. "Tue 18:00"
	MeetingTime string `json:"meeting_time"`
	Location    string `json:"location"`
}

// TagList splits the comma-joined tag string, trimming whitespace and
// dropping empty entries. An absent tag string yields an empty list.
func (c Club) TagList() []string {
	if c.Tags == "" {
		return []string{}
	}
	parts := strings.Split(c.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
