package entity

import "time"

// Swipe is a single like/dislike vote. Created once per committed decision,
// never mutated and never deleted by the client; after submission the remote
// store owns the authoritative copy.
type Swipe struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ClientID  string    `json:"client_id" gorm:"uniqueIndex"`
	UserID    int64     `json:"user_id" gorm:"not null;index"`
	ClubID    int64     `json:"club_id" gorm:"not null;index"`
	Liked     bool      `json:"liked" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
