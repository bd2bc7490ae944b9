package entity

import (
	"strings"
	"time"
)

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Email     string    `json:"email" gorm:"not null;unique"`
	Name      string    `json:"name"`
	// Year - e.g. "freshman"
	Year  string `json:"year"`
	Major string `json:"major"`
	// Interests - comma-joined tag string
	Interests string `json:"interests"`
}

// EmailDomain returns the lowercased domain part of the user's email, or an
// empty string if the email is missing or malformed.
func (u User) EmailDomain() string {
	_, domain, ok := strings.Cut(u.Email, "@")
	if !ok {
		return ""
	}
	return strings.ToLower(domain)
}
