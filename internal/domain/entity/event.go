package entity

import (
	"time"

	"github.com/lib/pq"
)

type VisibilityMode string

const (
	VisibilityPublic          VisibilityMode = "public"
	VisibilityMembersOnly     VisibilityMode = "members_only"
	VisibilityDomainAllowlist VisibilityMode = "domain_allowlist"
	VisibilityDomainBlocklist VisibilityMode = "domain_blocklist"
)

type Event struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ClubID      int64     `json:"club_id" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" gorm:"not null"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	IsOnline    bool      `json:"is_online"`
	JoinLink    string    `json:"join_link"`
	Capacity    int       `json:"capacity"`
	// VisibilityMode - empty is treated as public
	VisibilityMode VisibilityMode `json:"visibility_mode"`
	// VisibleEmailDomains - allowlist or blocklist depending on VisibilityMode
	VisibleEmailDomains pq.StringArray `json:"visible_email_domains" gorm:"type:text[]"`
}
