package visibility

import (
	"testing"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

func TestEventVisible(t *testing.T) {
	cases := []struct {
		name         string
		event        entity.Event
		viewerDomain string
		isMember     bool
		want         bool
	}{
		{
			name:  "missing mode means public",
			event: entity.Event{},
			want:  true,
		},
		{
			name:         "public visible to anyone",
			event:        entity.Event{VisibilityMode: entity.VisibilityPublic},
			viewerDomain: "",
			want:         true,
		},
		{
			name:     "members only hidden from non-members",
			event:    entity.Event{VisibilityMode: entity.VisibilityMembersOnly},
			isMember: false,
			want:     false,
		},
		{
			name:     "members only visible to members",
			event:    entity.Event{VisibilityMode: entity.VisibilityMembersOnly},
			isMember: true,
			want:     true,
		},
		{
			name: "allowlist admits listed domain",
			event: entity.Event{
				VisibilityMode:      entity.VisibilityDomainAllowlist,
				VisibleEmailDomains: []string{"albany.edu", "kgu.ac.jp"},
			},
			viewerDomain: "albany.edu",
			want:         true,
		},
		{
			name: "allowlist rejects other domain",
			event: entity.Event{
				VisibilityMode:      entity.VisibilityDomainAllowlist,
				VisibleEmailDomains: []string{"albany.edu"},
			},
			viewerDomain: "example.com",
			want:         false,
		},
		{
			name: "allowlist rejects anonymous viewer",
			event: entity.Event{
				VisibilityMode:      entity.VisibilityDomainAllowlist,
				VisibleEmailDomains: []string{"albany.edu"},
			},
			viewerDomain: "",
			want:         false,
		},
		{
			name: "blocklist rejects listed domain",
			event: entity.Event{
				VisibilityMode:      entity.VisibilityDomainBlocklist,
				VisibleEmailDomains: []string{"spam.example"},
			},
			viewerDomain: "spam.example",
			want:         false,
		},
		{
			name: "blocklist admits other domain",
			event: entity.Event{
				VisibilityMode:      entity.VisibilityDomainBlocklist,
				VisibleEmailDomains: []string{"spam.example"},
			},
			viewerDomain: "albany.edu",
			want:         true,
		},
		{
			name: "allowlist matching is case-insensitive",
			event: entity.Event{
				VisibilityMode:      entity.VisibilityDomainAllowlist,
				VisibleEmailDomains: []string{"Albany.EDU"},
			},
			viewerDomain: "albany.edu",
			want:         true,
		},
		{
			name:  "unknown mode hides the event",
			event: entity.Event{VisibilityMode: "secret"},
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EventVisible(tc.event, tc.viewerDomain, tc.isMember); got != tc.want {
				t.Fatalf("EventVisible = %t, want %t", got, tc.want)
			}
		})
	}
}
