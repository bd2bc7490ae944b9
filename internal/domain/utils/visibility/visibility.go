package visibility

import (
	"strings"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

// EventVisible reports whether an event may be shown to a viewer with the
// given email domain. An empty mode means public; unknown modes hide the
// event. Club membership is not tracked yet, so members_only events are
// visible to members only — which is currently nobody.
func EventVisible(event entity.Event, viewerDomain string, isMember bool) bool {
	mode := event.VisibilityMode
	if mode == "" {
		mode = entity.VisibilityPublic
	}

	switch mode {
	case entity.VisibilityPublic:
		return true
	case entity.VisibilityMembersOnly:
		return isMember
	case entity.VisibilityDomainAllowlist:
		return viewerDomain != "" && domainListed(event.VisibleEmailDomains, viewerDomain)
	case entity.VisibilityDomainBlocklist:
		return viewerDomain != "" && !domainListed(event.VisibleEmailDomains, viewerDomain)
	default:
		return false
	}
}

func domainListed(domains []string, domain string) bool {
	for _, d := range domains {
		if strings.EqualFold(strings.TrimSpace(d), domain) {
			return true
		}
	}
	return false
}
