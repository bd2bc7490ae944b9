package static

import "github.com/campusclubs/clubdeck/internal/domain/entity"

// FallbackClubs is the demo deck used when the recommendation source is
// unreachable, so a fresh install still has something to swipe through.
func FallbackClubs() []entity.Club {
	return []entity.Club{
		{
			ID:          1,
			Name:        "AI Club",
			Description: "Weekly meetups to talk about AI and ML projects.",
			Tags:        "AI,Programming,Tech",
			MeetingTime: "Tue 18:00",
			Location:    "Room 101",
		},
		{
			ID:          2,
			Name:        "Music Jam Session",
			Description: "Casual music sessions for all levels.",
			Tags:        "Music,Performance",
			MeetingTime: "Fri 19:00",
			Location:    "Studio 3",
		},
		{
			ID:          3,
			Name:        "Board Game Night",
			Description: "Play board games and meet new friends.",
			Tags:        "Games,Social",
			MeetingTime: "Wed 20:00",
			Location:    "Student Lounge",
		},
	}
}
