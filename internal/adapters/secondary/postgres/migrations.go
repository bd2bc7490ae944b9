package postgres

import "github.com/campusclubs/clubdeck/internal/domain/entity"

// Migrations lists every entity auto-migrated at startup.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Club{},
	&entity.Event{},
	&entity.Swipe{},
}
