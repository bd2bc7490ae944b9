package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

type SwipeRepository struct {
	db *gorm.DB
}

func NewSwipeRepository(db *gorm.DB) *SwipeRepository {
	return &SwipeRepository{
		db: db,
	}
}

// SubmitVote stores a swipe after verifying the user and club exist. Swipes
// are history: repeated votes for the same club are kept as separate rows.
func (s *SwipeRepository) SubmitVote(ctx context.Context, swipe *entity.Swipe) (*entity.Swipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userExists int64
		if err := tx.Model(&entity.User{}).Where("id = ?", swipe.UserID).Count(&userExists).Error; err != nil {
			return err
		}
		if userExists == 0 {
			return fmt.Errorf("user with id %d not found", swipe.UserID)
		}

		var clubExists int64
		if err := tx.Model(&entity.Club{}).Where("id = ?", swipe.ClubID).Count(&clubExists).Error; err != nil {
			return err
		}
		if clubExists == 0 {
			return fmt.Errorf("club with id %d not found", swipe.ClubID)
		}

		return tx.Create(swipe).Error
	})

	return swipe, err
}
