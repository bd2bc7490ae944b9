package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusclubs/clubdeck/internal/domain/entity"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

// Recommendations returns clubs the user has not swiped yet, newest first.
// Ranking proper is owned by the recommender upstream; this is its storage
// fallback shape.
func (s *ClubRepository) Recommendations(ctx context.Context, userID int64, limit int) ([]entity.Club, error) {
	swiped := s.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Select("club_id").
		Where("user_id = ?", userID)

	var clubs []entity.Club
	err := s.db.WithContext(ctx).
		Where("id NOT IN (?)", swiped).
		Order("id DESC").
		Limit(limit).
		Find(&clubs).Error
	return clubs, err
}

// LikedClubs returns the distinct clubs the user has liked, in first-liked
// order.
func (s *ClubRepository) LikedClubs(ctx context.Context, userID int64) ([]entity.Club, error) {
	type likedClub struct {
		ClubID int64 `gorm:"column:club_id"`
	}

	var liked []likedClub
	err := s.db.WithContext(ctx).
		Table("swipes").
		Select("club_id, MIN(created_at) AS first_liked_at").
		Where("user_id = ? AND liked = ?", userID, true).
		Group("club_id").
		Order("first_liked_at ASC").
		Scan(&liked).Error
	if err != nil {
		return nil, err
	}
	if len(liked) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(liked))
	for i, l := range liked {
		ids[i] = l.ClubID
	}

	var clubs []entity.Club
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&clubs).Error; err != nil {
		return nil, err
	}

	// Restore the liked order lost by the IN query.
	byID := make(map[int64]entity.Club, len(clubs))
	for _, c := range clubs {
		byID[c.ID] = c
	}
	ordered := make([]entity.Club, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}
