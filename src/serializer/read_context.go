package serializer

import (
	"context"
	"time"

	"sos-api/src/model"

	"gorm.io/gorm"
)

// ReadContext carries what the serializers need besides the rows themselves: who is
// asking, the clock, and the related rows prefetched for every user on the page.
type ReadContext struct {
	ActingUserId uint
	Now          time.Time
	Locations    map[uint]model.Location
	Favorites    map[uint]bool
}

func NewReadContext(actingUserId uint, now time.Time) ReadContext {
	return ReadContext{
		ActingUserId: actingUserId,
		Now:          now,
		Locations:    map[uint]model.Location{},
		Favorites:    map[uint]bool{},
	}
}

// Load fetches locations of userIds and which of them the acting user has favorited.
func (rc ReadContext) Load(ctx context.Context, db *gorm.DB, userIds ...uint) (ReadContext, error) {
	if len(userIds) == 0 {
		return rc, nil
	}

	var locations []model.Location
	if err := db.WithContext(ctx).Where("user_id IN ?", userIds).Find(&locations).Error; err != nil {
		return rc, err
	}
	for _, l := range locations {
		rc.Locations[l.UserId] = l
	}

	var favoriteIds []uint
	err := db.WithContext(ctx).
		Model(&model.FavoriteContact{}).
		Where("user_id = ? AND contact_id IN ?", rc.ActingUserId, userIds).
		Pluck("contact_id", &favoriteIds).Error
	if err != nil {
		return rc, err
	}
	for _, id := range favoriteIds {
		rc.Favorites[id] = true
	}

	return rc, nil
}

func (rc ReadContext) IsFavorite(userId uint) bool {
	return rc.Favorites[userId]
}
