package location

import (
	"context"
	"time"

	"sos-api/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, userId uint, latitude, longitude float64, at time.Time) (*model.Location, error)
	GetByUser(ctx context.Context, userId uint) (*model.Location, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// Upsert writes the user's single location row with INSERT ... ON CONFLICT (user_id).
func (r *gormRepository) Upsert(ctx context.Context, userId uint, latitude, longitude float64, at time.Time) (*model.Location, error) {
	location := model.Location{
		UserId:    userId,
		Latitude:  latitude,
		Longitude: longitude,
		UpdatedAt: at,
	}

	var stored model.Location
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "updated_at"}),
			}).
			Create(&location).Error
		if err != nil {
			return err
		}
		return tx.Preload("User").Where("user_id = ?", userId).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *gormRepository) GetByUser(ctx context.Context, userId uint) (*model.Location, error) {
	var location model.Location
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userId).First(&location).Error
	return &location, err
}
