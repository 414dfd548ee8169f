package database

import (
	"sos-api/src/model"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.Location{},
		&model.SosSignal{},
		&model.FavoriteContact{},
		&model.Keyword{},
		&model.OutboxEvent{},
	)
}
