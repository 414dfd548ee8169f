package sos

import (
	"sos-api/src/outbox"

	"gorm.io/gorm"
)

func Build(db *gorm.DB) *Handler {
	return NewHandler(NewService(db, NewRepository(db), outbox.NewRepo(db)))
}
