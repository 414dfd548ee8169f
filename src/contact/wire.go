package contact

import (
	"sos-api/src/outbox"
	"sos-api/src/user"

	"gorm.io/gorm"
)

func Build(db *gorm.DB) *Handler {
	repo := NewRepository(db)
	service := NewService(db, repo, user.NewRepository(db), outbox.NewRepo(db))
	return NewHandler(service)
}
