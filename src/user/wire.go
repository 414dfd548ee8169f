package user

import "gorm.io/gorm"

func Build(db *gorm.DB) *Handler {
	repo := NewRepository(db)
	service := NewService(db, repo)
	return NewHandler(service)
}
