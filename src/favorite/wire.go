package favorite

import "gorm.io/gorm"

func Build(db *gorm.DB) *Handler {
	repo := NewRepository(db)
	return NewHandler(NewService(db, repo))
}
