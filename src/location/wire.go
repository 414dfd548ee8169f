package location

import "gorm.io/gorm"

func Build(db *gorm.DB) *Handler {
	return NewHandler(NewService(db, NewRepository(db)))
}
