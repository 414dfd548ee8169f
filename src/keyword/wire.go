package keyword

import "gorm.io/gorm"

func Build(db *gorm.DB) *Handler {
	return NewHandler(NewService(NewRepository(db)))
}
