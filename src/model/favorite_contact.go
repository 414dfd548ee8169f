package model

type FavoriteContact struct {
	Id        uint `gorm:"primaryKey;autoIncrement"`
	UserId    uint `gorm:"not null;uniqueIndex:idx_favorite_pair"`
	User      User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	ContactId uint `gorm:"not null;uniqueIndex:idx_favorite_pair;index"`
	Contact   User `gorm:"foreignKey:ContactId;constraint:OnDelete:CASCADE"`
}
