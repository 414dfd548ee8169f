package model

type Keyword struct {
	Id     uint   `gorm:"primaryKey;autoIncrement"`
	UserId uint   `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Word   string `gorm:"size:255;not null"`
}
