package model

import "time"

type Location struct {
	Id        uint    `gorm:"primaryKey;autoIncrement"`
	UserId    uint    `gorm:"not null;uniqueIndex"`
	User      User    `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	UpdatedAt time.Time
}
