package model

import "time"

type SosSignal struct {
	Id        uint    `gorm:"primaryKey;autoIncrement"`
	SenderId  uint    `gorm:"not null;index"`
	Sender    User    `gorm:"foreignKey:SenderId;constraint:OnDelete:CASCADE"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	CreatedAt time.Time
	IsActive  bool `gorm:"not null"`
}
