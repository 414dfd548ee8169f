package model

import "time"

// Contact is a directed request between two users. PairLowId/PairHighId hold the
// normalized unordered pair so the unique index covers both directions.
type Contact struct {
	Id         uint `gorm:"primaryKey;autoIncrement"`
	FromUserId uint `gorm:"not null;index"`
	FromUser   User `gorm:"foreignKey:FromUserId;constraint:OnDelete:CASCADE"`
	ToUserId   uint `gorm:"not null;index"`
	ToUser     User `gorm:"foreignKey:ToUserId;constraint:OnDelete:CASCADE"`
	PairLowId  uint `gorm:"not null;uniqueIndex:idx_contact_pair"`
	PairHighId uint `gorm:"not null;uniqueIndex:idx_contact_pair"`
	IsAccepted bool `gorm:"not null"`
	CreatedAt  time.Time
}

func NewContact(fromUserId, toUserId uint) Contact {
	low, high := NormalizePair(fromUserId, toUserId)
	return Contact{
		FromUserId: fromUserId,
		ToUserId:   toUserId,
		PairLowId:  low,
		PairHighId: high,
	}
}

func NormalizePair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// Counterpart returns the user on the other side of the contact relative to userId.
func (c Contact) Counterpart(userId uint) uint {
	if c.FromUserId == userId {
		return c.ToUserId
	}
	return c.FromUserId
}
