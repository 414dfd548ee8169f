package model

import "time"

type Role string

const (
	RoleUser   Role = "user"
	RoleParent Role = "parent"
	RoleChild  Role = "child"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleParent, RoleChild, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	Id          uint       `gorm:"primaryKey;autoIncrement"`
	Username    string     `gorm:"size:150"`
	Email       string     `gorm:"uniqueIndex;size:254;not null"`
	PhoneNumber string     `gorm:"uniqueIndex;size:20;not null"`
	FirstName   string     `gorm:"size:150"`
	LastName    string     `gorm:"size:150"`
	Role        Role       `gorm:"size:20;not null"`
	IsOnline    bool       `gorm:"not null"`
	LastSeen    *time.Time // nil until the first status update
	Identifier  *string    `gorm:"uniqueIndex;size:6"` // set once at creation, never reassigned
	Avatar      string     `gorm:"size:255"`
	CreatedAt   time.Time
}
