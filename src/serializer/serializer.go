package serializer

import (
	"time"

	"sos-api/pkg/utilities"
	"sos-api/src/model"
)

type LocationSummaryDTO struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserDTO struct {
	Id              uint                `json:"id"`
	Username        string              `json:"username"`
	Email           string              `json:"email"`
	FirstName       string              `json:"first_name"`
	LastName        string              `json:"last_name"`
	PhoneNumber     string              `json:"phone_number"`
	Role            model.Role          `json:"role"`
	Avatar          *string             `json:"avatar"`
	Identifier      *string             `json:"identifier"`
	IsOnline        bool                `json:"is_online"`
	LastSeen        *time.Time          `json:"last_seen"`
	LastSeenDisplay string              `json:"last_seen_display"`
	Location        *LocationSummaryDTO `json:"location"`
}

type LocationDTO struct {
	User      UserDTO   `json:"user"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactDTO struct {
	Id         uint      `json:"id"`
	FromUser   UserDTO   `json:"from_user"`
	ToUser     UserDTO   `json:"to_user"`
	IsAccepted bool      `json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`
	IsFavorite bool      `json:"is_favorite"`
}

type FavoriteDTO struct {
	Id         uint         `json:"id"`
	Contact    UserDTO      `json:"contact"`
	Location   *LocationDTO `json:"location"`
	IsFavorite bool         `json:"is_favorite"`
}

type SosSignalDTO struct {
	Id        uint      `json:"id"`
	Sender    UserDTO   `json:"sender"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

type KeywordDTO struct {
	Id   uint   `json:"id"`
	Word string `json:"word"`
}

func User(rc ReadContext, u model.User) UserDTO {
	dto := UserDTO{
		Id:              u.Id,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		PhoneNumber:     u.PhoneNumber,
		Role:            u.Role,
		Identifier:      u.Identifier,
		IsOnline:        u.IsOnline,
		LastSeen:        u.LastSeen,
		LastSeenDisplay: LastSeenDisplay(rc.Now, u.LastSeen),
	}
	if u.Avatar != "" {
		avatar := u.Avatar
		dto.Avatar = &avatar
	}
	if loc, ok := rc.Locations[u.Id]; ok {
		dto.Location = &LocationSummaryDTO{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			UpdatedAt: loc.UpdatedAt,
		}
	}
	return dto
}

// Location expects l.User to be loaded.
func Location(rc ReadContext, l model.Location) LocationDTO {
	return LocationDTO{
		User:      User(rc, l.User),
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		UpdatedAt: l.UpdatedAt,
	}
}

// Contact marks the row as favorite when the acting user favorited the other side.
func Contact(rc ReadContext, c model.Contact) ContactDTO {
	return ContactDTO{
		Id:         c.Id,
		FromUser:   User(rc, c.FromUser),
		ToUser:     User(rc, c.ToUser),
		IsAccepted: c.IsAccepted,
		CreatedAt:  c.CreatedAt,
		IsFavorite: rc.IsFavorite(c.Counterpart(rc.ActingUserId)),
	}
}

func Contacts(rc ReadContext, contacts []model.Contact) []ContactDTO {
	return utilities.Map(contacts, func(item model.Contact) ContactDTO { return Contact(rc, item) })
}

func Favorite(rc ReadContext, f model.FavoriteContact) FavoriteDTO {
	dto := FavoriteDTO{
		Id:         f.Id,
		Contact:    User(rc, f.Contact),
		IsFavorite: rc.IsFavorite(f.ContactId),
	}
	if loc, ok := rc.Locations[f.ContactId]; ok {
		loc.User = f.Contact
		l := Location(rc, loc)
		dto.Location = &l
	}
	return dto
}

func Favorites(rc ReadContext, favorites []model.FavoriteContact) []FavoriteDTO {
	return utilities.Map(favorites, func(item model.FavoriteContact) FavoriteDTO { return Favorite(rc, item) })
}

func SosSignal(rc ReadContext, s model.SosSignal) SosSignalDTO {
	return SosSignalDTO{
		Id:        s.Id,
		Sender:    User(rc, s.Sender),
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		CreatedAt: s.CreatedAt,
		IsActive:  s.IsActive,
	}
}

func SosSignals(rc ReadContext, signals []model.SosSignal) []SosSignalDTO {
	return utilities.Map(signals, func(item model.SosSignal) SosSignalDTO { return SosSignal(rc, item) })
}

func Keyword(k model.Keyword) KeywordDTO {
	return KeywordDTO{Id: k.Id, Word: k.Word}
}

func Keywords(keywords []model.Keyword) []KeywordDTO {
	return utilities.Map(keywords, Keyword)
}
