package user

import (
	"context"
	"errors"
	"math/rand"
	"time"

	reasoncodes "sos-api/pkg/reason_codes"
	"sos-api/src/apierror"
	"sos-api/src/model"
	"sos-api/src/serializer"

	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const defaultQRSize = 256

type ProvisionInput struct {
	Email       string     `json:"email" binding:"required,email,max=254"`
	PhoneNumber string     `json:"phone_number" binding:"required,max=20"`
	FirstName   string     `json:"first_name" binding:"max=150"`
	LastName    string     `json:"last_name" binding:"max=150"`
	Username    string     `json:"username" binding:"max=150"`
	Role        model.Role `json:"role" binding:"omitempty,oneof=user parent child admin"`
	Avatar      string     `json:"avatar" binding:"max=255"`
}

type Service struct {
	db   *gorm.DB
	repo Repository
	now  func() time.Time
	intn func(int) int
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{
		db:   db,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		intn: rand.Intn,
	}
}

// Provision creates a user record for an account managed by the auth provider. The
// identifier is drawn until it is unused, at most maxIdentifierAttempts times.
func (s *Service) Provision(ctx context.Context, in ProvisionInput) (*model.User, error) {
	role := in.Role
	if role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return nil, apierror.FieldError(reasoncodes.ErrValidation, "role", "Некорректная роль.")
	}

	if err := s.checkUnique(ctx, in.Email, in.PhoneNumber); err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		user := &model.User{
			Email:       in.Email,
			PhoneNumber: in.PhoneNumber,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Username:    in.Username,
			Role:        role,
			Avatar:      in.Avatar,
		}

		if identifier, ok := GenerateIdentifier(in.FirstName, in.LastName, s.intn); ok {
			exists, err := s.repo.IdentifierExists(ctx, identifier)
			if err != nil {
				return nil, err
			}
			if exists {
				continue
			}
			user.Identifier = &identifier
		}

		err := s.repo.Create(ctx, user)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if uniqueErr := s.checkUnique(ctx, in.Email, in.PhoneNumber); uniqueErr != nil {
				return nil, uniqueErr
			}
			if user.Identifier != nil {
				// identifier taken concurrently, draw again
				continue
			}
			return nil, apierror.Detail(reasoncodes.ErrConflict, "Пользователь уже существует.")
		}
		if err != nil {
			return nil, err
		}
		return user, nil
	}

	return nil, apierror.Detail(reasoncodes.ErrConflict, "Не удалось сгенерировать уникальный идентификатор.")
}

func (s *Service) checkUnique(ctx context.Context, email, phone string) error {
	emailTaken, phoneTaken, err := s.repo.EmailOrPhoneTaken(ctx, email, phone)
	if err != nil {
		return err
	}
	if emailTaken {
		return apierror.FieldError(reasoncodes.ErrConflict, "email", "Пользователь с таким email уже существует.")
	}
	if phoneTaken {
		return apierror.FieldError(reasoncodes.ErrConflict, "phone_number", "Пользователь с таким phone number уже существует.")
	}
	return nil
}

func (s *Service) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.GetById(ctx, id)
	if isNotFound(err) {
		return nil, apierror.NotFound()
	}
	return user, err
}

func (s *Service) GetMe(ctx context.Context, actingUserId uint) (serializer.UserDTO, error) {
	user, err := s.GetUser(ctx, actingUserId)
	if err != nil {
		return serializer.UserDTO{}, err
	}

	rc, err := serializer.NewReadContext(actingUserId, s.now()).Load(ctx, s.db, user.Id)
	if err != nil {
		return serializer.UserDTO{}, err
	}
	return serializer.User(rc, *user), nil
}

// UpdateOnlineStatus sets is_online and stamps last_seen with the current time.
func (s *Service) UpdateOnlineStatus(ctx context.Context, actingUserId uint, isOnline bool) (*model.User, error) {
	now := s.now()
	err := s.repo.UpdatePresence(ctx, actingUserId, isOnline, now)
	if isNotFound(err) {
		return nil, apierror.NotFound()
	}
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, actingUserId)
}

// IdentifierQR renders the acting user's identifier as a PNG QR code.
func (s *Service) IdentifierQR(ctx context.Context, actingUserId uint, size int) ([]byte, error) {
	user, err := s.GetUser(ctx, actingUserId)
	if err != nil {
		return nil, err
	}
	if user.Identifier == nil {
		return nil, apierror.Detail(reasoncodes.ErrNotFound, "Идентификатор не назначен.")
	}
	if size <= 0 {
		size = defaultQRSize
	}
	return qrcode.Encode(*user.Identifier, qrcode.Medium, size)
}

func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	err := s.repo.DeleteCascade(ctx, id)
	if isNotFound(err) {
		return apierror.NotFound()
	}
	return err
}
