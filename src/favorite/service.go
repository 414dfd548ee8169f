package favorite

import (
	"context"
	"errors"
	"fmt"
	"time"

	reasoncodes "sos-api/pkg/reason_codes"
	"sos-api/src/apierror"
	"sos-api/src/model"
	"sos-api/src/serializer"

	"gorm.io/gorm"
)

const (
	msgSelfFavorite  = "Нельзя добавить самого себя в избранное."
	msgAlreadyExists = "Этот пользователь уже добавлен в избранное."
)

type Service struct {
	db   *gorm.DB
	repo Repository
	now  func() time.Time
}

func NewService(db *gorm.DB, repo Repository) *Service {
	return &Service{
		db:   db,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Add bookmarks contactId for the acting user. No accepted contact is required.
func (s *Service) Add(ctx context.Context, actingUserId, contactId uint) (*model.FavoriteContact, error) {
	var favorite model.FavoriteContact

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.UserExists(ctx, contactId)
		if err != nil {
			return fmt.Errorf("lookup contact: %w", err)
		}
		if !exists {
			return apierror.FieldError(reasoncodes.ErrValidation, "contact_id",
				fmt.Sprintf("Недопустимый первичный ключ \"%d\" - объект не существует.", contactId))
		}

		if contactId == actingUserId {
			return apierror.FieldError(reasoncodes.ErrInvalidOperation, "detail", msgSelfFavorite)
		}

		exists, err = repo.Exists(ctx, actingUserId, contactId)
		if err != nil {
			return fmt.Errorf("check favorite: %w", err)
		}
		if exists {
			return favoriteConflict()
		}

		favorite = model.FavoriteContact{UserId: actingUserId, ContactId: contactId}
		if err := repo.Create(ctx, &favorite); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return favoriteConflict()
			}
			return fmt.Errorf("create favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, actingUserId, favorite.Id)
}

func favoriteConflict() error {
	return apierror.FieldError(reasoncodes.ErrConflict, "detail", msgAlreadyExists)
}

func (s *Service) List(ctx context.Context, actingUserId uint) ([]model.FavoriteContact, error) {
	return s.repo.ListByOwner(ctx, actingUserId)
}

func (s *Service) Get(ctx context.Context, actingUserId, id uint) (*model.FavoriteContact, error) {
	favorite, err := s.repo.GetByOwner(ctx, id, actingUserId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound()
	}
	return favorite, err
}

func (s *Service) Remove(ctx context.Context, actingUserId, id uint) error {
	deleted, err := s.repo.DeleteByOwner(ctx, id, actingUserId)
	if err != nil {
		return err
	}
	if !deleted {
		return apierror.NotFound()
	}
	return nil
}

func (s *Service) Serialize(ctx context.Context, actingUserId uint, favorites ...model.FavoriteContact) ([]serializer.FavoriteDTO, error) {
	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ContactId)
	}

	rc, err := serializer.NewReadContext(actingUserId, s.now()).Load(ctx, s.db, ids...)
	if err != nil {
		return nil, err
	}
	return serializer.Favorites(rc, favorites), nil
}
