package keyword

import (
	"context"
	"errors"

	"sos-api/src/apierror"
	"sos-api/src/model"

	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, actingUserId uint, word string) (*model.Keyword, error) {
	keyword := model.Keyword{UserId: actingUserId, Word: word}
	if err := s.repo.Create(ctx, &keyword); err != nil {
		return nil, err
	}
	return &keyword, nil
}

func (s *Service) List(ctx context.Context, actingUserId uint) ([]model.Keyword, error) {
	return s.repo.ListByOwner(ctx, actingUserId)
}

func (s *Service) Get(ctx context.Context, actingUserId, id uint) (*model.Keyword, error) {
	keyword, err := s.repo.GetByOwner(ctx, id, actingUserId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound()
	}
	return keyword, err
}

func (s *Service) Update(ctx context.Context, actingUserId, id uint, word string) (*model.Keyword, error) {
	updated, err := s.repo.UpdateWord(ctx, id, actingUserId, word)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apierror.NotFound()
	}
	return s.Get(ctx, actingUserId, id)
}

func (s *Service) Delete(ctx context.Context, actingUserId, id uint) error {
	deleted, err := s.repo.DeleteByOwner(ctx, id, actingUserId)
	if err != nil {
		return err
	}
	if !deleted {
		return apierror.NotFound()
	}
	return nil
}
