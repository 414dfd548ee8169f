package location

import (
	"context"
	"errors"
	"time"

	"sos-api/src/metrics"
	"sos-api/src/model"
	"sos-api/src/serializer"

	"gorm.io/gorm"
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

func (s *Service) Update(ctx context.Context, actingUserId uint, latitude, longitude float64) (*model.Location, error) {
	location, err := s.repo.Upsert(ctx, actingUserId, latitude, longitude, s.now())
	if err != nil {
		return nil, err
	}
	metrics.LocationUpdates.Inc()
	return location, nil
}

// Get returns nil without error when the user never reported a location.
func (s *Service) Get(ctx context.Context, actingUserId uint) (*model.Location, error) {
	location, err := s.repo.GetByUser(ctx, actingUserId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return location, err
}

func (s *Service) Serialize(ctx context.Context, actingUserId uint, location model.Location) (serializer.LocationDTO, error) {
	rc, err := serializer.NewReadContext(actingUserId, s.now()).Load(ctx, s.db, location.UserId)
	if err != nil {
		return serializer.LocationDTO{}, err
	}
	return serializer.Location(rc, location), nil
}
