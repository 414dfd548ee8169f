package sos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sos-api/src/apierror"
	"sos-api/src/metrics"
	"sos-api/src/model"
	"sos-api/src/outbox"
	"sos-api/src/serializer"

	"gorm.io/gorm"
)

type CreateInput struct {
	Latitude  float64
	Longitude float64
	IsActive  *bool
}

type Service struct {
	db     *gorm.DB
	repo   Repository
	outbox outbox.OutboxRepository
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, outboxRepo outbox.OutboxRepository) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create stores the signal and queues an sos.created event addressed to the sender's
// favorites. Delivery to those users happens outside this service.
func (s *Service) Create(ctx context.Context, actingUserId uint, in CreateInput) (*model.SosSignal, error) {
	signal := model.SosSignal{
		SenderId:  actingUserId,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if in.IsActive != nil {
		signal.IsActive = *in.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Create(ctx, &signal); err != nil {
			return fmt.Errorf("create sos signal: %w", err)
		}

		recipients, err := repo.FavoriteRecipientIds(ctx, actingUserId)
		if err != nil {
			return fmt.Errorf("resolve recipients: %w", err)
		}
		if recipients == nil {
			recipients = []uint{}
		}

		_, err = s.outbox.WithTx(tx).NewEvent(ctx, outbox.EventSosCreated, signal.Id, outbox.SosCreatedPayload{
			SosId:        signal.Id,
			SenderId:     actingUserId,
			Latitude:     signal.Latitude,
			Longitude:    signal.Longitude,
			CreatedAt:    signal.CreatedAt,
			RecipientIds: recipients,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.SosSignalsCreated.Inc()
	return s.Get(ctx, actingUserId, signal.Id)
}

func (s *Service) List(ctx context.Context, actingUserId uint) ([]model.SosSignal, error) {
	return s.repo.ListBySender(ctx, actingUserId)
}

func (s *Service) Get(ctx context.Context, actingUserId, id uint) (*model.SosSignal, error) {
	signal, err := s.repo.GetBySender(ctx, id, actingUserId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound()
	}
	return signal, err
}

func (s *Service) SetActive(ctx context.Context, actingUserId, id uint, active bool) (*model.SosSignal, error) {
	updated, err := s.repo.SetActive(ctx, id, actingUserId, active)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apierror.NotFound()
	}
	return s.Get(ctx, actingUserId, id)
}

func (s *Service) Serialize(ctx context.Context, actingUserId uint, signals ...model.SosSignal) ([]serializer.SosSignalDTO, error) {
	ids := make([]uint, 0, len(signals))
	for _, signal := range signals {
		ids = append(ids, signal.SenderId)
	}

	rc, err := serializer.NewReadContext(actingUserId, s.now()).Load(ctx, s.db, ids...)
	if err != nil {
		return nil, err
	}
	return serializer.SosSignals(rc, signals), nil
}
