package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	reasoncodes "sos-api/pkg/reason_codes"
	"sos-api/src/apierror"
	"sos-api/src/metrics"
	"sos-api/src/model"
	"sos-api/src/outbox"
	"sos-api/src/serializer"
	"sos-api/src/user"

	"gorm.io/gorm"
)

const (
	msgUnknownIdentifier = "Пользователь с таким идентификатором не найден."
	msgSelfRequest       = "Нельзя добавить самого себя."
	msgPairExists        = "Контакт уже существует или заявка уже отправлена."
	msgAlreadyAccepted   = "Уже подтверждено."
	msgCancelAccepted    = "Нельзя отменить — уже принято."
)

type Service struct {
	db     *gorm.DB
	repo   Repository
	users  user.Repository
	outbox outbox.OutboxRepository
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, users user.Repository, outboxRepo outbox.OutboxRepository) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		users:  users,
		outbox: outboxRepo,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Request sends a contact request from the acting user to the owner of identifier.
// Only one row may exist per unordered pair, whatever its state.
func (s *Service) Request(ctx context.Context, actingUserId uint, identifier string) (*model.Contact, error) {
	var contact model.Contact

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		target, err := s.users.WithTx(tx).GetByIdentifier(ctx, identifier)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.FieldError(reasoncodes.ErrNotFound, "identifier", msgUnknownIdentifier)
		}
		if err != nil {
			return fmt.Errorf("lookup identifier: %w", err)
		}

		if target.Id == actingUserId {
			return apierror.FieldError(reasoncodes.ErrInvalidOperation, "identifier", msgSelfRequest)
		}

		repo := s.repo.WithTx(tx)
		exists, err := repo.PairExists(ctx, actingUserId, target.Id)
		if err != nil {
			return fmt.Errorf("check pair: %w", err)
		}
		if exists {
			return pairConflict()
		}

		contact = model.NewContact(actingUserId, target.Id)
		if err := repo.Create(ctx, &contact); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return pairConflict()
			}
			return fmt.Errorf("create contact: %w", err)
		}

		_, err = s.outbox.WithTx(tx).NewEvent(ctx, outbox.EventContactRequested, contact.Id, outbox.ContactEventPayload{
			ContactId:  contact.Id,
			FromUserId: contact.FromUserId,
			ToUserId:   contact.ToUserId,
		})
		return err
	})
	if err != nil {
		metrics.ContactRequests.WithLabelValues(resultLabel(err)).Inc()
		return nil, err
	}

	metrics.ContactRequests.WithLabelValues("created").Inc()
	return s.load(ctx, contact.Id)
}

func pairConflict() error {
	return apierror.FieldError(reasoncodes.ErrConflict, "identifier", msgPairExists)
}

func resultLabel(err error) string {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return string(apiErr.Reason)
	}
	return "error"
}

// Accept is only visible to the recipient of the request.
func (s *Service) Accept(ctx context.Context, actingUserId, contactId uint) (*model.Contact, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		contact, err := repo.LockIncoming(ctx, contactId, actingUserId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound()
		}
		if err != nil {
			return fmt.Errorf("lock contact: %w", err)
		}

		if contact.IsAccepted {
			return apierror.Detail(reasoncodes.ErrAlreadyDone, msgAlreadyAccepted)
		}

		if err := repo.MarkAccepted(ctx, contact.Id); err != nil {
			return fmt.Errorf("accept contact: %w", err)
		}

		_, err = s.outbox.WithTx(tx).NewEvent(ctx, outbox.EventContactAccepted, contact.Id, outbox.ContactEventPayload{
			ContactId:  contact.Id,
			FromUserId: contact.FromUserId,
			ToUserId:   contact.ToUserId,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.load(ctx, contactId)
}

// Cancel withdraws a pending request; only its sender sees it.
func (s *Service) Cancel(ctx context.Context, actingUserId, contactId uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		contact, err := repo.LockOutgoing(ctx, contactId, actingUserId)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound()
		}
		if err != nil {
			return fmt.Errorf("lock contact: %w", err)
		}

		if contact.IsAccepted {
			return apierror.Detail(reasoncodes.ErrInvalidOperation, msgCancelAccepted)
		}

		return repo.Delete(ctx, contact.Id)
	})
}

func (s *Service) ListConfirmed(ctx context.Context, actingUserId uint) ([]model.Contact, error) {
	return s.repo.ListConfirmed(ctx, actingUserId)
}

func (s *Service) GetConfirmed(ctx context.Context, actingUserId, contactId uint) (*model.Contact, error) {
	contact, err := s.repo.GetConfirmed(ctx, contactId, actingUserId)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound()
	}
	return contact, err
}

func (s *Service) ListIncoming(ctx context.Context, actingUserId uint) ([]model.Contact, error) {
	return s.repo.ListIncomingPending(ctx, actingUserId)
}

func (s *Service) ListOutgoing(ctx context.Context, actingUserId uint) ([]model.Contact, error) {
	return s.repo.ListOutgoingPending(ctx, actingUserId)
}

// Serialize renders contacts for the acting user with locations and favorites prefetched.
func (s *Service) Serialize(ctx context.Context, actingUserId uint, contacts ...model.Contact) ([]serializer.ContactDTO, error) {
	ids := make([]uint, 0, 2*len(contacts))
	for _, c := range contacts {
		ids = append(ids, c.FromUserId, c.ToUserId)
	}

	rc, err := serializer.NewReadContext(actingUserId, s.now()).Load(ctx, s.db, ids...)
	if err != nil {
		return nil, err
	}
	return serializer.Contacts(rc, contacts), nil
}

func (s *Service) load(ctx context.Context, id uint) (*model.Contact, error) {
	contact, err := s.repo.GetById(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload contact: %w", err)
	}
	return contact, nil
}
