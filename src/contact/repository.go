package contact

import (
	"context"

	"sos-api/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, contact *model.Contact) error
	PairExists(ctx context.Context, a, b uint) (bool, error)
	LockIncoming(ctx context.Context, id, toUserId uint) (*model.Contact, error)
	LockOutgoing(ctx context.Context, id, fromUserId uint) (*model.Contact, error)
	MarkAccepted(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	GetById(ctx context.Context, id uint) (*model.Contact, error)
	ListConfirmed(ctx context.Context, fromUserId uint) ([]model.Contact, error)
	GetConfirmed(ctx context.Context, id, fromUserId uint) (*model.Contact, error)
	ListIncomingPending(ctx context.Context, toUserId uint) ([]model.Contact, error)
	ListOutgoingPending(ctx context.Context, fromUserId uint) ([]model.Contact, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) WithTx(tx *gorm.DB) Repository {
	return &gormRepository{db: tx}
}

func (r *gormRepository) withUsers(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("FromUser").Preload("ToUser")
}

func (r *gormRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(contact).Error
}

// PairExists checks both directions through the normalized pair columns.
func (r *gormRepository) PairExists(ctx context.Context, a, b uint) (bool, error) {
	low, high := model.NormalizePair(a, b)
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("pair_low_id = ? AND pair_high_id = ?", low, high).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) LockIncoming(ctx context.Context, id, toUserId uint) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND to_user_id = ?", id, toUserId).
		First(&contact).Error
	return &contact, err
}

func (r *gormRepository) LockOutgoing(ctx context.Context, id, fromUserId uint) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND from_user_id = ?", id, fromUserId).
		First(&contact).Error
	return &contact, err
}

func (r *gormRepository) MarkAccepted(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Contact{}).
		Where("id = ?", id).
		Update("is_accepted", true).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Contact{}, id).Error
}

func (r *gormRepository) GetById(ctx context.Context, id uint) (*model.Contact, error) {
	var contact model.Contact
	err := r.withUsers(ctx).First(&contact, id).Error
	return &contact, err
}

// ListConfirmed returns accepted contacts the user initiated; the acceptor does not see
// the row here.
func (r *gormRepository) ListConfirmed(ctx context.Context, fromUserId uint) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.withUsers(ctx).
		Where("from_user_id = ? AND is_accepted = ?", fromUserId, true).
		Order("id").
		Find(&contacts).Error
	return contacts, err
}

func (r *gormRepository) GetConfirmed(ctx context.Context, id, fromUserId uint) (*model.Contact, error) {
	var contact model.Contact
	err := r.withUsers(ctx).
		Where("id = ? AND from_user_id = ? AND is_accepted = ?", id, fromUserId, true).
		First(&contact).Error
	return &contact, err
}

func (r *gormRepository) ListIncomingPending(ctx context.Context, toUserId uint) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.withUsers(ctx).
		Where("to_user_id = ? AND is_accepted = ?", toUserId, false).
		Order("id").
		Find(&contacts).Error
	return contacts, err
}

func (r *gormRepository) ListOutgoingPending(ctx context.Context, fromUserId uint) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.withUsers(ctx).
		Where("from_user_id = ? AND is_accepted = ?", fromUserId, false).
		Order("id").
		Find(&contacts).Error
	return contacts, err
}
