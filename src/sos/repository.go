package sos

import (
	"context"

	"sos-api/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, signal *model.SosSignal) error
	ListBySender(ctx context.Context, senderId uint) ([]model.SosSignal, error)
	GetBySender(ctx context.Context, id, senderId uint) (*model.SosSignal, error)
	SetActive(ctx context.Context, id, senderId uint, active bool) (bool, error)
	FavoriteRecipientIds(ctx context.Context, senderId uint) ([]uint, error)
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

func (r *gormRepository) Create(ctx context.Context, signal *model.SosSignal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(signal).Error
}

func (r *gormRepository) ListBySender(ctx context.Context, senderId uint) ([]model.SosSignal, error) {
	var signals []model.SosSignal
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("sender_id = ?", senderId).
		Order("created_at DESC").
		Order("id DESC").
		Find(&signals).Error
	return signals, err
}

func (r *gormRepository) GetBySender(ctx context.Context, id, senderId uint) (*model.SosSignal, error) {
	var signal model.SosSignal
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("id = ? AND sender_id = ?", id, senderId).
		First(&signal).Error
	return &signal, err
}

func (r *gormRepository) SetActive(ctx context.Context, id, senderId uint, active bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.SosSignal{}).
		Where("id = ? AND sender_id = ?", id, senderId).
		Update("is_active", active)
	return result.RowsAffected > 0, result.Error
}

// FavoriteRecipientIds lists the users the sender has marked as favorites.
func (r *gormRepository) FavoriteRecipientIds(ctx context.Context, senderId uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.FavoriteContact{}).
		Where("user_id = ?", senderId).
		Order("contact_id").
		Pluck("contact_id", &ids).Error
	return ids, err
}
