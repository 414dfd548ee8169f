package favorite

import (
	"context"

	"sos-api/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, favorite *model.FavoriteContact) error
	Exists(ctx context.Context, userId, contactId uint) (bool, error)
	UserExists(ctx context.Context, userId uint) (bool, error)
	ListByOwner(ctx context.Context, userId uint) ([]model.FavoriteContact, error)
	GetByOwner(ctx context.Context, id, userId uint) (*model.FavoriteContact, error)
	DeleteByOwner(ctx context.Context, id, userId uint) (bool, error)
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

func (r *gormRepository) Create(ctx context.Context, favorite *model.FavoriteContact) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error
}

func (r *gormRepository) Exists(ctx context.Context, userId, contactId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FavoriteContact{}).
		Where("user_id = ? AND contact_id = ?", userId, contactId).
		Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) UserExists(ctx context.Context, userId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userId).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) ListByOwner(ctx context.Context, userId uint) ([]model.FavoriteContact, error) {
	var favorites []model.FavoriteContact
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("user_id = ?", userId).
		Order("id").
		Find(&favorites).Error
	return favorites, err
}

func (r *gormRepository) GetByOwner(ctx context.Context, id, userId uint) (*model.FavoriteContact, error) {
	var favorite model.FavoriteContact
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Where("id = ? AND user_id = ?", id, userId).
		First(&favorite).Error
	return &favorite, err
}

func (r *gormRepository) DeleteByOwner(ctx context.Context, id, userId uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&model.FavoriteContact{})
	return result.RowsAffected > 0, result.Error
}
