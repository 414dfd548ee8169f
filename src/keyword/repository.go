package keyword

import (
	"context"

	"sos-api/src/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, keyword *model.Keyword) error
	ListByOwner(ctx context.Context, userId uint) ([]model.Keyword, error)
	GetByOwner(ctx context.Context, id, userId uint) (*model.Keyword, error)
	UpdateWord(ctx context.Context, id, userId uint, word string) (bool, error)
	DeleteByOwner(ctx context.Context, id, userId uint) (bool, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, keyword *model.Keyword) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(keyword).Error
}

func (r *gormRepository) ListByOwner(ctx context.Context, userId uint) ([]model.Keyword, error) {
	var keywords []model.Keyword
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("id").Find(&keywords).Error
	return keywords, err
}

func (r *gormRepository) GetByOwner(ctx context.Context, id, userId uint) (*model.Keyword, error) {
	var keyword model.Keyword
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userId).First(&keyword).Error
	return &keyword, err
}

func (r *gormRepository) UpdateWord(ctx context.Context, id, userId uint, word string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Keyword{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("word", word)
	return result.RowsAffected > 0, result.Error
}

func (r *gormRepository) DeleteByOwner(ctx context.Context, id, userId uint) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userId).Delete(&model.Keyword{})
	return result.RowsAffected > 0, result.Error
}
