package user

import (
	"context"
	"errors"
	"time"

	"sos-api/src/model"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, user *model.User) error
	GetById(ctx context.Context, id uint) (*model.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	IdentifierExists(ctx context.Context, identifier string) (bool, error)
	EmailOrPhoneTaken(ctx context.Context, email, phone string) (emailTaken bool, phoneTaken bool, err error)
	UpdatePresence(ctx context.Context, id uint, isOnline bool, lastSeen time.Time) error
	DeleteCascade(ctx context.Context, id uint) error
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

func (r *gormRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetById returns gorm.ErrRecordNotFound when the user does not exist.
func (r *gormRepository) GetById(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *gormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("identifier = ?", identifier).First(&user).Error
	return &user, err
}

func (r *gormRepository) IdentifierExists(ctx context.Context, identifier string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("identifier = ?", identifier).Count(&count).Error
	return count > 0, err
}

func (r *gormRepository) EmailOrPhoneTaken(ctx context.Context, email, phone string) (bool, bool, error) {
	var emailCount, phoneCount int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&emailCount).Error; err != nil {
		return false, false, err
	}
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("phone_number = ?", phone).Count(&phoneCount).Error; err != nil {
		return false, false, err
	}
	return emailCount > 0, phoneCount > 0, nil
}

// UpdatePresence writes only is_online and last_seen.
func (r *gormRepository) UpdatePresence(ctx context.Context, id uint, isOnline bool, lastSeen time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_online": isOnline, "last_seen": lastSeen})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCascade removes the user with every row that references it. The foreign keys
// cascade as well; doing it here keeps databases without enforced FKs consistent.
func (r *gormRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deletes := []*gorm.DB{
			tx.Where("from_user_id = ? OR to_user_id = ?", id, id).Delete(&model.Contact{}),
			tx.Where("user_id = ? OR contact_id = ?", id, id).Delete(&model.FavoriteContact{}),
			tx.Where("user_id = ?", id).Delete(&model.Location{}),
			tx.Where("sender_id = ?", id).Delete(&model.SosSignal{}),
			tx.Where("user_id = ?", id).Delete(&model.Keyword{}),
		}
		for _, d := range deletes {
			if d.Error != nil {
				return d.Error
			}
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
