package favorite

import (
	"context"
	"sync"
	"testing"

	reasoncodes "sos-api/pkg/reason_codes"
	"sos-api/src/apierror"
	"sos-api/src/database"
	"sos-api/src/model"
	"sos-api/src/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	db := database.NewTestDatabase(t)
	return NewService(db, NewRepository(db)), db
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	me := testutils.CreateUser(t, db, "Me", "")
	other := testutils.CreateUser(t, db, "Other", "")

	t.Run("self favorite is rejected", func(t *testing.T) {
		_, err := service.Add(ctx, me.Id, me.Id)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, reasoncodes.ErrInvalidOperation, apiErr.Reason)
		assert.Equal(t, "detail", apiErr.Field)
		assert.Equal(t, msgSelfFavorite, apiErr.Message)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Add(ctx, me.Id, 9999)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "contact_id", apiErr.Field)
	})

	t.Run("adds without an accepted contact", func(t *testing.T) {
		favorite, err := service.Add(ctx, me.Id, other.Id)
		require.NoError(t, err)
		assert.Equal(t, other.Id, favorite.Contact.Id)
	})

	t.Run("duplicate conflicts", func(t *testing.T) {
		_, err := service.Add(ctx, me.Id, other.Id)
		assert.True(t, apierror.Is(err, reasoncodes.ErrConflict))
	})

	t.Run("reverse direction is a separate favorite", func(t *testing.T) {
		_, err := service.Add(ctx, other.Id, me.Id)
		assert.NoError(t, err)
	})
}

func TestConcurrentAddKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	me := testutils.CreateUser(t, db, "Me", "")
	other := testutils.CreateUser(t, db, "Other", "")

	const callers = 5
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Add(ctx, me.Id, other.Id)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, apierror.Is(err, reasoncodes.ErrConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	require.NoError(t, db.Model(&model.FavoriteContact{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// staleExistsRepository answers Exists as if another writer had not committed yet.
type staleExistsRepository struct {
	Repository
}

func (r staleExistsRepository) WithTx(tx *gorm.DB) Repository {
	return staleExistsRepository{Repository: r.Repository.WithTx(tx)}
}

func (staleExistsRepository) Exists(context.Context, uint, uint) (bool, error) {
	return false, nil
}

func TestAddMapsDuplicateKeyToConflict(t *testing.T) {
	ctx := context.Background()
	db := database.NewTestDatabase(t)
	service := NewService(db, staleExistsRepository{Repository: NewRepository(db)})
	me := testutils.CreateUser(t, db, "Me", "")
	other := testutils.CreateUser(t, db, "Other", "")

	_, err := service.Add(ctx, me.Id, other.Id)
	require.NoError(t, err)

	_, err = service.Add(ctx, me.Id, other.Id)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, reasoncodes.ErrConflict, apiErr.Reason)
	assert.Equal(t, "detail", apiErr.Field)
	assert.Equal(t, msgAlreadyExists, apiErr.Message)

	var count int64
	require.NoError(t, db.Model(&model.FavoriteContact{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListAndRemoveAreOwnerScoped(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	me := testutils.CreateUser(t, db, "Me", "")
	other := testutils.CreateUser(t, db, "Other", "")
	third := testutils.CreateUser(t, db, "Third", "")

	mine, err := service.Add(ctx, me.Id, other.Id)
	require.NoError(t, err)
	theirs, err := service.Add(ctx, third.Id, other.Id)
	require.NoError(t, err)

	require.NoError(t, db.Create(&model.Location{UserId: other.Id, Latitude: 10, Longitude: 20}).Error)

	favorites, err := service.List(ctx, me.Id)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	dtos, err := service.Serialize(ctx, me.Id, favorites...)
	require.NoError(t, err)
	assert.True(t, dtos[0].IsFavorite)
	require.NotNil(t, dtos[0].Location)
	assert.Equal(t, other.Id, dtos[0].Location.User.Id)
	assert.Equal(t, 10.0, dtos[0].Location.Latitude)

	_, err = service.Get(ctx, me.Id, theirs.Id)
	assert.True(t, apierror.Is(err, reasoncodes.ErrNotFound))

	assert.True(t, apierror.Is(service.Remove(ctx, me.Id, theirs.Id), reasoncodes.ErrNotFound))
	require.NoError(t, service.Remove(ctx, me.Id, mine.Id))
	assert.True(t, apierror.Is(service.Remove(ctx, me.Id, mine.Id), reasoncodes.ErrNotFound))
}
