package user

import (
	"context"
	"testing"
	"time"

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

func TestProvision(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns identifier and default role", func(t *testing.T) {
		service, _ := newTestService(t)
		service.intn = fixedIntn(5)

		user, err := service.Provision(ctx, ProvisionInput{
			Email: "anna@example.com", PhoneNumber: "+1", FirstName: "Anna", LastName: "Smith",
		})
		require.NoError(t, err)
		require.NotNil(t, user.Identifier)
		assert.Equal(t, "05ANSM", *user.Identifier)
		assert.Equal(t, model.RoleUser, user.Role)
	})

	t.Run("no identifier without both names", func(t *testing.T) {
		service, _ := newTestService(t)

		user, err := service.Provision(ctx, ProvisionInput{Email: "x@example.com", PhoneNumber: "+2", FirstName: "X"})
		require.NoError(t, err)
		assert.Nil(t, user.Identifier)
	})

	t.Run("retries on identifier collision", func(t *testing.T) {
		service, db := newTestService(t)
		testutils.CreateUser(t, db, "Taken", "00ANSM")

		draws := []int{0, 0, 1}
		service.intn = func(int) int {
			v := draws[0]
			draws = draws[1:]
			return v
		}

		user, err := service.Provision(ctx, ProvisionInput{
			Email: "anna@example.com", PhoneNumber: "+1", FirstName: "Anna", LastName: "Smith",
		})
		require.NoError(t, err)
		assert.Equal(t, "01ANSM", *user.Identifier)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		service, db := newTestService(t)
		testutils.CreateUser(t, db, "Taken", "00ANSM")
		service.intn = fixedIntn(0)

		_, err := service.Provision(ctx, ProvisionInput{
			Email: "anna@example.com", PhoneNumber: "+1", FirstName: "Anna", LastName: "Smith",
		})
		assert.True(t, apierror.Is(err, reasoncodes.ErrConflict))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		service, db := newTestService(t)
		existing := testutils.CreateUser(t, db, "Anna", "")

		_, err := service.Provision(ctx, ProvisionInput{Email: existing.Email, PhoneNumber: "+999"})
		require.Error(t, err)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "email", apiErr.Field)
	})
}

func TestUpdateOnlineStatus(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	fixed := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	user := testutils.CreateUser(t, db, "Anna", "11ANTE")

	updated, err := service.UpdateOnlineStatus(ctx, user.Id, true)
	require.NoError(t, err)
	assert.True(t, updated.IsOnline)
	require.NotNil(t, updated.LastSeen)
	assert.True(t, fixed.Equal(*updated.LastSeen))
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, "11ANTE", *updated.Identifier)

	_, err = service.UpdateOnlineStatus(ctx, 9999, true)
	assert.True(t, apierror.Is(err, reasoncodes.ErrNotFound))
}

func TestGetMe(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	user := testutils.CreateUser(t, db, "Anna", "")
	require.NoError(t, db.Create(&model.Location{UserId: user.Id, Latitude: 1.5, Longitude: 2.5}).Error)

	dto, err := service.GetMe(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Id, dto.Id)
	assert.Equal(t, "никогда", dto.LastSeenDisplay)
	require.NotNil(t, dto.Location)
	assert.Equal(t, 1.5, dto.Location.Latitude)
}

func TestIdentifierQR(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	withId := testutils.CreateUser(t, db, "Anna", "22ANTE")
	withoutId := testutils.CreateUser(t, db, "Bob", "")

	png, err := service.IdentifierQR(ctx, withId.Id, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = service.IdentifierQR(ctx, withoutId.Id, 0)
	assert.True(t, apierror.Is(err, reasoncodes.ErrNotFound))
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	service, db := newTestService(t)
	x := testutils.CreateUser(t, db, "X", "01XXTE")
	y := testutils.CreateUser(t, db, "Y", "02YYTE")

	contact := model.NewContact(x.Id, y.Id)
	require.NoError(t, db.Create(&contact).Error)
	require.NoError(t, db.Create(&model.FavoriteContact{UserId: y.Id, ContactId: x.Id}).Error)
	require.NoError(t, db.Create(&model.Location{UserId: x.Id, Latitude: 1, Longitude: 1}).Error)
	require.NoError(t, db.Create(&model.SosSignal{SenderId: x.Id, Latitude: 1, Longitude: 1, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Keyword{UserId: x.Id, Word: "help"}).Error)

	require.NoError(t, service.DeleteUser(ctx, x.Id))

	for _, m := range []any{&model.Contact{}, &model.FavoriteContact{}, &model.Location{}, &model.SosSignal{}, &model.Keyword{}} {
		var count int64
		require.NoError(t, db.Model(m).Count(&count).Error)
		assert.Zero(t, count, "%T rows left", m)
	}

	var remaining int64
	require.NoError(t, db.Model(&model.User{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	assert.True(t, apierror.Is(service.DeleteUser(ctx, x.Id), reasoncodes.ErrNotFound))
}
