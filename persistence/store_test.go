package persistence_test

import (
	"context"
	"testing"

	"github.com/npesaras/clens/admin"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/sensor"
	"github.com/npesaras/clens/sensordata"
	"github.com/npesaras/clens/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(username string) *user.User {
	return &user.User{
		UserType:   user.Civilian,
		Username:   username,
		Email:      username + "@clens.ph",
		FirstName:  "Juan",
		MiddleName: "Santos",
		LastName:   "Dela Cruz",
		Password:   "hashed",
	}
}

func TestStoreSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := persistence.NewStore[user.User](db, persistence.SoftDelete)

	juan, pedro := newUser("juan"), newUser("pedro")
	require.NoError(t, store.Create(ctx, juan))
	require.NoError(t, store.Create(ctx, pedro))

	deleted, err := store.Delete(ctx, persistence.ByID(juan.ID))
	require.NoError(t, err)
	require.True(t, deleted.DeletedAt.Valid)
	assert.True(t, deleted.UpdatedAt.After(juan.UpdatedAt))

	t.Run("Hidden from reads", func(t *testing.T) {
		_, err := store.Get(ctx, persistence.ByID(juan.ID))
		assert.ErrorIs(t, err, internal.ErrRecordNotFound)

		users, err := store.List(ctx, persistence.OrderByID)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "pedro", users[0].Username)
	})

	t.Run("Cannot be updated", func(t *testing.T) {
		_, err := store.Update(ctx, persistence.ByID(juan.ID), map[string]interface{}{"first_name": "Pedro"})
		assert.ErrorIs(t, err, internal.ErrRecordNotFound)
	})

	t.Run("Cannot be deleted twice", func(t *testing.T) {
		_, err := store.Delete(ctx, persistence.ByID(juan.ID))
		assert.ErrorIs(t, err, internal.ErrRecordNotFound)
	})

	t.Run("Row is kept", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Unscoped().Model(&user.User{}).Where("id = ?", juan.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestStoreUpdate(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store := persistence.NewStore[user.User](db, persistence.SoftDelete)

	juan := newUser("juan")
	require.NoError(t, store.Create(ctx, juan))

	updated, err := store.Update(ctx, persistence.ByID(juan.ID), map[string]interface{}{"first_name": "Johnny"})
	require.NoError(t, err)
	assert.Equal(t, "Johnny", updated.FirstName)
	assert.Equal(t, juan.LastName, updated.LastName)
	assert.Equal(t, juan.Email, updated.Email)
	assert.True(t, updated.UpdatedAt.After(juan.UpdatedAt))

	t.Run("Empty update still refreshes updatedAt", func(t *testing.T) {
		again, err := store.Update(ctx, persistence.ByID(juan.ID), nil)
		require.NoError(t, err)
		assert.Equal(t, "Johnny", again.FirstName)
		assert.True(t, again.UpdatedAt.After(updated.UpdatedAt))
	})

	t.Run("Unique violation", func(t *testing.T) {
		pedro := newUser("pedro")
		require.NoError(t, store.Create(ctx, pedro))

		_, err := store.Update(ctx, persistence.ByID(pedro.ID), map[string]interface{}{"username": "juan"})
		assert.ErrorIs(t, err, internal.ErrDuplicateRecord)
	})
}

func TestStoreHardDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	testutil.SeedRegions(t, db)
	sensors := persistence.NewStore[sensor.Sensor](db, persistence.HardDelete)
	readings := persistence.NewStore[sensordata.SensorData](db, persistence.SoftDelete)

	unit := &sensor.Sensor{ActiveStatus: true, BarangayID: 1, SensorType: sensor.Type1}
	require.NoError(t, sensors.Create(ctx, unit))
	idle := &sensor.Sensor{ActiveStatus: false, BarangayID: 2, SensorType: sensor.Type2}
	require.NoError(t, sensors.Create(ctx, idle))

	t.Run("Removes the row", func(t *testing.T) {
		deleted, err := sensors.Delete(ctx, persistence.ByID(idle.ID))
		require.NoError(t, err)
		assert.Equal(t, idle.ID, deleted.ID)

		var count int64
		require.NoError(t, db.Model(&sensor.Sensor{}).Where("id = ?", idle.ID).Count(&count).Error)
		assert.Zero(t, count)

		_, err = sensors.Delete(ctx, persistence.ByID(idle.ID))
		assert.ErrorIs(t, err, internal.ErrRecordNotFound)
	})

	t.Run("Referenced rows are kept", func(t *testing.T) {
		require.NoError(t, readings.Create(ctx, &sensordata.SensorData{
			SensorID:       unit.ID,
			Ph:             7.1,
			ConnectionMode: sensordata.Wifi,
		}))

		_, err := sensors.Delete(ctx, persistence.ByID(unit.ID))
		assert.ErrorIs(t, err, internal.ErrRecordInUse)

		_, err = sensors.Get(ctx, persistence.ByID(unit.ID))
		assert.NoError(t, err)
	})
}

func TestStoreActiveParent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := persistence.NewStore[user.User](db, persistence.SoftDelete)
	admins := persistence.NewStore[admin.Admin](db, persistence.SoftDelete,
		persistence.ActiveParent("user_id", "users"),
	)

	juan, pedro := newUser("juan"), newUser("pedro")
	require.NoError(t, users.Create(ctx, juan))
	require.NoError(t, users.Create(ctx, pedro))
	require.NoError(t, admins.Create(ctx, &admin.Admin{UserID: juan.ID, PrivilegeLevel: admin.Staff}))
	require.NoError(t, admins.Create(ctx, &admin.Admin{UserID: pedro.ID, PrivilegeLevel: admin.Moderator}))

	_, err := users.Delete(ctx, persistence.ByID(juan.ID))
	require.NoError(t, err)

	found, err := admins.List(ctx, persistence.OrderByID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, pedro.ID, found[0].UserID)

	_, err = admins.Get(ctx, persistence.ByColumns(map[string]interface{}{"user_id": juan.ID}))
	assert.ErrorIs(t, err, internal.ErrRecordNotFound)

	// Exists skips the view so uniqueness checks still see the row
	exists, err := admins.Exists(ctx, persistence.ByColumns(map[string]interface{}{"user_id": juan.ID}))
	require.NoError(t, err)
	assert.True(t, exists)
}
