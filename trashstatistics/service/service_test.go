package service

import (
	"context"
	"testing"

	"github.com/npesaras/clens/address"
	addressGorm "github.com/npesaras/clens/address/repository/gorm"
	"github.com/npesaras/clens/civilian"
	civilianGorm "github.com/npesaras/clens/civilian/repository/gorm"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/npesaras/clens/trashstatistics"
	trashstatisticsGorm "github.com/npesaras/clens/trashstatistics/repository/gorm"
	"github.com/npesaras/clens/user"
	userGorm "github.com/npesaras/clens/user/repository/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrashStatisticsService(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	rr := testutil.SeedRegions(t, db)
	cr := civilianGorm.NewGormCivilianRepository(db)
	testService := NewTrashStatisticsService(trashstatisticsGorm.NewGormTrashStatisticsRepository(db), cr, rr)

	owner, err := userGorm.NewGormUserRepository(db).Create(ctx, user.User{
		UserType:   user.Civilian,
		Username:   "pedropenduko",
		Email:      "pedro@clens.ph",
		FirstName:  "Pedro",
		MiddleName: "Reyes",
		LastName:   "Penduko",
		Password:   "hashed",
	})
	require.NoError(t, err)
	home, err := addressGorm.NewGormAddressRepository(db).Create(ctx, address.Address{Street: "Quezon Ave", ProvinceID: 1, CityID: 1, BarangayID: 1})
	require.NoError(t, err)
	resident, err := cr.Create(ctx, civilian.Civilian{UserID: owner.ID, AddressID: home.ID, Level: 1})
	require.NoError(t, err)

	t.Run("Civilian entity", func(t *testing.T) {
		created, err := testService.Create(ctx, trashstatistics.CreatePayload{
			Type:            trashstatistics.TypeCivilian,
			EntityID:        resident.ID,
			LeaderboardRank: 1,
			TotalDisposed:   12.5,
		})
		require.NoError(t, err)
		assert.Equal(t, resident.ID, created.EntityID)
	})

	t.Run("Barangay entity", func(t *testing.T) {
		created, err := testService.Create(ctx, trashstatistics.CreatePayload{
			Type:            trashstatistics.TypeBarangay,
			EntityID:        3,
			LeaderboardRank: 2,
		})
		require.NoError(t, err)

		// Switching type re-resolves the existing id against the other table
		kind := trashstatistics.TypeCivilian
		_, err = testService.Update(ctx, created.ID, trashstatistics.UpdatePayload{Type: &kind})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.ErrorContains(t, err, "Civilian with id 3 not found")

		rank := 5
		updated, err := testService.Update(ctx, created.ID, trashstatistics.UpdatePayload{LeaderboardRank: &rank})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.LeaderboardRank)
		assert.Equal(t, trashstatistics.TypeBarangay, updated.Type)
	})

	t.Run("Unknown entity", func(t *testing.T) {
		_, err := testService.Create(ctx, trashstatistics.CreatePayload{
			Type:            trashstatistics.TypeBarangay,
			EntityID:        42,
			LeaderboardRank: 1,
		})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.ErrorContains(t, err, "Barangay with id 42 not found")
	})

	t.Run("Rank is required", func(t *testing.T) {
		_, err := testService.Create(ctx, trashstatistics.CreatePayload{Type: trashstatistics.TypeBarangay, EntityID: 1})
		assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
	})
}
