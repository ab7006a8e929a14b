package service

import (
	"context"
	"testing"

	"github.com/npesaras/clens/address"
	addressGorm "github.com/npesaras/clens/address/repository/gorm"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) address.Service {
	t.Helper()
	db := testutil.NewDB(t)
	rr := testutil.SeedRegions(t, db)
	return NewAddressService(addressGorm.NewGormAddressRepository(db), rr)
}

func TestAddressServiceCreate(t *testing.T) {
	ctx := context.Background()
	testService := newTestService(t)

	t.Run("Valid", func(t *testing.T) {
		created, err := testService.Create(ctx, address.CreatePayload{Street: "Roxas Ave", ProvinceID: 2, CityID: 2, BarangayID: 3})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		found, err := testService.Find(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found.City)
		assert.Equal(t, "Cagayan de Oro", found.City.Name)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name    string
			payload address.CreatePayload
			code    internal.ErrorCode
			message string
		}{
			{
				name:    "Missing street",
				payload: address.CreatePayload{ProvinceID: 1, CityID: 1, BarangayID: 1},
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: street is required",
			},
			{
				name:    "Unknown province",
				payload: address.CreatePayload{Street: "Roxas Ave", ProvinceID: 9, CityID: 1, BarangayID: 1},
				code:    internal.ErrorCodeNotFound,
				message: "Province with id 9 not found",
			},
			{
				name:    "City outside province",
				payload: address.CreatePayload{Street: "Roxas Ave", ProvinceID: 1, CityID: 2, BarangayID: 3},
				code:    internal.ErrorCodeNotFound,
				message: "City with id 2 not found",
			},
			{
				name:    "Barangay outside city",
				payload: address.CreatePayload{Street: "Roxas Ave", ProvinceID: 1, CityID: 1, BarangayID: 3},
				code:    internal.ErrorCodeNotFound,
				message: "Barangay with id 3 not found",
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				_, err := testService.Create(ctx, test.payload)
				require.Error(t, err)

				var e *internal.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, test.code, e.Code())
				assert.Equal(t, test.message, e.Message())
			})
		}
	})
}

func TestAddressServiceUpdate(t *testing.T) {
	ctx := context.Background()
	testService := newTestService(t)

	created, err := testService.Create(ctx, address.CreatePayload{Street: "Quezon Ave", ProvinceID: 1, CityID: 1, BarangayID: 1})
	require.NoError(t, err)

	t.Run("Barangay within the same city", func(t *testing.T) {
		barangay := uint(2)
		updated, err := testService.Update(ctx, created.ID, address.UpdatePayload{BarangayID: &barangay})
		require.NoError(t, err)
		assert.Equal(t, barangay, updated.BarangayID)
		assert.Equal(t, "Quezon Ave", updated.Street)
	})

	t.Run("Barangay of another city", func(t *testing.T) {
		barangay := uint(3)
		_, err := testService.Update(ctx, created.ID, address.UpdatePayload{BarangayID: &barangay})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.ErrorContains(t, err, "Barangay with id 3 not found")
	})

	t.Run("Deleted address", func(t *testing.T) {
		_, err := testService.Delete(ctx, created.ID)
		require.NoError(t, err)

		street := "Aguinaldo St"
		_, err = testService.Update(ctx, created.ID, address.UpdatePayload{Street: &street})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))

		_, err = testService.Delete(ctx, created.ID)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})
}
