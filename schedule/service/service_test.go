package service

import (
	"context"
	"testing"
	"time"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/npesaras/clens/schedule"
	scheduleGorm "github.com/npesaras/clens/schedule/repository/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func newTestService(t *testing.T) schedule.Service {
	t.Helper()
	db := testutil.NewDB(t)
	rr := testutil.SeedRegions(t, db)
	return NewScheduleService(scheduleGorm.NewGormScheduleRepository(db), rr)
}

func TestScheduleServiceCreate(t *testing.T) {
	ctx := context.Background()
	testService := newTestService(t)

	t.Run("Valid", func(t *testing.T) {
		created, err := testService.Create(ctx, schedule.CreatePayload{BarangayID: 3, CollectionDate: "2024-06-15", CollectionTime: "06:30:00"})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, uint(3), created.BarangayID)
		assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), time.Time(created.CollectionDate))
		assert.Equal(t, "06:30:00", created.CollectionTime.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name    string
			payload schedule.CreatePayload
			code    internal.ErrorCode
			message string
		}{
			{
				name:    "Malformed date",
				payload: schedule.CreatePayload{BarangayID: 1, CollectionDate: "15/06/2024", CollectionTime: "06:30:00"},
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: collectionDate must be a date formatted as YYYY-MM-DD",
			},
			{
				name:    "Malformed time",
				payload: schedule.CreatePayload{BarangayID: 1, CollectionDate: "2024-06-15", CollectionTime: "6:30 AM"},
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: collectionTime must be a time formatted as HH:MM:SS",
			},
			{
				name:    "Unknown barangay",
				payload: schedule.CreatePayload{BarangayID: 9, CollectionDate: "2024-06-15", CollectionTime: "06:30:00"},
				code:    internal.ErrorCodeNotFound,
				message: "Barangay with id 9 not found",
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				created, err := testService.Create(ctx, test.payload)
				assert.Nil(t, created)
				require.Error(t, err)

				var e *internal.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, test.code, e.Code())
				assert.Equal(t, test.message, e.Message())
			})
		}
	})
}

func TestScheduleServiceUpdate(t *testing.T) {
	ctx := context.Background()
	testService := newTestService(t)
	created, err := testService.Create(ctx, schedule.CreatePayload{BarangayID: 1, CollectionDate: "2024-06-15", CollectionTime: "06:30:00"})
	require.NoError(t, err)

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		updated, err := testService.Update(ctx, created.ID, schedule.UpdatePayload{CollectionTime: stringPtr("07:45:00")})
		require.NoError(t, err)
		assert.Equal(t, "07:45:00", updated.CollectionTime.String())
		assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), time.Time(updated.CollectionDate).UTC())
		assert.Equal(t, uint(1), updated.BarangayID)
	})

	t.Run("Move to another barangay", func(t *testing.T) {
		barangayID := uint(2)
		updated, err := testService.Update(ctx, created.ID, schedule.UpdatePayload{BarangayID: &barangayID})
		require.NoError(t, err)
		assert.Equal(t, barangayID, updated.BarangayID)
		assert.Equal(t, "07:45:00", updated.CollectionTime.String())
	})

	t.Run("Unknown barangay", func(t *testing.T) {
		barangayID := uint(9)
		_, err := testService.Update(ctx, created.ID, schedule.UpdatePayload{BarangayID: &barangayID})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.ErrorContains(t, err, "Barangay with id 9 not found")

		found, err := testService.Find(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(2), found.BarangayID)
	})

	t.Run("Deleted schedule", func(t *testing.T) {
		_, err := testService.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = testService.Update(ctx, created.ID, schedule.UpdatePayload{CollectionTime: stringPtr("08:00:00")})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.ErrorContains(t, err, "Collection schedule with id 1 not found")
	})
}
