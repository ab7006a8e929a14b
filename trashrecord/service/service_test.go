package service

import (
	"context"
	"testing"
	"time"

	"github.com/npesaras/clens/address"
	addressGorm "github.com/npesaras/clens/address/repository/gorm"
	"github.com/npesaras/clens/civilian"
	civilianGorm "github.com/npesaras/clens/civilian/repository/gorm"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/npesaras/clens/trashrecord"
	trashrecordGorm "github.com/npesaras/clens/trashrecord/repository/gorm"
	"github.com/npesaras/clens/truck"
	truckGorm "github.com/npesaras/clens/truck/repository/gorm"
	"github.com/npesaras/clens/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

// fixture holds an active and a deleted parent of each kind
type fixture struct {
	service   trashrecord.Service
	civilians civilian.Repository
	trucks    truck.Repository
	residents []*civilian.Civilian
	fleet     []*truck.Truck
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	db := testutil.NewDB(t)
	testutil.SeedRegions(t, db)
	_, owners := testutil.SeedUsers(t, db, user.Civilian, 2)
	_, drivers := testutil.SeedUsers(t, db, user.Collector, 2)

	home, err := addressGorm.NewGormAddressRepository(db).Create(ctx, address.Address{Street: "Quezon Ave", ProvinceID: 1, CityID: 1, BarangayID: 1})
	require.NoError(t, err)

	f := &fixture{
		civilians: civilianGorm.NewGormCivilianRepository(db),
		trucks:    truckGorm.NewGormTruckRepository(db),
	}
	for i := range owners {
		resident, err := f.civilians.Create(ctx, civilian.Civilian{UserID: owners[i].ID, AddressID: home.ID, Level: 1})
		require.NoError(t, err)
		f.residents = append(f.residents, resident)

		vehicle, err := f.trucks.Create(ctx, truck.Truck{PlateNumber: "KAB 1234", Active: true, UserID: drivers[i].ID})
		require.NoError(t, err)
		f.fleet = append(f.fleet, vehicle)
	}
	_, err = f.civilians.Delete(ctx, f.residents[1].ID)
	require.NoError(t, err)
	_, err = f.trucks.Delete(ctx, f.fleet[1].ID)
	require.NoError(t, err)

	f.service = NewTrashRecordService(trashrecordGorm.NewGormTrashRecordRepository(db), f.civilians, f.trucks)
	return f
}

func (f *fixture) payload() trashrecord.CreatePayload {
	return trashrecord.CreatePayload{
		CivilianID:       f.residents[0].ID,
		Volume:           4.5,
		SegregationScore: 80,
		RecyclingScore:   60,
		WasteType:        trashrecord.Recyclable,
		Collected:        boolPtr(false),
		DateDisposed:     "2024-06-01T18:00:00+08:00",
	}
}

func assertCoded(t *testing.T, err error, code internal.ErrorCode, message string) {
	t.Helper()
	require.Error(t, err)

	var e *internal.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, code, e.Code())
	assert.Equal(t, message, e.Message())
}

func TestTrashRecordServiceCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("Uncollected", func(t *testing.T) {
		created, err := f.service.Create(ctx, f.payload())
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.Collected)
		assert.Nil(t, created.CollectorID)
		assert.Nil(t, created.DateCollected)
		assert.True(t, created.DateDisposed.Equal(time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("Collected by a truck", func(t *testing.T) {
		payload := f.payload()
		payload.Collected = boolPtr(true)
		payload.CollectorID = uintPtr(f.fleet[0].ID)
		payload.DateCollected = stringPtr("2024-06-02T07:00:00+08:00")

		created, err := f.service.Create(ctx, payload)
		require.NoError(t, err)
		require.NotNil(t, created.DateCollected)
		assert.True(t, created.DateCollected.Equal(time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)))
		assert.Equal(t, f.fleet[0].ID, *created.CollectorID)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name    string
			payload func(*trashrecord.CreatePayload)
			code    internal.ErrorCode
			message string
		}{
			{
				name:    "Missing collected flag",
				payload: func(p *trashrecord.CreatePayload) { p.Collected = nil },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: collected is required",
			},
			{
				name:    "Date without time",
				payload: func(p *trashrecord.CreatePayload) { p.DateDisposed = "2024-06-01" },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: dateDisposed must be an RFC3339 datetime",
			},
			{
				name:    "Unknown waste type",
				payload: func(p *trashrecord.CreatePayload) { p.WasteType = "metal" },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: wasteType must be one of: organic, recyclable, hazardous, non-recyclable",
			},
			{
				name:    "Unknown civilian",
				payload: func(p *trashrecord.CreatePayload) { p.CivilianID = 99 },
				code:    internal.ErrorCodeNotFound,
				message: "Civilian with id 99 not found",
			},
			{
				name:    "Deleted civilian",
				payload: func(p *trashrecord.CreatePayload) { p.CivilianID = f.residents[1].ID },
				code:    internal.ErrorCodeNotFound,
				message: "Civilian with id 2 not found",
			},
			{
				name:    "Deleted collector",
				payload: func(p *trashrecord.CreatePayload) { p.CollectorID = uintPtr(f.fleet[1].ID) },
				code:    internal.ErrorCodeNotFound,
				message: "Truck with id 2 not found",
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				payload := f.payload()
				test.payload(&payload)
				created, err := f.service.Create(ctx, payload)
				assert.Nil(t, created)
				assertCoded(t, err, test.code, test.message)
			})
		}
	})
}

func TestTrashRecordServiceUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.service.Create(ctx, f.payload())
	require.NoError(t, err)

	t.Run("Mark as collected", func(t *testing.T) {
		updated, err := f.service.Update(ctx, created.ID, trashrecord.UpdatePayload{
			Collected:     boolPtr(true),
			CollectorID:   uintPtr(f.fleet[0].ID),
			DateCollected: stringPtr("2024-06-02T09:30:00+08:00"),
		})
		require.NoError(t, err)
		assert.True(t, updated.Collected)
		require.NotNil(t, updated.DateCollected)
		assert.True(t, updated.DateCollected.Equal(time.Date(2024, time.June, 2, 1, 30, 0, 0, time.UTC)))
		require.NotNil(t, updated.CollectorID)
		assert.Equal(t, f.fleet[0].ID, *updated.CollectorID)

		assert.Equal(t, 4.5, updated.Volume)
		assert.Equal(t, 80.0, updated.SegregationScore)
		assert.Equal(t, trashrecord.Recyclable, updated.WasteType)
		assert.Equal(t, f.residents[0].ID, updated.CivilianID)
		assert.True(t, updated.DateDisposed.Equal(created.DateDisposed))
	})

	t.Run("Malformed date collected", func(t *testing.T) {
		_, err := f.service.Update(ctx, created.ID, trashrecord.UpdatePayload{DateCollected: stringPtr("2024-06-02 09:30")})
		assertCoded(t, err, internal.ErrorCodeInvalidArgument, "Validation failed: dateCollected must be an RFC3339 datetime")
	})

	t.Run("Move to a deleted civilian", func(t *testing.T) {
		_, err := f.service.Update(ctx, created.ID, trashrecord.UpdatePayload{CivilianID: uintPtr(f.residents[1].ID)})
		assertCoded(t, err, internal.ErrorCodeNotFound, "Civilian with id 2 not found")
	})

	t.Run("Move to a deleted collector", func(t *testing.T) {
		_, err := f.service.Update(ctx, created.ID, trashrecord.UpdatePayload{CollectorID: uintPtr(f.fleet[1].ID)})
		assertCoded(t, err, internal.ErrorCodeNotFound, "Truck with id 2 not found")

		found, err := f.service.Find(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found.CollectorID)
		assert.Equal(t, f.fleet[0].ID, *found.CollectorID)
	})

	t.Run("Deleted record", func(t *testing.T) {
		_, err := f.service.Delete(ctx, created.ID)
		require.NoError(t, err)

		_, err = f.service.Update(ctx, created.ID, trashrecord.UpdatePayload{Volume: func() *float64 { v := 1.0; return &v }()})
		assertCoded(t, err, internal.ErrorCodeNotFound, "Trash record with id 1 not found")
	})
}
