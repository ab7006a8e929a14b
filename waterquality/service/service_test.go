package service

import (
	"context"
	"testing"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/npesaras/clens/sensor"
	sensorGorm "github.com/npesaras/clens/sensor/repository/gorm"
	"github.com/npesaras/clens/waterquality"
	waterqualityGorm "github.com/npesaras/clens/waterquality/repository/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(f float64) *float64 { return &f }

func newTestService(t *testing.T) (waterquality.Service, *sensor.Sensor) {
	t.Helper()

	db := testutil.NewDB(t)
	testutil.SeedRegions(t, db)
	sr := sensorGorm.NewGormSensorRepository(db)
	unit, err := sr.Create(context.Background(), sensor.Sensor{ActiveStatus: true, BarangayID: 1, SensorType: sensor.Type1})
	require.NoError(t, err)
	return NewWaterQualityService(waterqualityGorm.NewGormWaterQualityRepository(db), sr), unit
}

func TestWaterQualityServiceCreate(t *testing.T) {
	ctx := context.Background()
	testService, unit := newTestService(t)

	payload := waterquality.CreatePayload{
		Interval:  waterquality.Day,
		StartDate: "2024-06-01",
		SensorID:  unit.ID,
		AvePh:     7.2,
		AveOrp:    float(-120),
	}
	created, err := testService.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "day/2024-06-01", created.Key().String())
	assert.Equal(t, -120.0, created.AveOrp)

	t.Run("Same interval on another day", func(t *testing.T) {
		other := payload
		other.StartDate = "2024-06-02"
		_, err := testService.Create(ctx, other)
		require.NoError(t, err)
	})

	t.Run("Another interval on the same day", func(t *testing.T) {
		other := payload
		other.Interval = waterquality.Week
		_, err := testService.Create(ctx, other)
		require.NoError(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, test := range []struct {
			name    string
			payload func(p *waterquality.CreatePayload)
			code    internal.ErrorCode
			message string
		}{
			{
				name:    "Duplicate key",
				payload: func(p *waterquality.CreatePayload) {},
				code:    internal.ErrorCodeInvalidArgument,
				message: "Water quality statistics for day/2024-06-01 already exists",
			},
			{
				name:    "Unknown interval",
				payload: func(p *waterquality.CreatePayload) { p.Interval = "hour" },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: interval must be one of: day, week, month, year",
			},
			{
				name:    "Malformed start date",
				payload: func(p *waterquality.CreatePayload) { p.StartDate = "06/01/2024" },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: startDate must be a date formatted as YYYY-MM-DD",
			},
			{
				name:    "Missing orp",
				payload: func(p *waterquality.CreatePayload) { p.AveOrp = nil },
				code:    internal.ErrorCodeInvalidArgument,
				message: "Validation failed: aveOrp is required",
			},
			{
				name:    "Unknown sensor",
				payload: func(p *waterquality.CreatePayload) { p.StartDate = "2024-07-01"; p.SensorID = 77 },
				code:    internal.ErrorCodeNotFound,
				message: "Sensor with id 77 not found",
			},
		} {
			t.Run(test.name, func(t *testing.T) {
				p := payload
				test.payload(&p)
				_, err := testService.Create(ctx, p)
				require.Error(t, err)

				var e *internal.Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, test.code, e.Code())
				assert.Equal(t, test.message, e.Message())
			})
		}
	})

	t.Run("Newest first", func(t *testing.T) {
		list, err := testService.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "day/2024-06-02", list[0].Key().String())
	})
}

func TestWaterQualityServiceUpdate(t *testing.T) {
	ctx := context.Background()
	testService, unit := newTestService(t)

	created, err := testService.Create(ctx, waterquality.CreatePayload{
		Interval:  waterquality.Month,
		StartDate: "2024-06-01",
		SensorID:  unit.ID,
		AveOrp:    float(80),
	})
	require.NoError(t, err)
	key := created.Key()

	t.Run("Measurements", func(t *testing.T) {
		updated, err := testService.Update(ctx, key, waterquality.UpdatePayload{AvePh: float(6.8)})
		require.NoError(t, err)
		assert.Equal(t, 6.8, updated.AvePh)
		assert.Equal(t, 80.0, updated.AveOrp)
	})

	t.Run("Unchanged key is accepted", func(t *testing.T) {
		interval, startDate := "month", "2024-06-01"
		_, err := testService.Update(ctx, key, waterquality.UpdatePayload{Interval: &interval, StartDate: &startDate})
		require.NoError(t, err)
	})

	t.Run("Key is immutable", func(t *testing.T) {
		startDate := "2024-07-01"
		_, err := testService.Update(ctx, key, waterquality.UpdatePayload{StartDate: &startDate})
		assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
		assert.EqualError(t, err, waterquality.ErrKeyImmutable.Error())
	})

	t.Run("Missing row", func(t *testing.T) {
		other, err := waterquality.ParseKey("year", "2024-01-01")
		require.NoError(t, err)

		_, err = testService.Update(ctx, other, waterquality.UpdatePayload{AvePh: float(7)})
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
		assert.ErrorContains(t, err, "Water quality statistics with id year/2024-01-01 not found")
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := testService.Delete(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, key.String(), deleted.Key().String())

		_, err = testService.Find(ctx, key)
		assert.Equal(t, internal.ErrorCodeNotFound, internal.CodeOf(err))
	})
}

func TestParseKey(t *testing.T) {
	key, err := waterquality.ParseKey("week", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, "week/2024-06-03", key.String())

	_, err = waterquality.ParseKey("fortnight", "2024-06-03")
	assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))

	_, err = waterquality.ParseKey("week", "2024-13-03")
	assert.Equal(t, internal.ErrorCodeInvalidArgument, internal.CodeOf(err))
}
