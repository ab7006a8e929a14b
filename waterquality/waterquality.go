package waterquality

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/sensor"
	"gorm.io/datatypes"
)

type Interval string

const (
	Day   Interval = "day"
	Week  Interval = "week"
	Month Interval = "month"
	Year  Interval = "year"
)

var (
	ErrInvalidInterval = errors.New("Interval must be one of: day, week, month, year")
	ErrKeyImmutable    = errors.New("Interval and start date cannot be changed")
)

// Valid reports whether i is a known aggregation interval
func (i Interval) Valid() bool {
	switch i {
	case Day, Week, Month, Year:
		return true
	}
	return false
}

// Key identifies a WaterQualityStatistics row
type Key struct {
	Interval  Interval
	StartDate datatypes.Date
}

// ParseKey builds a Key from its path representation
func ParseKey(interval string, startDate string) (Key, error) {
	if !Interval(interval).Valid() {
		return Key{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", ErrInvalidInterval)
	}
	date, err := internal.ParseDate("startDate", startDate)
	if err != nil {
		return Key{}, err
	}
	return Key{Interval: Interval(interval), StartDate: date}, nil
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Interval, time.Time(k.StartDate).Format(internal.DateLayout))
}

// WaterQualityStatistics aggregates the readings of a Sensor over an interval
// starting at StartDate.
type WaterQualityStatistics struct {
	Interval                  Interval       `json:"interval" gorm:"primaryKey;size:8"`
	StartDate                 datatypes.Date `json:"startDate" gorm:"primaryKey"`
	SensorID                  uint           `json:"sensorId" gorm:"index;not null"`
	AvePh                     float64        `json:"avePh" gorm:"not null"`
	AveTds                    float64        `json:"aveTds" gorm:"not null"`
	AveDissolvedOxygen        float64        `json:"aveDissolvedOxygen" gorm:"not null"`
	AveTurbidity              float64        `json:"aveTurbidity" gorm:"not null"`
	AveOrp                    float64        `json:"aveOrp" gorm:"not null"`
	AveElectricalConductivity float64        `json:"aveElectricalConductivity" gorm:"not null"`
	UpdatedAt                 time.Time      `json:"updatedAt"`
	Sensor                    *sensor.Sensor `json:"sensor,omitempty"`
}

func (WaterQualityStatistics) TableName() string { return "water_quality_statistics" }

// Key returns the composite identity of w
func (w WaterQualityStatistics) Key() Key {
	return Key{Interval: w.Interval, StartDate: w.StartDate}
}

type CreatePayload struct {
	Interval                  Interval `json:"interval" validate:"required,oneof=day week month year"`
	StartDate                 string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	SensorID                  uint     `json:"sensorId" validate:"required,gt=0"`
	AvePh                     float64  `json:"avePh" validate:"gte=0"`
	AveTds                    float64  `json:"aveTds" validate:"gte=0"`
	AveDissolvedOxygen        float64  `json:"aveDissolvedOxygen" validate:"gte=0"`
	AveTurbidity              float64  `json:"aveTurbidity" validate:"gte=0"`
	AveOrp                    *float64 `json:"aveOrp" validate:"required"`
	AveElectricalConductivity float64  `json:"aveElectricalConductivity" validate:"gte=0"`
}

// UpdatePayload accepts the key fields only to reject attempts to change them
type UpdatePayload struct {
	Interval                  *string  `json:"interval"`
	StartDate                 *string  `json:"startDate"`
	SensorID                  *uint    `json:"sensorId" validate:"omitempty,gt=0"`
	AvePh                     *float64 `json:"avePh" validate:"omitempty,gte=0"`
	AveTds                    *float64 `json:"aveTds" validate:"omitempty,gte=0"`
	AveDissolvedOxygen        *float64 `json:"aveDissolvedOxygen" validate:"omitempty,gte=0"`
	AveTurbidity              *float64 `json:"aveTurbidity" validate:"omitempty,gte=0"`
	AveOrp                    *float64 `json:"aveOrp"`
	AveElectricalConductivity *float64 `json:"aveElectricalConductivity" validate:"omitempty,gte=0"`
}

// ChangesKey reports whether p tries to move the row to another key
func (p UpdatePayload) ChangesKey(key Key) bool {
	if p.Interval != nil && Interval(*p.Interval) != key.Interval {
		return true
	}
	if p.StartDate != nil {
		date, err := internal.ParseDate("startDate", *p.StartDate)
		if err != nil || !time.Time(date).Equal(time.Time(key.StartDate)) {
			return true
		}
	}
	return false
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.SensorID != nil {
		fields["sensor_id"] = *p.SensorID
	}
	if p.AvePh != nil {
		fields["ave_ph"] = *p.AvePh
	}
	if p.AveTds != nil {
		fields["ave_tds"] = *p.AveTds
	}
	if p.AveDissolvedOxygen != nil {
		fields["ave_dissolved_oxygen"] = *p.AveDissolvedOxygen
	}
	if p.AveTurbidity != nil {
		fields["ave_turbidity"] = *p.AveTurbidity
	}
	if p.AveOrp != nil {
		fields["ave_orp"] = *p.AveOrp
	}
	if p.AveElectricalConductivity != nil {
		fields["ave_electrical_conductivity"] = *p.AveElectricalConductivity
	}
	return fields
}

type Repository interface {
	Create(ctx context.Context, newStatistics WaterQualityStatistics) (*WaterQualityStatistics, error)
	Get(ctx context.Context, key Key) (*WaterQualityStatistics, error)
	List(ctx context.Context) ([]WaterQualityStatistics, error)
	Update(ctx context.Context, key Key, fields map[string]interface{}) (*WaterQualityStatistics, error)
	// Delete physically removes the row identified by key
	Delete(ctx context.Context, key Key) (*WaterQualityStatistics, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*WaterQualityStatistics, error)
	Find(ctx context.Context, key Key) (*WaterQualityStatistics, error)
	List(ctx context.Context) ([]WaterQualityStatistics, error)
	Update(ctx context.Context, key Key, payload UpdatePayload) (*WaterQualityStatistics, error)
	Delete(ctx context.Context, key Key) (*WaterQualityStatistics, error)
}
