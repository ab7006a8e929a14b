package sensordata

import (
	"context"
	"time"

	"github.com/npesaras/clens/sensor"
	"gorm.io/gorm"
)

type ConnectionMode string

const (
	Wifi ConnectionMode = "Wifi"
	Lora ConnectionMode = "lora"
)

// SensorData is a single water quality reading reported by a Sensor. Readings
// are never edited by devices so they carry no updated_at.
type SensorData struct {
	ID                     uint           `json:"id" gorm:"primaryKey"`
	SensorID               uint           `json:"sensorId" gorm:"index;not null"`
	Ph                     float64        `json:"ph" gorm:"not null"`
	Tds                    float64        `json:"tds" gorm:"not null"`
	DissolvedOxygen        float64        `json:"dissolvedOxygen" gorm:"not null"`
	Turbidity              float64        `json:"turbidity" gorm:"not null"`
	Orp                    float64        `json:"orp" gorm:"not null"`
	ElectricalConductivity float64        `json:"electricalConductivity" gorm:"not null"`
	ConnectionMode         ConnectionMode `json:"connectionMode" gorm:"size:8;not null"`
	CreatedAt              time.Time      `json:"createdAt"`
	DeletedAt              gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
	Sensor                 *sensor.Sensor `json:"sensor,omitempty"`
}

func (SensorData) TableName() string { return "sensor_data" }

type CreatePayload struct {
	SensorID               uint           `json:"sensorId" validate:"required,gt=0"`
	Ph                     float64        `json:"ph" validate:"gte=0"`
	Tds                    float64        `json:"tds" validate:"gte=0"`
	DissolvedOxygen        float64        `json:"dissolvedOxygen" validate:"gte=0"`
	Turbidity              float64        `json:"turbidity" validate:"gte=0"`
	Orp                    *float64       `json:"orp" validate:"required"`
	ElectricalConductivity float64        `json:"electricalConductivity" validate:"gte=0"`
	ConnectionMode         ConnectionMode `json:"connectionMode" validate:"required,oneof=Wifi lora"`
}

type UpdatePayload struct {
	SensorID               *uint           `json:"sensorId" validate:"omitempty,gt=0"`
	Ph                     *float64        `json:"ph" validate:"omitempty,gte=0"`
	Tds                    *float64        `json:"tds" validate:"omitempty,gte=0"`
	DissolvedOxygen        *float64        `json:"dissolvedOxygen" validate:"omitempty,gte=0"`
	Turbidity              *float64        `json:"turbidity" validate:"omitempty,gte=0"`
	Orp                    *float64        `json:"orp"`
	ElectricalConductivity *float64        `json:"electricalConductivity" validate:"omitempty,gte=0"`
	ConnectionMode         *ConnectionMode `json:"connectionMode" validate:"omitempty,oneof=Wifi lora"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.SensorID != nil {
		fields["sensor_id"] = *p.SensorID
	}
	if p.Ph != nil {
		fields["ph"] = *p.Ph
	}
	if p.Tds != nil {
		fields["tds"] = *p.Tds
	}
	if p.DissolvedOxygen != nil {
		fields["dissolved_oxygen"] = *p.DissolvedOxygen
	}
	if p.Turbidity != nil {
		fields["turbidity"] = *p.Turbidity
	}
	if p.Orp != nil {
		fields["orp"] = *p.Orp
	}
	if p.ElectricalConductivity != nil {
		fields["electrical_conductivity"] = *p.ElectricalConductivity
	}
	if p.ConnectionMode != nil {
		fields["connection_mode"] = *p.ConnectionMode
	}
	return fields
}

type Repository interface {
	Create(ctx context.Context, newReading SensorData) (*SensorData, error)
	Get(ctx context.Context, id uint) (*SensorData, error)
	List(ctx context.Context) ([]SensorData, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*SensorData, error)
	Delete(ctx context.Context, id uint) (*SensorData, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*SensorData, error)
	Find(ctx context.Context, id uint) (*SensorData, error)
	List(ctx context.Context) ([]SensorData, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*SensorData, error)
	Delete(ctx context.Context, id uint) (*SensorData, error)
}
