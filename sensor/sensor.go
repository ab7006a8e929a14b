package sensor

import (
	"context"

	"github.com/npesaras/clens/region"
)

type Type string

const (
	Type1 Type = "type1"
	Type2 Type = "type2"
	Type3 Type = "type3"
)

// Sensor is a water quality monitor installed in a Barangay
type Sensor struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	ActiveStatus bool             `json:"activeStatus" gorm:"not null"`
	BarangayID   uint             `json:"barangayId" gorm:"index;not null"`
	SensorType   Type             `json:"sensorType" gorm:"size:8;not null"`
	Barangay     *region.Barangay `json:"barangay,omitempty"`
}

func (Sensor) TableName() string { return "sensor" }

type CreatePayload struct {
	ActiveStatus *bool `json:"activeStatus" validate:"required"`
	BarangayID   uint  `json:"barangayId" validate:"required,gt=0"`
	SensorType   Type  `json:"sensorType" validate:"required,oneof=type1 type2 type3"`
}

type UpdatePayload struct {
	ActiveStatus *bool `json:"activeStatus"`
	BarangayID   *uint `json:"barangayId" validate:"omitempty,gt=0"`
	SensorType   *Type `json:"sensorType" validate:"omitempty,oneof=type1 type2 type3"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.ActiveStatus != nil {
		fields["active_status"] = *p.ActiveStatus
	}
	if p.BarangayID != nil {
		fields["barangay_id"] = *p.BarangayID
	}
	if p.SensorType != nil {
		fields["sensor_type"] = *p.SensorType
	}
	return fields
}

type Repository interface {
	Create(ctx context.Context, newSensor Sensor) (*Sensor, error)
	Get(ctx context.Context, id uint) (*Sensor, error)
	List(ctx context.Context) ([]Sensor, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Sensor, error)
	// Delete physically removes a Sensor. Sensors that still have readings or
	// statistics cannot be deleted.
	Delete(ctx context.Context, id uint) (*Sensor, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Sensor, error)
	Find(ctx context.Context, id uint) (*Sensor, error)
	List(ctx context.Context) ([]Sensor, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Sensor, error)
	Delete(ctx context.Context, id uint) (*Sensor, error)
}
