package location

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/truck"
)

// Location is a reported position of a Truck. Coordinates are kept as the
// decimal strings the devices send.
type Location struct {
	internal.BaseSoftDelete
	Latitude  string       `json:"latitude" gorm:"size:32;not null"`
	Longitude string       `json:"longitude" gorm:"size:32;not null"`
	TruckID   uint         `json:"truckId" gorm:"index;not null"`
	Truck     *truck.Truck `json:"truck,omitempty"`
}

func (Location) TableName() string { return "location" }

type CreatePayload struct {
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
	TruckID   uint   `json:"truckId" validate:"required,gt=0"`
}

type UpdatePayload struct {
	Latitude  *string `json:"latitude" validate:"omitempty,latitude"`
	Longitude *string `json:"longitude" validate:"omitempty,longitude"`
	TruckID   *uint   `json:"truckId" validate:"omitempty,gt=0"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Latitude != nil {
		fields["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		fields["longitude"] = *p.Longitude
	}
	if p.TruckID != nil {
		fields["truck_id"] = *p.TruckID
	}
	return fields
}

type Repository interface {
	Create(ctx context.Context, newLocation Location) (*Location, error)
	Get(ctx context.Context, id uint) (*Location, error)
	List(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Location, error)
	Delete(ctx context.Context, id uint) (*Location, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Location, error)
	Find(ctx context.Context, id uint) (*Location, error)
	List(ctx context.Context) ([]Location, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Location, error)
	Delete(ctx context.Context, id uint) (*Location, error)
}
