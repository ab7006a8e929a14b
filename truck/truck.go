package truck

import (
	"context"
	"errors"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/user"
)

var (
	ErrTruckExists = errors.New("Truck record already exists for this user")
)

// Truck is a garbage collection vehicle driven by a collector. A User drives
// at most one active Truck.
type Truck struct {
	internal.BaseSoftDelete
	PlateNumber          string     `json:"plateNumber" gorm:"size:32;not null"`
	Active               bool       `json:"active" gorm:"not null"`
	UserID               uint       `json:"userId" gorm:"not null;uniqueIndex:idx_truck_user_active,where:deleted_at IS NULL"`
	TotalCollectedVolume float64    `json:"totalCollectedVolume" gorm:"not null;default:0"`
	User                 *user.User `json:"user,omitempty"`
}

func (Truck) TableName() string { return "truck" }

type CreatePayload struct {
	PlateNumber          string  `json:"plateNumber" validate:"required,max=32"`
	Active               *bool   `json:"active" validate:"required"`
	UserID               uint    `json:"userId" validate:"required,gt=0"`
	TotalCollectedVolume float64 `json:"totalCollectedVolume" validate:"gte=0"`
}

type UpdatePayload struct {
	PlateNumber          *string  `json:"plateNumber" validate:"omitempty,min=1,max=32"`
	Active               *bool    `json:"active"`
	UserID               *uint    `json:"userId" validate:"omitempty,gt=0"`
	TotalCollectedVolume *float64 `json:"totalCollectedVolume" validate:"omitempty,gte=0"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.PlateNumber != nil {
		fields["plate_number"] = *p.PlateNumber
	}
	if p.Active != nil {
		fields["active"] = *p.Active
	}
	if p.UserID != nil {
		fields["user_id"] = *p.UserID
	}
	if p.TotalCollectedVolume != nil {
		fields["total_collected_volume"] = *p.TotalCollectedVolume
	}
	return fields
}

type Repository interface {
	Create(ctx context.Context, newTruck Truck) (*Truck, error)
	Get(ctx context.Context, id uint) (*Truck, error)
	// ExistsForUser reports whether a User already drives an active Truck
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	List(ctx context.Context) ([]Truck, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Truck, error)
	Delete(ctx context.Context, id uint) (*Truck, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Truck, error)
	Find(ctx context.Context, id uint) (*Truck, error)
	List(ctx context.Context) ([]Truck, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Truck, error)
	Delete(ctx context.Context, id uint) (*Truck, error)
}
