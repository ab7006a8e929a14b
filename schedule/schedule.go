package schedule

import (
	"context"

	"github.com/npesaras/clens/region"
	"gorm.io/datatypes"
)

// Schedule is a planned garbage collection in a Barangay
type Schedule struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	BarangayID     uint             `json:"barangayId" gorm:"index;not null"`
	CollectionDate datatypes.Date   `json:"collectionDate" gorm:"not null"`
	CollectionTime datatypes.Time   `json:"collectionTime" gorm:"not null"`
	Barangay       *region.Barangay `json:"barangay,omitempty"`
}

func (Schedule) TableName() string { return "collection_schedule" }

type CreatePayload struct {
	BarangayID     uint   `json:"barangayId" validate:"required,gt=0"`
	CollectionDate string `json:"collectionDate" validate:"required,datetime=2006-01-02"`
	CollectionTime string `json:"collectionTime" validate:"required,datetime=15:04:05"`
}

type UpdatePayload struct {
	BarangayID     *uint   `json:"barangayId" validate:"omitempty,gt=0"`
	CollectionDate *string `json:"collectionDate" validate:"omitempty,datetime=2006-01-02"`
	CollectionTime *string `json:"collectionTime" validate:"omitempty,datetime=15:04:05"`
}

type Repository interface {
	Create(ctx context.Context, newSchedule Schedule) (*Schedule, error)
	Get(ctx context.Context, id uint) (*Schedule, error)
	List(ctx context.Context) ([]Schedule, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Schedule, error)
	// Delete physically removes a Schedule
	Delete(ctx context.Context, id uint) (*Schedule, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Schedule, error)
	Find(ctx context.Context, id uint) (*Schedule, error)
	List(ctx context.Context) ([]Schedule, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Schedule, error)
	Delete(ctx context.Context, id uint) (*Schedule, error)
}
