package reward

import (
	"context"
	"errors"
	"time"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/region"
	"github.com/npesaras/clens/waterquality"
	"gorm.io/datatypes"
)

var (
	ErrInvalidPeriod = errors.New("End date must not be before start date")
)

// Multiplier boosts the exp and points civilians of a Barangay earn between
// StartDate and EndDate.
type Multiplier struct {
	internal.Base
	BarangayID       uint                  `json:"barangayId" gorm:"index;not null"`
	Interval         waterquality.Interval `json:"interval" gorm:"size:8;not null"`
	StartDate        datatypes.Date        `json:"startDate" gorm:"not null"`
	EndDate          datatypes.Date        `json:"endDate" gorm:"not null"`
	MultiplierExp    float64               `json:"multiplierExp" gorm:"not null"`
	MultiplierPoints float64               `json:"multiplierPoints" gorm:"not null"`
	Barangay         *region.Barangay      `json:"barangay,omitempty"`
}

func (Multiplier) TableName() string { return "reward_multipliers" }

type CreatePayload struct {
	BarangayID       uint                  `json:"barangayId" validate:"required,gt=0"`
	Interval         waterquality.Interval `json:"interval" validate:"required,oneof=day week month year"`
	StartDate        string                `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate          string                `json:"endDate" validate:"required,datetime=2006-01-02"`
	MultiplierExp    float64               `json:"multiplierExp" validate:"gte=0"`
	MultiplierPoints float64               `json:"multiplierPoints" validate:"gte=0"`
}

type UpdatePayload struct {
	BarangayID       *uint                  `json:"barangayId" validate:"omitempty,gt=0"`
	Interval         *waterquality.Interval `json:"interval" validate:"omitempty,oneof=day week month year"`
	StartDate        *string                `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string                `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	MultiplierExp    *float64               `json:"multiplierExp" validate:"omitempty,gte=0"`
	MultiplierPoints *float64               `json:"multiplierPoints" validate:"omitempty,gte=0"`
}

// CheckPeriod fails when end falls before start
func CheckPeriod(start datatypes.Date, end datatypes.Date) error {
	if time.Time(end).Before(time.Time(start)) {
		return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", ErrInvalidPeriod)
	}
	return nil
}

type Repository interface {
	Create(ctx context.Context, newMultiplier Multiplier) (*Multiplier, error)
	Get(ctx context.Context, id uint) (*Multiplier, error)
	List(ctx context.Context) ([]Multiplier, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Multiplier, error)
	// Delete physically removes a Multiplier
	Delete(ctx context.Context, id uint) (*Multiplier, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Multiplier, error)
	Find(ctx context.Context, id uint) (*Multiplier, error)
	List(ctx context.Context) ([]Multiplier, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Multiplier, error)
	Delete(ctx context.Context, id uint) (*Multiplier, error)
}
