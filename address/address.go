package address

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/region"
)

// Address is a street located in a barangay. The province, city and barangay
// must form a chain: the city belongs to the province and the barangay to the city.
type Address struct {
	internal.BaseSoftDelete
	Street     string           `json:"street" gorm:"size:255;not null"`
	ProvinceID uint             `json:"provinceId" gorm:"index;not null"`
	CityID     uint             `json:"cityId" gorm:"index;not null"`
	BarangayID uint             `json:"barangayId" gorm:"index;not null"`
	Province   *region.Province `json:"province,omitempty"`
	City       *region.City     `json:"city,omitempty"`
	Barangay   *region.Barangay `json:"barangay,omitempty"`
}

func (Address) TableName() string { return "address" }

type CreatePayload struct {
	Street     string `json:"street" validate:"required,min=1,max=255"`
	ProvinceID uint   `json:"provinceId" validate:"required,gt=0"`
	CityID     uint   `json:"cityId" validate:"required,gt=0"`
	BarangayID uint   `json:"barangayId" validate:"required,gt=0"`
}

type UpdatePayload struct {
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	ProvinceID *uint   `json:"provinceId" validate:"omitempty,gt=0"`
	CityID     *uint   `json:"cityId" validate:"omitempty,gt=0"`
	BarangayID *uint   `json:"barangayId" validate:"omitempty,gt=0"`
}

// ChangesRegion reports whether any part of the province, city, barangay chain was provided
func (p UpdatePayload) ChangesRegion() bool {
	return p.ProvinceID != nil || p.CityID != nil || p.BarangayID != nil
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Street != nil {
		fields["street"] = *p.Street
	}
	if p.ProvinceID != nil {
		fields["province_id"] = *p.ProvinceID
	}
	if p.CityID != nil {
		fields["city_id"] = *p.CityID
	}
	if p.BarangayID != nil {
		fields["barangay_id"] = *p.BarangayID
	}
	return fields
}

type Repository interface {
	// Create creates a new Address
	Create(ctx context.Context, newAddress Address) (*Address, error)
	// Get retrieves an active Address given its id
	Get(ctx context.Context, id uint) (*Address, error)
	// List retrieves every active Address
	List(ctx context.Context) ([]Address, error)
	// Update applies fields to an active Address
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Address, error)
	// Delete soft deletes an Address
	Delete(ctx context.Context, id uint) (*Address, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Address, error)
	Find(ctx context.Context, id uint) (*Address, error)
	List(ctx context.Context) ([]Address, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Address, error)
	Delete(ctx context.Context, id uint) (*Address, error)
}
