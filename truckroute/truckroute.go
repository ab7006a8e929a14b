package truckroute

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/npesaras/clens/truck"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

var (
	ErrInvalidRoute  = errors.New("Route must be a WKT or GeoJSON LineString or MultiLineString")
	ErrInvalidWindow = errors.New("Valid from must be before valid to")
)

// TruckRoute is the path a Truck follows during a validity window. The route
// is stored as submitted, either WKT or GeoJSON text.
type TruckRoute struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	TruckID   uint         `json:"truckId" gorm:"index;not null"`
	Route     string       `json:"route" gorm:"type:text;not null"`
	ValidFrom time.Time    `json:"validFrom" gorm:"not null"`
	ValidTo   time.Time    `json:"validTo" gorm:"not null"`
	Truck     *truck.Truck `json:"truck,omitempty"`
}

func (TruckRoute) TableName() string { return "truck_route" }

type CreatePayload struct {
	TruckID   uint   `json:"truckId" validate:"required,gt=0"`
	Route     string `json:"route" validate:"required"`
	ValidFrom string `json:"validFrom" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ValidTo   string `json:"validTo" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type UpdatePayload struct {
	TruckID   *uint   `json:"truckId" validate:"omitempty,gt=0"`
	Route     *string `json:"route" validate:"omitempty,min=1"`
	ValidFrom *string `json:"validFrom" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ValidTo   *string `json:"validTo" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ParseRoute decodes a WKT or GeoJSON line geometry. GeoJSON is recognized by
// its leading brace.
func ParseRoute(raw string) (orb.Geometry, error) {
	raw = strings.TrimSpace(raw)

	var geometry orb.Geometry
	if strings.HasPrefix(raw, "{") {
		g, err := geojson.UnmarshalGeometry([]byte(raw))
		if err != nil {
			return nil, ErrInvalidRoute
		}
		geometry = g.Geometry()
	} else {
		g, err := wkt.Unmarshal(raw)
		if err != nil {
			return nil, ErrInvalidRoute
		}
		geometry = g
	}

	switch g := geometry.(type) {
	case orb.LineString:
		if len(g) < 2 {
			return nil, ErrInvalidRoute
		}
	case orb.MultiLineString:
		if len(g) == 0 {
			return nil, ErrInvalidRoute
		}
		for _, ls := range g {
			if len(ls) < 2 {
				return nil, ErrInvalidRoute
			}
		}
	default:
		return nil, ErrInvalidRoute
	}
	return geometry, nil
}

type Repository interface {
	Create(ctx context.Context, newRoute TruckRoute) (*TruckRoute, error)
	Get(ctx context.Context, id uint) (*TruckRoute, error)
	List(ctx context.Context) ([]TruckRoute, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*TruckRoute, error)
	// Delete physically removes a TruckRoute
	Delete(ctx context.Context, id uint) (*TruckRoute, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*TruckRoute, error)
	Find(ctx context.Context, id uint) (*TruckRoute, error)
	List(ctx context.Context) ([]TruckRoute, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*TruckRoute, error)
	Delete(ctx context.Context, id uint) (*TruckRoute, error)
}
