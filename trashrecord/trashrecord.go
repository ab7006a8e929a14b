package trashrecord

import (
	"context"
	"time"

	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/truck"
)

type WasteType string

const (
	Organic       WasteType = "organic"
	Recyclable    WasteType = "recyclable"
	Hazardous     WasteType = "hazardous"
	NonRecyclable WasteType = "non-recyclable"
)

// TrashRecord is a single disposal by a Civilian, optionally picked up by a
// collector Truck.
type TrashRecord struct {
	internal.BaseSoftDelete
	CivilianID       uint               `json:"civilianId" gorm:"index;not null"`
	Volume           float64            `json:"volume" gorm:"not null"`
	SegregationScore float64            `json:"segregationScore" gorm:"not null"`
	RecyclingScore   float64            `json:"recyclingScore" gorm:"not null"`
	WasteType        WasteType          `json:"wasteType" gorm:"size:16;not null"`
	Collected        bool               `json:"collected" gorm:"not null"`
	DateDisposed     time.Time          `json:"dateDisposed" gorm:"not null"`
	DateCollected    *time.Time         `json:"dateCollected"`
	CollectorID      *uint              `json:"collectorId" gorm:"index"`
	Civilian         *civilian.Civilian `json:"civilian,omitempty"`
	Collector        *truck.Truck       `json:"collector,omitempty" gorm:"foreignKey:CollectorID"`
}

func (TrashRecord) TableName() string { return "trash_record" }

type CreatePayload struct {
	CivilianID       uint      `json:"civilianId" validate:"required,gt=0"`
	Volume           float64   `json:"volume" validate:"gte=0"`
	SegregationScore float64   `json:"segregationScore" validate:"gte=0"`
	RecyclingScore   float64   `json:"recyclingScore" validate:"gte=0"`
	WasteType        WasteType `json:"wasteType" validate:"required,oneof=organic recyclable hazardous non-recyclable"`
	Collected        *bool     `json:"collected" validate:"required"`
	DateDisposed     string    `json:"dateDisposed" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DateCollected    *string   `json:"dateCollected" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CollectorID      *uint     `json:"collectorId" validate:"omitempty,gt=0"`
}

type UpdatePayload struct {
	CivilianID       *uint      `json:"civilianId" validate:"omitempty,gt=0"`
	Volume           *float64   `json:"volume" validate:"omitempty,gte=0"`
	SegregationScore *float64   `json:"segregationScore" validate:"omitempty,gte=0"`
	RecyclingScore   *float64   `json:"recyclingScore" validate:"omitempty,gte=0"`
	WasteType        *WasteType `json:"wasteType" validate:"omitempty,oneof=organic recyclable hazardous non-recyclable"`
	Collected        *bool      `json:"collected"`
	DateDisposed     *string    `json:"dateDisposed" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	DateCollected    *string    `json:"dateCollected" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CollectorID      *uint      `json:"collectorId" validate:"omitempty,gt=0"`
}

// Fields returns the columns that were provided. Timestamps are parsed here so
// a malformed value never reaches storage.
func (p UpdatePayload) Fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if p.CivilianID != nil {
		fields["civilian_id"] = *p.CivilianID
	}
	if p.Volume != nil {
		fields["volume"] = *p.Volume
	}
	if p.SegregationScore != nil {
		fields["segregation_score"] = *p.SegregationScore
	}
	if p.RecyclingScore != nil {
		fields["recycling_score"] = *p.RecyclingScore
	}
	if p.WasteType != nil {
		fields["waste_type"] = *p.WasteType
	}
	if p.Collected != nil {
		fields["collected"] = *p.Collected
	}
	if p.DateDisposed != nil {
		t, err := internal.ParseTimestamp("dateDisposed", *p.DateDisposed)
		if err != nil {
			return nil, err
		}
		fields["date_disposed"] = t
	}
	if p.DateCollected != nil {
		t, err := internal.ParseTimestamp("dateCollected", *p.DateCollected)
		if err != nil {
			return nil, err
		}
		fields["date_collected"] = t
	}
	if p.CollectorID != nil {
		fields["collector_id"] = *p.CollectorID
	}
	return fields, nil
}

type Repository interface {
	Create(ctx context.Context, newRecord TrashRecord) (*TrashRecord, error)
	Get(ctx context.Context, id uint) (*TrashRecord, error)
	List(ctx context.Context) ([]TrashRecord, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*TrashRecord, error)
	Delete(ctx context.Context, id uint) (*TrashRecord, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*TrashRecord, error)
	Find(ctx context.Context, id uint) (*TrashRecord, error)
	List(ctx context.Context) ([]TrashRecord, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*TrashRecord, error)
	Delete(ctx context.Context, id uint) (*TrashRecord, error)
}
