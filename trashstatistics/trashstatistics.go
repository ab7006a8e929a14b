package trashstatistics

import (
	"context"

	"github.com/npesaras/clens/internal"
)

// Type decides which table EntityID points into
type Type string

const (
	TypeCivilian Type = "civilian"
	TypeBarangay Type = "barangay"
)

// TrashStatistics ranks a Civilian or a Barangay by the volume it disposed.
// EntityID is polymorphic so it carries no foreign key.
type TrashStatistics struct {
	internal.BaseSoftDelete
	Type            Type    `json:"type" gorm:"size:16;not null;index:idx_trash_statistics_entity"`
	EntityID        uint    `json:"entityId" gorm:"not null;index:idx_trash_statistics_entity"`
	LeaderboardRank int     `json:"leaderboardRank" gorm:"not null"`
	TotalDisposed   float64 `json:"totalDisposed" gorm:"not null"`
}

func (TrashStatistics) TableName() string { return "trash_statistics" }

type CreatePayload struct {
	Type            Type    `json:"type" validate:"required,oneof=civilian barangay"`
	EntityID        uint    `json:"entityId" validate:"required,gt=0"`
	LeaderboardRank int     `json:"leaderboardRank" validate:"required,gte=1"`
	TotalDisposed   float64 `json:"totalDisposed" validate:"gte=0"`
}

type UpdatePayload struct {
	Type            *Type    `json:"type" validate:"omitempty,oneof=civilian barangay"`
	EntityID        *uint    `json:"entityId" validate:"omitempty,gt=0"`
	LeaderboardRank *int     `json:"leaderboardRank" validate:"omitempty,gte=1"`
	TotalDisposed   *float64 `json:"totalDisposed" validate:"omitempty,gte=0"`
}

// ChangesEntity reports whether the polymorphic reference is being changed
func (p UpdatePayload) ChangesEntity() bool {
	return p.Type != nil || p.EntityID != nil
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.EntityID != nil {
		fields["entity_id"] = *p.EntityID
	}
	if p.LeaderboardRank != nil {
		fields["leaderboard_rank"] = *p.LeaderboardRank
	}
	if p.TotalDisposed != nil {
		fields["total_disposed"] = *p.TotalDisposed
	}
	return fields
}

type Repository interface {
	Create(ctx context.Context, newStatistics TrashStatistics) (*TrashStatistics, error)
	Get(ctx context.Context, id uint) (*TrashStatistics, error)
	List(ctx context.Context) ([]TrashStatistics, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*TrashStatistics, error)
	Delete(ctx context.Context, id uint) (*TrashStatistics, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*TrashStatistics, error)
	Find(ctx context.Context, id uint) (*TrashStatistics, error)
	List(ctx context.Context) ([]TrashStatistics, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*TrashStatistics, error)
	Delete(ctx context.Context, id uint) (*TrashStatistics, error)
}
