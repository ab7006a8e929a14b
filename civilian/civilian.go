package civilian

import (
	"context"
	"errors"

	"github.com/npesaras/clens/address"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/user"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

var (
	ErrCivilianExists = errors.New("Civilian record already exists for this user")
	ErrInvalidLimit   = errors.New("Limit must be a number between 1 and 100")
)

// Civilian is a resident taking part in the disposal rewards program. A User
// has at most one active Civilian record.
type Civilian struct {
	internal.BaseSoftDelete
	UserID              uint             `json:"userId" gorm:"not null;uniqueIndex:idx_civilian_user_active,where:deleted_at IS NULL"`
	AddressID           uint             `json:"addressId" gorm:"index;not null"`
	Level               int              `json:"level" gorm:"not null;default:1"`
	Exp                 int              `json:"exp" gorm:"not null;default:0"`
	Streak              int              `json:"streak" gorm:"not null;default:0"`
	LeaderboardRank     *int             `json:"leaderboardRank"`
	TotalVolumeDisposed float64          `json:"totalVolumeDisposed" gorm:"not null;default:0"`
	Points              float64          `json:"points" gorm:"index;not null;default:0"`
	User                *user.User       `json:"user,omitempty"`
	Address             *address.Address `json:"address,omitempty"`
}

func (Civilian) TableName() string { return "civilian" }

// LeaderboardEntry is a Civilian ranked by points
type LeaderboardEntry struct {
	Rank                int     `json:"rank"`
	CivilianID          uint    `json:"civilianId"`
	UserID              uint    `json:"userId"`
	Username            string  `json:"username"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Level               int     `json:"level"`
	Points              float64 `json:"points"`
	TotalVolumeDisposed float64 `json:"totalVolumeDisposed"`
}

type CreatePayload struct {
	UserID              uint    `json:"userId" validate:"required,gt=0"`
	AddressID           uint    `json:"addressId" validate:"required,gt=0"`
	Level               int     `json:"level" validate:"gte=1"`
	Exp                 int     `json:"exp" validate:"gte=0"`
	Streak              int     `json:"streak" validate:"gte=0"`
	LeaderboardRank     *int    `json:"leaderboardRank" validate:"omitempty,gte=1"`
	TotalVolumeDisposed float64 `json:"totalVolumeDisposed" validate:"gte=0"`
	Points              float64 `json:"points" validate:"gte=0"`
}

type UpdatePayload struct {
	UserID              *uint    `json:"userId" validate:"omitempty,gt=0"`
	AddressID           *uint    `json:"addressId" validate:"omitempty,gt=0"`
	Level               *int     `json:"level" validate:"omitempty,gte=1"`
	Exp                 *int     `json:"exp" validate:"omitempty,gte=0"`
	Streak              *int     `json:"streak" validate:"omitempty,gte=0"`
	LeaderboardRank     *int     `json:"leaderboardRank" validate:"omitempty,gte=1"`
	TotalVolumeDisposed *float64 `json:"totalVolumeDisposed" validate:"omitempty,gte=0"`
	Points              *float64 `json:"points" validate:"omitempty,gte=0"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.UserID != nil {
		fields["user_id"] = *p.UserID
	}
	if p.AddressID != nil {
		fields["address_id"] = *p.AddressID
	}
	if p.Level != nil {
		fields["level"] = *p.Level
	}
	if p.Exp != nil {
		fields["exp"] = *p.Exp
	}
	if p.Streak != nil {
		fields["streak"] = *p.Streak
	}
	if p.LeaderboardRank != nil {
		fields["leaderboard_rank"] = *p.LeaderboardRank
	}
	if p.TotalVolumeDisposed != nil {
		fields["total_volume_disposed"] = *p.TotalVolumeDisposed
	}
	if p.Points != nil {
		fields["points"] = *p.Points
	}
	return fields
}

type Repository interface {
	// Create creates a new Civilian
	Create(ctx context.Context, newCivilian Civilian) (*Civilian, error)
	// Get retrieves an active Civilian given its id
	Get(ctx context.Context, id uint) (*Civilian, error)
	// GetByUser retrieves the active Civilian of a User
	GetByUser(ctx context.Context, userID uint) (*Civilian, error)
	// List retrieves every active Civilian whose User and Address are also active
	List(ctx context.Context) ([]Civilian, error)
	// Leaderboard retrieves at most limit active Civilians ordered by points
	Leaderboard(ctx context.Context, limit int) ([]Civilian, error)
	// Update applies fields to an active Civilian
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Civilian, error)
	// Delete soft deletes a Civilian
	Delete(ctx context.Context, id uint) (*Civilian, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Civilian, error)
	Find(ctx context.Context, id uint) (*Civilian, error)
	FindByUser(ctx context.Context, userID uint) (*Civilian, error)
	List(ctx context.Context) ([]Civilian, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Civilian, error)
	Delete(ctx context.Context, id uint) (*Civilian, error)
}
