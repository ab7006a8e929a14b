package admin

import (
	"context"
	"errors"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/user"
)

var (
	ErrAdminExists = errors.New("Admin record already exists for this user")
)

type PrivilegeLevel string

const (
	Superadmin PrivilegeLevel = "superadmin"
	Moderator  PrivilegeLevel = "moderator"
	Staff      PrivilegeLevel = "staff"
)

// Admin grants a User access to the administrative tools. A User has at most
// one active Admin record.
type Admin struct {
	internal.BaseSoftDelete
	UserID         uint           `json:"userId" gorm:"not null;uniqueIndex:idx_admin_user_active,where:deleted_at IS NULL"`
	PrivilegeLevel PrivilegeLevel `json:"privilegeLevel" gorm:"size:16;not null"`
	User           *user.User     `json:"user,omitempty"`
}

func (Admin) TableName() string { return "admin" }

type CreatePayload struct {
	UserID         uint           `json:"userId" validate:"required,gt=0"`
	PrivilegeLevel PrivilegeLevel `json:"privilegeLevel" validate:"required,oneof=superadmin moderator staff"`
}

type UpdatePayload struct {
	UserID         *uint           `json:"userId" validate:"omitempty,gt=0"`
	PrivilegeLevel *PrivilegeLevel `json:"privilegeLevel" validate:"omitempty,oneof=superadmin moderator staff"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.UserID != nil {
		fields["user_id"] = *p.UserID
	}
	if p.PrivilegeLevel != nil {
		fields["privilege_level"] = *p.PrivilegeLevel
	}
	return fields
}

type Repository interface {
	// Create creates a new Admin
	Create(ctx context.Context, newAdmin Admin) (*Admin, error)
	// Get retrieves an active Admin given its id
	Get(ctx context.Context, id uint) (*Admin, error)
	// GetByUser retrieves the active Admin of a User
	GetByUser(ctx context.Context, userID uint) (*Admin, error)
	// List retrieves every active Admin whose User is also active
	List(ctx context.Context) ([]Admin, error)
	// Update applies fields to an active Admin
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*Admin, error)
	// Delete soft deletes an Admin
	Delete(ctx context.Context, id uint) (*Admin, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*Admin, error)
	Find(ctx context.Context, id uint) (*Admin, error)
	FindByUser(ctx context.Context, userID uint) (*Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*Admin, error)
	Delete(ctx context.Context, id uint) (*Admin, error)
}
