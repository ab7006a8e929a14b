package user

import (
	"context"
	"errors"

	"github.com/npesaras/clens/internal"
)

var (
	ErrUsernameProfane = errors.New("Username contains profanity")
	ErrPasswordWeak    = errors.New("Password provided is too weak")
	ErrUserExists      = errors.New("User with this username or email already exists")
)

type Type string

const (
	Admin     Type = "admin"
	Civilian  Type = "civilian"
	Collector Type = "collector"
)

// User is an account of any kind. Admin, civilian and truck records hang off a User.
type User struct {
	internal.BaseSoftDelete
	UserType   Type   `json:"usertype" gorm:"size:16;not null"`
	Username   string `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email      string `json:"email" gorm:"size:50;uniqueIndex;not null"`
	FirstName  string `json:"firstName" gorm:"size:30;not null"`
	MiddleName string `json:"middleName" gorm:"size:30;not null"`
	LastName   string `json:"lastName" gorm:"size:30;not null"`
	// Password is the bcrypt hash of the user's password
	Password string `json:"-" gorm:"size:255;not null"`
}

func (User) TableName() string { return "users" }

type CreatePayload struct {
	UserType   Type   `json:"usertype" validate:"required,oneof=admin civilian collector"`
	Username   string `json:"username" validate:"required,min=3,max=50"`
	Email      string `json:"email" validate:"required,email,max=50"`
	FirstName  string `json:"firstName" validate:"required,min=1,max=30"`
	MiddleName string `json:"middleName" validate:"required,min=1,max=30"`
	LastName   string `json:"lastName" validate:"required,min=1,max=30"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
}

// UpdatePayload changes profile fields only. Passwords cannot be changed through it.
type UpdatePayload struct {
	UserType   *Type   `json:"usertype" validate:"omitempty,oneof=admin civilian collector"`
	Username   *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email      *string `json:"email" validate:"omitempty,email,max=50"`
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=30"`
	MiddleName *string `json:"middleName" validate:"omitempty,min=1,max=30"`
	LastName   *string `json:"lastName" validate:"omitempty,min=1,max=30"`
}

// Fields returns the columns that were provided
func (p UpdatePayload) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.UserType != nil {
		fields["user_type"] = *p.UserType
	}
	if p.Username != nil {
		fields["username"] = *p.Username
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.MiddleName != nil {
		fields["middle_name"] = *p.MiddleName
	}
	if p.LastName != nil {
		fields["last_name"] = *p.LastName
	}
	return fields
}

type Repository interface {
	// Create creates a new User
	Create(ctx context.Context, newUser User) (*User, error)
	// Get retrieves an active User given its id
	Get(ctx context.Context, id uint) (*User, error)
	// List retrieves every active User
	List(ctx context.Context) ([]User, error)
	// Update applies fields to an active User
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*User, error)
	// Delete soft deletes a User
	Delete(ctx context.Context, id uint) (*User, error)
}

type Service interface {
	Create(ctx context.Context, payload CreatePayload) (*User, error)
	Find(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id uint, payload UpdatePayload) (*User, error)
	Delete(ctx context.Context, id uint) (*User, error)
}
