package service

import (
	"context"

	goaway "github.com/TwiN/go-away"
	"github.com/nbutton23/zxcvbn-go"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/user"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	cfg config.Credential
	ur  user.Repository
}

func NewUserService(cfg config.Configuration, ur user.Repository) user.Service {
	return &service{
		cfg: cfg.Credential,
		ur:  ur,
	}
}

func (s *service) Create(ctx context.Context, payload user.CreatePayload) (*user.User, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if err := s.checkUsername(payload.Username); err != nil {
		return nil, err
	}
	// Test password strength against the user's own identifiers
	if s.cfg.MinimumScore > 0 {
		strength := zxcvbn.PasswordStrength(payload.Password, []string{payload.Username, payload.Email, payload.FirstName, payload.LastName})
		if strength.Score < s.cfg.MinimumScore {
			return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", user.ErrPasswordWeak)
		}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.cfg.SaltRounds)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to hash password")
	}

	created, err := s.ur.Create(ctx, user.User{
		UserType:   payload.UserType,
		Username:   payload.Username,
		Email:      payload.Email,
		FirstName:  payload.FirstName,
		MiddleName: payload.MiddleName,
		LastName:   payload.LastName,
		Password:   string(hashed),
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "%v", user.ErrUserExists)
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*user.User, error) {
	found, err := s.ur.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "User", id, "Failed to retrieve user %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]user.User, error) {
	users, err := s.ur.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve users")
	}
	return users, nil
}

func (s *service) Update(ctx context.Context, id uint, payload user.UpdatePayload) (*user.User, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if payload.Username != nil {
		if err := s.checkUsername(*payload.Username); err != nil {
			return nil, err
		}
	}
	updated, err := s.ur.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "User", id, "%v", user.ErrUserExists)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*user.User, error) {
	deleted, err := s.ur.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "User", id, "Failed to delete user %d", id)
	}
	return deleted, nil
}

func (s *service) checkUsername(username string) error {
	if s.cfg.ProfaneCheck && goaway.IsProfane(username) {
		return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", user.ErrUsernameProfane)
	}
	return nil
}
