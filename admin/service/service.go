package service

import (
	"context"
	"errors"

	"github.com/npesaras/clens/admin"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/user"
)

type service struct {
	ar admin.Repository
	ur user.Repository
}

func NewAdminService(ar admin.Repository, ur user.Repository) admin.Service {
	return &service{
		ar: ar,
		ur: ur,
	}
}

func (s *service) Create(ctx context.Context, payload admin.CreatePayload) (*admin.Admin, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "User", payload.UserID, s.ur.Get); err != nil {
		return nil, err
	}
	if err := s.assertUnclaimed(ctx, payload.UserID); err != nil {
		return nil, err
	}
	created, err := s.ar.Create(ctx, admin.Admin{
		UserID:         payload.UserID,
		PrivilegeLevel: payload.PrivilegeLevel,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "%v", admin.ErrAdminExists)
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*admin.Admin, error) {
	found, err := s.ar.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Admin record", id, "Failed to retrieve admin record %d", id)
	}
	return found, nil
}

func (s *service) FindByUser(ctx context.Context, userID uint) (*admin.Admin, error) {
	found, err := s.ar.GetByUser(ctx, userID)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Admin record for user", userID, "Failed to retrieve admin record of user %d", userID)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]admin.Admin, error) {
	admins, err := s.ar.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve admin records")
	}
	return admins, nil
}

func (s *service) Update(ctx context.Context, id uint, payload admin.UpdatePayload) (*admin.Admin, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.UserID != nil && *payload.UserID != existing.UserID {
		if _, err := internal.Resolve(ctx, "User", *payload.UserID, s.ur.Get); err != nil {
			return nil, err
		}
		if err := s.assertUnclaimed(ctx, *payload.UserID); err != nil {
			return nil, err
		}
	}
	updated, err := s.ar.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Admin record", id, "%v", admin.ErrAdminExists)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*admin.Admin, error) {
	deleted, err := s.ar.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Admin record", id, "Failed to delete admin record %d", id)
	}
	return deleted, nil
}

// assertUnclaimed fails when userID already has an active Admin record
func (s *service) assertUnclaimed(ctx context.Context, userID uint) error {
	_, err := s.ar.GetByUser(ctx, userID)
	switch {
	case err == nil:
		return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", admin.ErrAdminExists)
	case errors.Is(err, internal.ErrRecordNotFound):
		return nil
	}
	return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to check admin records of user %d", userID)
}
