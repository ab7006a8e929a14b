package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/truck"
	"github.com/npesaras/clens/user"
)

type service struct {
	tr truck.Repository
	ur user.Repository
}

func NewTruckService(tr truck.Repository, ur user.Repository) truck.Service {
	return &service{
		tr: tr,
		ur: ur,
	}
}

func (s *service) Create(ctx context.Context, payload truck.CreatePayload) (*truck.Truck, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "User", payload.UserID, s.ur.Get); err != nil {
		return nil, err
	}
	if err := s.assertUnclaimed(ctx, payload.UserID); err != nil {
		return nil, err
	}
	created, err := s.tr.Create(ctx, truck.Truck{
		PlateNumber:          payload.PlateNumber,
		Active:               *payload.Active,
		UserID:               payload.UserID,
		TotalCollectedVolume: payload.TotalCollectedVolume,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "%v", truck.ErrTruckExists)
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*truck.Truck, error) {
	found, err := s.tr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Truck", id, "Failed to retrieve truck %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]truck.Truck, error) {
	trucks, err := s.tr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve trucks")
	}
	return trucks, nil
}

func (s *service) Update(ctx context.Context, id uint, payload truck.UpdatePayload) (*truck.Truck, error) {
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
	updated, err := s.tr.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Truck", id, "%v", truck.ErrTruckExists)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*truck.Truck, error) {
	deleted, err := s.tr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Truck", id, "Failed to delete truck %d", id)
	}
	return deleted, nil
}

// assertUnclaimed fails when userID already drives an active Truck
func (s *service) assertUnclaimed(ctx context.Context, userID uint) error {
	exists, err := s.tr.ExistsForUser(ctx, userID)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to check trucks of user %d", userID)
	}
	if exists {
		return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", truck.ErrTruckExists)
	}
	return nil
}
