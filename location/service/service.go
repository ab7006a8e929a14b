package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/location"
	"github.com/npesaras/clens/truck"
)

type service struct {
	lr location.Repository
	tr truck.Repository
}

func NewLocationService(lr location.Repository, tr truck.Repository) location.Service {
	return &service{
		lr: lr,
		tr: tr,
	}
}

func (s *service) Create(ctx context.Context, payload location.CreatePayload) (*location.Location, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "Truck", payload.TruckID, s.tr.Get); err != nil {
		return nil, err
	}
	created, err := s.lr.Create(ctx, location.Location{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		TruckID:   payload.TruckID,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create location")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*location.Location, error) {
	found, err := s.lr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Location", id, "Failed to retrieve location %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]location.Location, error) {
	locations, err := s.lr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve locations")
	}
	return locations, nil
}

func (s *service) Update(ctx context.Context, id uint, payload location.UpdatePayload) (*location.Location, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}
	if _, err := internal.ResolveOptional(ctx, "Truck", payload.TruckID, s.tr.Get); err != nil {
		return nil, err
	}
	updated, err := s.lr.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Location", id, "Failed to update location %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*location.Location, error) {
	deleted, err := s.lr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Location", id, "Failed to delete location %d", id)
	}
	return deleted, nil
}
