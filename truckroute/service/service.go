package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/truck"
	"github.com/npesaras/clens/truckroute"
)

type service struct {
	rr truckroute.Repository
	tr truck.Repository
}

func NewTruckRouteService(rr truckroute.Repository, tr truck.Repository) truckroute.Service {
	return &service{
		rr: rr,
		tr: tr,
	}
}

func (s *service) Create(ctx context.Context, payload truckroute.CreatePayload) (*truckroute.TruckRoute, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := truckroute.ParseRoute(payload.Route); err != nil {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", err)
	}
	validFrom, err := internal.ParseTimestamp("validFrom", payload.ValidFrom)
	if err != nil {
		return nil, err
	}
	validTo, err := internal.ParseTimestamp("validTo", payload.ValidTo)
	if err != nil {
		return nil, err
	}
	if !validFrom.Before(validTo) {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", truckroute.ErrInvalidWindow)
	}
	if _, err := internal.Resolve(ctx, "Truck", payload.TruckID, s.tr.Get); err != nil {
		return nil, err
	}
	created, err := s.rr.Create(ctx, truckroute.TruckRoute{
		TruckID:   payload.TruckID,
		Route:     payload.Route,
		ValidFrom: validFrom,
		ValidTo:   validTo,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create truck route")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*truckroute.TruckRoute, error) {
	found, err := s.rr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Truck route", id, "Failed to retrieve truck route %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]truckroute.TruckRoute, error) {
	routes, err := s.rr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve truck routes")
	}
	return routes, nil
}

func (s *service) Update(ctx context.Context, id uint, payload truckroute.UpdatePayload) (*truckroute.TruckRoute, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if payload.Route != nil {
		if _, err := truckroute.ParseRoute(*payload.Route); err != nil {
			return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", err)
		}
		fields["route"] = *payload.Route
	}
	validFrom, validTo := existing.ValidFrom, existing.ValidTo
	if payload.ValidFrom != nil {
		if validFrom, err = internal.ParseTimestamp("validFrom", *payload.ValidFrom); err != nil {
			return nil, err
		}
		fields["valid_from"] = validFrom
	}
	if payload.ValidTo != nil {
		if validTo, err = internal.ParseTimestamp("validTo", *payload.ValidTo); err != nil {
			return nil, err
		}
		fields["valid_to"] = validTo
	}
	if !validFrom.Before(validTo) {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", truckroute.ErrInvalidWindow)
	}
	if payload.TruckID != nil {
		if _, err := internal.Resolve(ctx, "Truck", *payload.TruckID, s.tr.Get); err != nil {
			return nil, err
		}
		fields["truck_id"] = *payload.TruckID
	}

	updated, err := s.rr.Update(ctx, id, fields)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Truck route", id, "Failed to update truck route %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*truckroute.TruckRoute, error) {
	deleted, err := s.rr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Truck route", id, "Failed to delete truck route %d", id)
	}
	return deleted, nil
}
