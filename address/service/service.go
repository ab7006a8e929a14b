package service

import (
	"context"

	"github.com/npesaras/clens/address"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/region"
)

type service struct {
	ar address.Repository
	rr region.Repository
}

func NewAddressService(ar address.Repository, rr region.Repository) address.Service {
	return &service{
		ar: ar,
		rr: rr,
	}
}

func (s *service) Create(ctx context.Context, payload address.CreatePayload) (*address.Address, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if err := s.resolveRegion(ctx, payload.ProvinceID, payload.CityID, payload.BarangayID); err != nil {
		return nil, err
	}
	created, err := s.ar.Create(ctx, address.Address{
		Street:     payload.Street,
		ProvinceID: payload.ProvinceID,
		CityID:     payload.CityID,
		BarangayID: payload.BarangayID,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create address")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*address.Address, error) {
	found, err := s.ar.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Address", id, "Failed to retrieve address %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]address.Address, error) {
	addresses, err := s.ar.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve addresses")
	}
	return addresses, nil
}

func (s *service) Update(ctx context.Context, id uint, payload address.UpdatePayload) (*address.Address, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.ChangesRegion() {
		provinceID, cityID, barangayID := existing.ProvinceID, existing.CityID, existing.BarangayID
		if payload.ProvinceID != nil {
			provinceID = *payload.ProvinceID
		}
		if payload.CityID != nil {
			cityID = *payload.CityID
		}
		if payload.BarangayID != nil {
			barangayID = *payload.BarangayID
		}
		if err := s.resolveRegion(ctx, provinceID, cityID, barangayID); err != nil {
			return nil, err
		}
	}
	updated, err := s.ar.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Address", id, "Failed to update address %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*address.Address, error) {
	deleted, err := s.ar.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Address", id, "Failed to delete address %d", id)
	}
	return deleted, nil
}

// resolveRegion asserts the province exists, the city belongs to the province
// and the barangay belongs to the city, in that order
func (s *service) resolveRegion(ctx context.Context, provinceID uint, cityID uint, barangayID uint) error {
	if _, err := internal.Resolve(ctx, "Province", provinceID, s.rr.GetProvince); err != nil {
		return err
	}
	_, err := internal.Resolve(ctx, "City", cityID, func(ctx context.Context, id uint) (*region.City, error) {
		return s.rr.GetCityInProvince(ctx, id, provinceID)
	})
	if err != nil {
		return err
	}
	_, err = internal.Resolve(ctx, "Barangay", barangayID, func(ctx context.Context, id uint) (*region.Barangay, error) {
		return s.rr.GetBarangayInCity(ctx, id, cityID)
	})
	return err
}
