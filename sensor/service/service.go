package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/region"
	"github.com/npesaras/clens/sensor"
)

type service struct {
	sr sensor.Repository
	rr region.Repository
}

func NewSensorService(sr sensor.Repository, rr region.Repository) sensor.Service {
	return &service{
		sr: sr,
		rr: rr,
	}
}

func (s *service) Create(ctx context.Context, payload sensor.CreatePayload) (*sensor.Sensor, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "Barangay", payload.BarangayID, s.rr.GetBarangay); err != nil {
		return nil, err
	}
	created, err := s.sr.Create(ctx, sensor.Sensor{
		ActiveStatus: *payload.ActiveStatus,
		BarangayID:   payload.BarangayID,
		SensorType:   payload.SensorType,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create sensor")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*sensor.Sensor, error) {
	found, err := s.sr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Sensor", id, "Failed to retrieve sensor %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]sensor.Sensor, error) {
	sensors, err := s.sr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve sensors")
	}
	return sensors, nil
}

func (s *service) Update(ctx context.Context, id uint, payload sensor.UpdatePayload) (*sensor.Sensor, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}
	if _, err := internal.ResolveOptional(ctx, "Barangay", payload.BarangayID, s.rr.GetBarangay); err != nil {
		return nil, err
	}
	updated, err := s.sr.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Sensor", id, "Failed to update sensor %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*sensor.Sensor, error) {
	deleted, err := s.sr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Sensor", id, "Failed to delete sensor %d", id)
	}
	return deleted, nil
}
