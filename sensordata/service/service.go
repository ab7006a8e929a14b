package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/sensor"
	"github.com/npesaras/clens/sensordata"
)

type service struct {
	dr sensordata.Repository
	sr sensor.Repository
}

func NewSensorDataService(dr sensordata.Repository, sr sensor.Repository) sensordata.Service {
	return &service{
		dr: dr,
		sr: sr,
	}
}

func (s *service) Create(ctx context.Context, payload sensordata.CreatePayload) (*sensordata.SensorData, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "Sensor", payload.SensorID, s.sr.Get); err != nil {
		return nil, err
	}
	created, err := s.dr.Create(ctx, sensordata.SensorData{
		SensorID:               payload.SensorID,
		Ph:                     payload.Ph,
		Tds:                    payload.Tds,
		DissolvedOxygen:        payload.DissolvedOxygen,
		Turbidity:              payload.Turbidity,
		Orp:                    *payload.Orp,
		ElectricalConductivity: payload.ElectricalConductivity,
		ConnectionMode:         payload.ConnectionMode,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create sensor data")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*sensordata.SensorData, error) {
	found, err := s.dr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Sensor data", id, "Failed to retrieve sensor data %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]sensordata.SensorData, error) {
	readings, err := s.dr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve sensor data")
	}
	return readings, nil
}

func (s *service) Update(ctx context.Context, id uint, payload sensordata.UpdatePayload) (*sensordata.SensorData, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}
	if _, err := internal.ResolveOptional(ctx, "Sensor", payload.SensorID, s.sr.Get); err != nil {
		return nil, err
	}
	updated, err := s.dr.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Sensor data", id, "Failed to update sensor data %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*sensordata.SensorData, error) {
	deleted, err := s.dr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Sensor data", id, "Failed to delete sensor data %d", id)
	}
	return deleted, nil
}
