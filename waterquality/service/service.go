package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/sensor"
	"github.com/npesaras/clens/waterquality"
)

const entity = "Water quality statistics"

type service struct {
	wr waterquality.Repository
	sr sensor.Repository
}

func NewWaterQualityService(wr waterquality.Repository, sr sensor.Repository) waterquality.Service {
	return &service{
		wr: wr,
		sr: sr,
	}
}

func (s *service) Create(ctx context.Context, payload waterquality.CreatePayload) (*waterquality.WaterQualityStatistics, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	key, err := waterquality.ParseKey(string(payload.Interval), payload.StartDate)
	if err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "Sensor", payload.SensorID, s.sr.Get); err != nil {
		return nil, err
	}
	created, err := s.wr.Create(ctx, waterquality.WaterQualityStatistics{
		Interval:                  key.Interval,
		StartDate:                 key.StartDate,
		SensorID:                  payload.SensorID,
		AvePh:                     payload.AvePh,
		AveTds:                    payload.AveTds,
		AveDissolvedOxygen:        payload.AveDissolvedOxygen,
		AveTurbidity:              payload.AveTurbidity,
		AveOrp:                    *payload.AveOrp,
		AveElectricalConductivity: payload.AveElectricalConductivity,
	})
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, entity, key, "%s for %s already exists", entity, key)
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, key waterquality.Key) (*waterquality.WaterQualityStatistics, error) {
	found, err := s.wr.Get(ctx, key)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, entity, key, "Failed to retrieve water quality statistics %s", key)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]waterquality.WaterQualityStatistics, error) {
	statistics, err := s.wr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve water quality statistics")
	}
	return statistics, nil
}

func (s *service) Update(ctx context.Context, key waterquality.Key, payload waterquality.UpdatePayload) (*waterquality.WaterQualityStatistics, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if payload.ChangesKey(key) {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", waterquality.ErrKeyImmutable)
	}
	if _, err := s.Find(ctx, key); err != nil {
		return nil, err
	}
	if _, err := internal.ResolveOptional(ctx, "Sensor", payload.SensorID, s.sr.Get); err != nil {
		return nil, err
	}
	updated, err := s.wr.Update(ctx, key, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, entity, key, "Failed to update water quality statistics %s", key)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, key waterquality.Key) (*waterquality.WaterQualityStatistics, error) {
	deleted, err := s.wr.Delete(ctx, key)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, entity, key, "Failed to delete water quality statistics %s", key)
	}
	return deleted, nil
}
