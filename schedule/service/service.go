package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/region"
	"github.com/npesaras/clens/schedule"
)

type service struct {
	sr schedule.Repository
	rr region.Repository
}

func NewScheduleService(sr schedule.Repository, rr region.Repository) schedule.Service {
	return &service{
		sr: sr,
		rr: rr,
	}
}

func (s *service) Create(ctx context.Context, payload schedule.CreatePayload) (*schedule.Schedule, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	date, err := internal.ParseDate("collectionDate", payload.CollectionDate)
	if err != nil {
		return nil, err
	}
	clock, err := internal.ParseClock("collectionTime", payload.CollectionTime)
	if err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "Barangay", payload.BarangayID, s.rr.GetBarangay); err != nil {
		return nil, err
	}
	created, err := s.sr.Create(ctx, schedule.Schedule{
		BarangayID:     payload.BarangayID,
		CollectionDate: date,
		CollectionTime: clock,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create collection schedule")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*schedule.Schedule, error) {
	found, err := s.sr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Collection schedule", id, "Failed to retrieve collection schedule %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]schedule.Schedule, error) {
	schedules, err := s.sr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve collection schedules")
	}
	return schedules, nil
}

func (s *service) Update(ctx context.Context, id uint, payload schedule.UpdatePayload) (*schedule.Schedule, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if payload.CollectionDate != nil {
		date, err := internal.ParseDate("collectionDate", *payload.CollectionDate)
		if err != nil {
			return nil, err
		}
		fields["collection_date"] = date
	}
	if payload.CollectionTime != nil {
		clock, err := internal.ParseClock("collectionTime", *payload.CollectionTime)
		if err != nil {
			return nil, err
		}
		fields["collection_time"] = clock
	}
	if payload.BarangayID != nil {
		if _, err := internal.Resolve(ctx, "Barangay", *payload.BarangayID, s.rr.GetBarangay); err != nil {
			return nil, err
		}
		fields["barangay_id"] = *payload.BarangayID
	}

	updated, err := s.sr.Update(ctx, id, fields)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Collection schedule", id, "Failed to update collection schedule %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*schedule.Schedule, error) {
	deleted, err := s.sr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Collection schedule", id, "Failed to delete collection schedule %d", id)
	}
	return deleted, nil
}
