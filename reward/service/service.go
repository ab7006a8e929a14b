package service

import (
	"context"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/region"
	"github.com/npesaras/clens/reward"
)

type service struct {
	mr reward.Repository
	rr region.Repository
}

func NewRewardService(mr reward.Repository, rr region.Repository) reward.Service {
	return &service{
		mr: mr,
		rr: rr,
	}
}

func (s *service) Create(ctx context.Context, payload reward.CreatePayload) (*reward.Multiplier, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	startDate, err := internal.ParseDate("startDate", payload.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := internal.ParseDate("endDate", payload.EndDate)
	if err != nil {
		return nil, err
	}
	if err := reward.CheckPeriod(startDate, endDate); err != nil {
		return nil, err
	}
	if _, err := internal.Resolve(ctx, "Barangay", payload.BarangayID, s.rr.GetBarangay); err != nil {
		return nil, err
	}
	created, err := s.mr.Create(ctx, reward.Multiplier{
		BarangayID:       payload.BarangayID,
		Interval:         payload.Interval,
		StartDate:        startDate,
		EndDate:          endDate,
		MultiplierExp:    payload.MultiplierExp,
		MultiplierPoints: payload.MultiplierPoints,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create reward multiplier")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*reward.Multiplier, error) {
	found, err := s.mr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Reward multiplier", id, "Failed to retrieve reward multiplier %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]reward.Multiplier, error) {
	multipliers, err := s.mr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve reward multipliers")
	}
	return multipliers, nil
}

func (s *service) Update(ctx context.Context, id uint, payload reward.UpdatePayload) (*reward.Multiplier, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	startDate, endDate := existing.StartDate, existing.EndDate
	if payload.StartDate != nil {
		if startDate, err = internal.ParseDate("startDate", *payload.StartDate); err != nil {
			return nil, err
		}
		fields["start_date"] = startDate
	}
	if payload.EndDate != nil {
		if endDate, err = internal.ParseDate("endDate", *payload.EndDate); err != nil {
			return nil, err
		}
		fields["end_date"] = endDate
	}
	if err := reward.CheckPeriod(startDate, endDate); err != nil {
		return nil, err
	}
	if payload.BarangayID != nil {
		if _, err := internal.Resolve(ctx, "Barangay", *payload.BarangayID, s.rr.GetBarangay); err != nil {
			return nil, err
		}
		fields["barangay_id"] = *payload.BarangayID
	}
	if payload.Interval != nil {
		fields["interval"] = *payload.Interval
	}
	if payload.MultiplierExp != nil {
		fields["multiplier_exp"] = *payload.MultiplierExp
	}
	if payload.MultiplierPoints != nil {
		fields["multiplier_points"] = *payload.MultiplierPoints
	}

	updated, err := s.mr.Update(ctx, id, fields)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Reward multiplier", id, "Failed to update reward multiplier %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*reward.Multiplier, error) {
	deleted, err := s.mr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Reward multiplier", id, "Failed to delete reward multiplier %d", id)
	}
	return deleted, nil
}
