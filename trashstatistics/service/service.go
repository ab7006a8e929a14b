package service

import (
	"context"

	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/region"
	"github.com/npesaras/clens/trashstatistics"
)

type service struct {
	tr trashstatistics.Repository
	cr civilian.Repository
	rr region.Repository
}

func NewTrashStatisticsService(tr trashstatistics.Repository, cr civilian.Repository, rr region.Repository) trashstatistics.Service {
	return &service{
		tr: tr,
		cr: cr,
		rr: rr,
	}
}

func (s *service) Create(ctx context.Context, payload trashstatistics.CreatePayload) (*trashstatistics.TrashStatistics, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if err := s.resolveEntity(ctx, payload.Type, payload.EntityID); err != nil {
		return nil, err
	}
	created, err := s.tr.Create(ctx, trashstatistics.TrashStatistics{
		Type:            payload.Type,
		EntityID:        payload.EntityID,
		LeaderboardRank: payload.LeaderboardRank,
		TotalDisposed:   payload.TotalDisposed,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create trash statistics")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*trashstatistics.TrashStatistics, error) {
	found, err := s.tr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Trash statistics", id, "Failed to retrieve trash statistics %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]trashstatistics.TrashStatistics, error) {
	statistics, err := s.tr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve trash statistics")
	}
	return statistics, nil
}

func (s *service) Update(ctx context.Context, id uint, payload trashstatistics.UpdatePayload) (*trashstatistics.TrashStatistics, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if payload.ChangesEntity() {
		kind, entityID := existing.Type, existing.EntityID
		if payload.Type != nil {
			kind = *payload.Type
		}
		if payload.EntityID != nil {
			entityID = *payload.EntityID
		}
		if err := s.resolveEntity(ctx, kind, entityID); err != nil {
			return nil, err
		}
	}
	updated, err := s.tr.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Trash statistics", id, "Failed to update trash statistics %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*trashstatistics.TrashStatistics, error) {
	deleted, err := s.tr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Trash statistics", id, "Failed to delete trash statistics %d", id)
	}
	return deleted, nil
}

// resolveEntity checks that entityID exists in the table selected by kind
func (s *service) resolveEntity(ctx context.Context, kind trashstatistics.Type, entityID uint) error {
	var err error
	switch kind {
	case trashstatistics.TypeCivilian:
		_, err = internal.Resolve(ctx, "Civilian", entityID, s.cr.Get)
	case trashstatistics.TypeBarangay:
		_, err = internal.Resolve(ctx, "Barangay", entityID, s.rr.GetBarangay)
	default:
		err = internal.NewErrorf(internal.ErrorCodeInvalidArgument, "type must be one of: civilian, barangay")
	}
	return err
}
