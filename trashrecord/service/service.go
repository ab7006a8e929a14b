package service

import (
	"context"

	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/trashrecord"
	"github.com/npesaras/clens/truck"
)

type service struct {
	rr trashrecord.Repository
	cr civilian.Repository
	tr truck.Repository
}

func NewTrashRecordService(rr trashrecord.Repository, cr civilian.Repository, tr truck.Repository) trashrecord.Service {
	return &service{
		rr: rr,
		cr: cr,
		tr: tr,
	}
}

func (s *service) Create(ctx context.Context, payload trashrecord.CreatePayload) (*trashrecord.TrashRecord, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	dateDisposed, err := internal.ParseTimestamp("dateDisposed", payload.DateDisposed)
	if err != nil {
		return nil, err
	}
	record := trashrecord.TrashRecord{
		CivilianID:       payload.CivilianID,
		Volume:           payload.Volume,
		SegregationScore: payload.SegregationScore,
		RecyclingScore:   payload.RecyclingScore,
		WasteType:        payload.WasteType,
		Collected:        *payload.Collected,
		DateDisposed:     dateDisposed,
		CollectorID:      payload.CollectorID,
	}
	if payload.DateCollected != nil {
		dateCollected, err := internal.ParseTimestamp("dateCollected", *payload.DateCollected)
		if err != nil {
			return nil, err
		}
		record.DateCollected = &dateCollected
	}
	if err := s.resolveParents(ctx, &payload.CivilianID, payload.CollectorID); err != nil {
		return nil, err
	}

	created, err := s.rr.Create(ctx, record)
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "Failed to create trash record")
	}
	return created, nil
}

func (s *service) Find(ctx context.Context, id uint) (*trashrecord.TrashRecord, error) {
	found, err := s.rr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Trash record", id, "Failed to retrieve trash record %d", id)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]trashrecord.TrashRecord, error) {
	records, err := s.rr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve trash records")
	}
	return records, nil
}

func (s *service) Update(ctx context.Context, id uint, payload trashrecord.UpdatePayload) (*trashrecord.TrashRecord, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	fields, err := payload.Fields()
	if err != nil {
		return nil, err
	}
	if _, err := s.Find(ctx, id); err != nil {
		return nil, err
	}
	if err := s.resolveParents(ctx, payload.CivilianID, payload.CollectorID); err != nil {
		return nil, err
	}
	updated, err := s.rr.Update(ctx, id, fields)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Trash record", id, "Failed to update trash record %d", id)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*trashrecord.TrashRecord, error) {
	deleted, err := s.rr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Trash record", id, "Failed to delete trash record %d", id)
	}
	return deleted, nil
}

// resolveParents checks the provided Civilian and collector Truck references
func (s *service) resolveParents(ctx context.Context, civilianID *uint, collectorID *uint) error {
	if _, err := internal.ResolveOptional(ctx, "Civilian", civilianID, s.cr.Get); err != nil {
		return err
	}
	if _, err := internal.ResolveOptional(ctx, "Truck", collectorID, s.tr.Get); err != nil {
		return err
	}
	return nil
}
