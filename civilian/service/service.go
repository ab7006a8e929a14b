package service

import (
	"context"
	"errors"

	"github.com/npesaras/clens/address"
	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/validate"
	"github.com/npesaras/clens/user"
	"golang.org/x/sync/errgroup"
)

type service struct {
	cr civilian.Repository
	ur user.Repository
	ar address.Repository
}

func NewCivilianService(cr civilian.Repository, ur user.Repository, ar address.Repository) civilian.Service {
	return &service{
		cr: cr,
		ur: ur,
		ar: ar,
	}
}

func (s *service) Create(ctx context.Context, payload civilian.CreatePayload) (*civilian.Civilian, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	if err := s.resolveParents(ctx, &payload.UserID, &payload.AddressID); err != nil {
		return nil, err
	}
	if err := s.assertUnclaimed(ctx, payload.UserID); err != nil {
		return nil, err
	}
	created, err := s.cr.Create(ctx, civilian.Civilian{
		UserID:              payload.UserID,
		AddressID:           payload.AddressID,
		Level:               payload.Level,
		Exp:                 payload.Exp,
		Streak:              payload.Streak,
		LeaderboardRank:     payload.LeaderboardRank,
		TotalVolumeDisposed: payload.TotalVolumeDisposed,
		Points:              payload.Points,
	})
	if err != nil {
		return nil, internal.WrapCreateErrorf(err, "%v", civilian.ErrCivilianExists)
	}
	// Reload to pick up preloaded associations
	return s.Find(ctx, created.ID)
}

func (s *service) Find(ctx context.Context, id uint) (*civilian.Civilian, error) {
	found, err := s.cr.Get(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Civilian record", id, "Failed to retrieve civilian record %d", id)
	}
	return found, nil
}

func (s *service) FindByUser(ctx context.Context, userID uint) (*civilian.Civilian, error) {
	found, err := s.cr.GetByUser(ctx, userID)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Civilian record for user", userID, "Failed to retrieve civilian record of user %d", userID)
	}
	return found, nil
}

func (s *service) List(ctx context.Context) ([]civilian.Civilian, error) {
	civilians, err := s.cr.List(ctx)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve civilian records")
	}
	return civilians, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]civilian.LeaderboardEntry, error) {
	if limit < 1 || limit > civilian.MaxLeaderboardLimit {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", civilian.ErrInvalidLimit)
	}
	civilians, err := s.cr.Leaderboard(ctx, limit)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to retrieve leaderboard")
	}
	entries := make([]civilian.LeaderboardEntry, 0, len(civilians))
	for i, c := range civilians {
		entry := civilian.LeaderboardEntry{
			Rank:                i + 1,
			CivilianID:          c.ID,
			UserID:              c.UserID,
			Level:               c.Level,
			Points:              c.Points,
			TotalVolumeDisposed: c.TotalVolumeDisposed,
		}
		if c.User != nil {
			entry.Username = c.User.Username
			entry.FirstName = c.User.FirstName
			entry.LastName = c.User.LastName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *service) Update(ctx context.Context, id uint, payload civilian.UpdatePayload) (*civilian.Civilian, error) {
	if err := validate.Check(payload); err != nil {
		return nil, err
	}
	existing, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	userID := payload.UserID
	if userID != nil && *userID == existing.UserID {
		userID = nil
	}
	if err := s.resolveParents(ctx, userID, payload.AddressID); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := s.assertUnclaimed(ctx, *userID); err != nil {
			return nil, err
		}
	}
	updated, err := s.cr.Update(ctx, id, payload.Fields())
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Civilian record", id, "%v", civilian.ErrCivilianExists)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*civilian.Civilian, error) {
	deleted, err := s.cr.Delete(ctx, id)
	if err != nil {
		return nil, internal.WrapStoreErrorf(err, "Civilian record", id, "Failed to delete civilian record %d", id)
	}
	return deleted, nil
}

// resolveParents checks the referenced User and Address concurrently. A nil
// id is skipped. User errors win over Address errors.
func (s *service) resolveParents(ctx context.Context, userID *uint, addressID *uint) error {
	var userErr, addressErr error
	var g errgroup.Group
	g.Go(func() error {
		_, userErr = internal.ResolveOptional(ctx, "User", userID, s.ur.Get)
		return userErr
	})
	g.Go(func() error {
		_, addressErr = internal.ResolveOptional(ctx, "Address", addressID, s.ar.Get)
		return addressErr
	})
	if err := g.Wait(); err != nil {
		if userErr != nil {
			return userErr
		}
		return err
	}
	return nil
}

// assertUnclaimed fails when userID already has an active Civilian record
func (s *service) assertUnclaimed(ctx context.Context, userID uint) error {
	_, err := s.cr.GetByUser(ctx, userID)
	switch {
	case err == nil:
		return internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%v", civilian.ErrCivilianExists)
	case errors.Is(err, internal.ErrRecordNotFound):
		return nil
	}
	return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to check civilian records of user %d", userID)
}
