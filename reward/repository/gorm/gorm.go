package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/reward"
	"gorm.io/gorm"
)

type gormRewardRepository struct {
	store *persistence.Store[reward.Multiplier]
}

func NewGormRewardRepository(d *gorm.DB) reward.Repository {
	return &gormRewardRepository{
		store: persistence.NewStore[reward.Multiplier](d, persistence.HardDelete),
	}
}

func (g *gormRewardRepository) Create(ctx context.Context, m reward.Multiplier) (*reward.Multiplier, error) {
	if err := g.store.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (g *gormRewardRepository) Get(ctx context.Context, id uint) (*reward.Multiplier, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormRewardRepository) List(ctx context.Context) ([]reward.Multiplier, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormRewardRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*reward.Multiplier, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormRewardRepository) Delete(ctx context.Context, id uint) (*reward.Multiplier, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
