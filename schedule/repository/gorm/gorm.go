package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/schedule"
	"gorm.io/gorm"
)

type gormScheduleRepository struct {
	store *persistence.Store[schedule.Schedule]
}

func NewGormScheduleRepository(d *gorm.DB) schedule.Repository {
	return &gormScheduleRepository{
		store: persistence.NewStore[schedule.Schedule](d, persistence.HardDelete),
	}
}

func (g *gormScheduleRepository) Create(ctx context.Context, s schedule.Schedule) (*schedule.Schedule, error) {
	if err := g.store.Create(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *gormScheduleRepository) Get(ctx context.Context, id uint) (*schedule.Schedule, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormScheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormScheduleRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*schedule.Schedule, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormScheduleRepository) Delete(ctx context.Context, id uint) (*schedule.Schedule, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
