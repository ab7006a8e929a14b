package gorm

import (
	"context"

	"github.com/npesaras/clens/location"
	"github.com/npesaras/clens/persistence"
	"gorm.io/gorm"
)

type gormLocationRepository struct {
	store *persistence.Store[location.Location]
}

func NewGormLocationRepository(d *gorm.DB) location.Repository {
	return &gormLocationRepository{
		store: persistence.NewStore[location.Location](d, persistence.SoftDelete),
	}
}

func (g *gormLocationRepository) Create(ctx context.Context, l location.Location) (*location.Location, error) {
	if err := g.store.Create(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *gormLocationRepository) Get(ctx context.Context, id uint) (*location.Location, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormLocationRepository) List(ctx context.Context) ([]location.Location, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormLocationRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*location.Location, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormLocationRepository) Delete(ctx context.Context, id uint) (*location.Location, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
