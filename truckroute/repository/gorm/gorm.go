package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/truckroute"
	"gorm.io/gorm"
)

type gormTruckRouteRepository struct {
	store *persistence.Store[truckroute.TruckRoute]
}

func NewGormTruckRouteRepository(d *gorm.DB) truckroute.Repository {
	return &gormTruckRouteRepository{
		store: persistence.NewStore[truckroute.TruckRoute](d, persistence.HardDelete),
	}
}

func (g *gormTruckRouteRepository) Create(ctx context.Context, r truckroute.TruckRoute) (*truckroute.TruckRoute, error) {
	if err := g.store.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (g *gormTruckRouteRepository) Get(ctx context.Context, id uint) (*truckroute.TruckRoute, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormTruckRouteRepository) List(ctx context.Context) ([]truckroute.TruckRoute, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormTruckRouteRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*truckroute.TruckRoute, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormTruckRouteRepository) Delete(ctx context.Context, id uint) (*truckroute.TruckRoute, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
