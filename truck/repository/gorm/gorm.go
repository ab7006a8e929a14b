package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/truck"
	"gorm.io/gorm"
)

type gormTruckRepository struct {
	store *persistence.Store[truck.Truck]
}

func NewGormTruckRepository(d *gorm.DB) truck.Repository {
	return &gormTruckRepository{
		store: persistence.NewStore[truck.Truck](d, persistence.SoftDelete),
	}
}

func (g *gormTruckRepository) Create(ctx context.Context, t truck.Truck) (*truck.Truck, error) {
	if err := g.store.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *gormTruckRepository) Get(ctx context.Context, id uint) (*truck.Truck, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormTruckRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	return g.store.Exists(ctx, persistence.ByColumns(map[string]interface{}{"user_id": userID}))
}

func (g *gormTruckRepository) List(ctx context.Context) ([]truck.Truck, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormTruckRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*truck.Truck, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormTruckRepository) Delete(ctx context.Context, id uint) (*truck.Truck, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
