package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/sensor"
	"gorm.io/gorm"
)

type gormSensorRepository struct {
	store *persistence.Store[sensor.Sensor]
}

func NewGormSensorRepository(d *gorm.DB) sensor.Repository {
	return &gormSensorRepository{
		store: persistence.NewStore[sensor.Sensor](d, persistence.HardDelete),
	}
}

func (g *gormSensorRepository) Create(ctx context.Context, s sensor.Sensor) (*sensor.Sensor, error) {
	if err := g.store.Create(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *gormSensorRepository) Get(ctx context.Context, id uint) (*sensor.Sensor, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormSensorRepository) List(ctx context.Context) ([]sensor.Sensor, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormSensorRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*sensor.Sensor, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormSensorRepository) Delete(ctx context.Context, id uint) (*sensor.Sensor, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
