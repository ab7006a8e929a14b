package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/sensordata"
	"gorm.io/gorm"
)

type gormSensorDataRepository struct {
	store *persistence.Store[sensordata.SensorData]
}

func NewGormSensorDataRepository(db *gorm.DB) sensordata.Repository {
	return &gormSensorDataRepository{
		store: persistence.NewStore[sensordata.SensorData](db, persistence.SoftDelete),
	}
}

func (g *gormSensorDataRepository) Create(ctx context.Context, d sensordata.SensorData) (*sensordata.SensorData, error) {
	if err := g.store.Create(ctx, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *gormSensorDataRepository) Get(ctx context.Context, id uint) (*sensordata.SensorData, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormSensorDataRepository) List(ctx context.Context) ([]sensordata.SensorData, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormSensorDataRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*sensordata.SensorData, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormSensorDataRepository) Delete(ctx context.Context, id uint) (*sensordata.SensorData, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
