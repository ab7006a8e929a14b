package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/trashstatistics"
	"gorm.io/gorm"
)

type gormTrashStatisticsRepository struct {
	store *persistence.Store[trashstatistics.TrashStatistics]
}

func NewGormTrashStatisticsRepository(d *gorm.DB) trashstatistics.Repository {
	return &gormTrashStatisticsRepository{
		store: persistence.NewStore[trashstatistics.TrashStatistics](d, persistence.SoftDelete),
	}
}

func (g *gormTrashStatisticsRepository) Create(ctx context.Context, t trashstatistics.TrashStatistics) (*trashstatistics.TrashStatistics, error) {
	if err := g.store.Create(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (g *gormTrashStatisticsRepository) Get(ctx context.Context, id uint) (*trashstatistics.TrashStatistics, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormTrashStatisticsRepository) List(ctx context.Context) ([]trashstatistics.TrashStatistics, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormTrashStatisticsRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*trashstatistics.TrashStatistics, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormTrashStatisticsRepository) Delete(ctx context.Context, id uint) (*trashstatistics.TrashStatistics, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
