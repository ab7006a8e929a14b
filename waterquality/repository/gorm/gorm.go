package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/waterquality"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormWaterQualityRepository struct {
	store *persistence.Store[waterquality.WaterQualityStatistics]
}

func NewGormWaterQualityRepository(d *gorm.DB) waterquality.Repository {
	return &gormWaterQualityRepository{
		store: persistence.NewStore[waterquality.WaterQualityStatistics](d, persistence.HardDelete),
	}
}

func byKey(key waterquality.Key) persistence.Scope {
	return persistence.ByColumns(map[string]interface{}{
		"interval":   key.Interval,
		"start_date": key.StartDate,
	})
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Table: clause.CurrentTable, Name: "start_date"}, Desc: true},
		{Column: clause.Column{Table: clause.CurrentTable, Name: "interval"}},
	}})
}

func (g *gormWaterQualityRepository) Create(ctx context.Context, w waterquality.WaterQualityStatistics) (*waterquality.WaterQualityStatistics, error) {
	if err := g.store.Create(ctx, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (g *gormWaterQualityRepository) Get(ctx context.Context, key waterquality.Key) (*waterquality.WaterQualityStatistics, error) {
	return g.store.Get(ctx, byKey(key))
}

func (g *gormWaterQualityRepository) List(ctx context.Context) ([]waterquality.WaterQualityStatistics, error) {
	return g.store.List(ctx, newestFirst)
}

func (g *gormWaterQualityRepository) Update(ctx context.Context, key waterquality.Key, fields map[string]interface{}) (*waterquality.WaterQualityStatistics, error) {
	return g.store.Update(ctx, byKey(key), fields)
}

func (g *gormWaterQualityRepository) Delete(ctx context.Context, key waterquality.Key) (*waterquality.WaterQualityStatistics, error) {
	return g.store.Delete(ctx, byKey(key))
}
