package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/trashrecord"
	"gorm.io/gorm"
)

type gormTrashRecordRepository struct {
	store *persistence.Store[trashrecord.TrashRecord]
}

func NewGormTrashRecordRepository(d *gorm.DB) trashrecord.Repository {
	return &gormTrashRecordRepository{
		store: persistence.NewStore[trashrecord.TrashRecord](d, persistence.SoftDelete),
	}
}

func (g *gormTrashRecordRepository) Create(ctx context.Context, r trashrecord.TrashRecord) (*trashrecord.TrashRecord, error) {
	if err := g.store.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (g *gormTrashRecordRepository) Get(ctx context.Context, id uint) (*trashrecord.TrashRecord, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormTrashRecordRepository) List(ctx context.Context) ([]trashrecord.TrashRecord, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormTrashRecordRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*trashrecord.TrashRecord, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormTrashRecordRepository) Delete(ctx context.Context, id uint) (*trashrecord.TrashRecord, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
