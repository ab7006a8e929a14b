package gorm

import (
	"context"

	addressGorm "github.com/npesaras/clens/address/repository/gorm"
	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/persistence"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormCivilianRepository struct {
	store *persistence.Store[civilian.Civilian]
}

func NewGormCivilianRepository(d *gorm.DB) civilian.Repository {
	return &gormCivilianRepository{
		store: persistence.NewStore[civilian.Civilian](d, persistence.SoftDelete,
			persistence.ActiveParent("user_id", "users"),
			persistence.ActiveParent("address_id", "address"),
			func(db *gorm.DB) *gorm.DB { return db.Preload("User").Preload("Address") },
			addressGorm.PreloadRegion("Address."),
		),
	}
}

func (g *gormCivilianRepository) Create(ctx context.Context, c civilian.Civilian) (*civilian.Civilian, error) {
	if err := g.store.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (g *gormCivilianRepository) Get(ctx context.Context, id uint) (*civilian.Civilian, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormCivilianRepository) GetByUser(ctx context.Context, userID uint) (*civilian.Civilian, error) {
	return g.store.Get(ctx, persistence.ByColumns(map[string]interface{}{"user_id": userID}))
}

func (g *gormCivilianRepository) List(ctx context.Context) ([]civilian.Civilian, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormCivilianRepository) Leaderboard(ctx context.Context, limit int) ([]civilian.Civilian, error) {
	return g.store.List(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Table: clause.CurrentTable, Name: "points"}, Desc: true},
			{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}},
		}}).Limit(limit)
	})
}

func (g *gormCivilianRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*civilian.Civilian, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormCivilianRepository) Delete(ctx context.Context, id uint) (*civilian.Civilian, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
