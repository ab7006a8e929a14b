package gorm

import (
	"context"

	"github.com/npesaras/clens/admin"
	"github.com/npesaras/clens/persistence"
	"gorm.io/gorm"
)

type gormAdminRepository struct {
	store *persistence.Store[admin.Admin]
}

func NewGormAdminRepository(d *gorm.DB) admin.Repository {
	return &gormAdminRepository{
		store: persistence.NewStore[admin.Admin](d, persistence.SoftDelete,
			persistence.ActiveParent("user_id", "users"),
			func(db *gorm.DB) *gorm.DB { return db.Preload("User") },
		),
	}
}

func (g *gormAdminRepository) Create(ctx context.Context, a admin.Admin) (*admin.Admin, error) {
	if err := g.store.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *gormAdminRepository) Get(ctx context.Context, id uint) (*admin.Admin, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormAdminRepository) GetByUser(ctx context.Context, userID uint) (*admin.Admin, error) {
	return g.store.Get(ctx, persistence.ByColumns(map[string]interface{}{"user_id": userID}))
}

func (g *gormAdminRepository) List(ctx context.Context) ([]admin.Admin, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormAdminRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*admin.Admin, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormAdminRepository) Delete(ctx context.Context, id uint) (*admin.Admin, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
