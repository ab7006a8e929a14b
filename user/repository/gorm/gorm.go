package gorm

import (
	"context"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/user"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	store *persistence.Store[user.User]
}

func NewGormUserRepository(d *gorm.DB) user.Repository {
	return &gormUserRepository{
		store: persistence.NewStore[user.User](d, persistence.SoftDelete),
	}
}

func (g *gormUserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	if err := g.store.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *gormUserRepository) Get(ctx context.Context, id uint) (*user.User, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormUserRepository) List(ctx context.Context) ([]user.User, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormUserRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*user.User, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormUserRepository) Delete(ctx context.Context, id uint) (*user.User, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
