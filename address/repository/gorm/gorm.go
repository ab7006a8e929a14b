package gorm

import (
	"context"

	"github.com/npesaras/clens/address"
	"github.com/npesaras/clens/persistence"
	"gorm.io/gorm"
)

type gormAddressRepository struct {
	store *persistence.Store[address.Address]
}

func NewGormAddressRepository(d *gorm.DB) address.Repository {
	return &gormAddressRepository{
		store: persistence.NewStore[address.Address](d, persistence.SoftDelete, PreloadRegion("")),
	}
}

// PreloadRegion loads the province, city and barangay of an Address found
// under prefix, ie: "Address." when preloading through a civilian.
func PreloadRegion(prefix string) persistence.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(prefix + "Province").Preload(prefix + "City").Preload(prefix + "Barangay")
	}
}

func (g *gormAddressRepository) Create(ctx context.Context, a address.Address) (*address.Address, error) {
	if err := g.store.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *gormAddressRepository) Get(ctx context.Context, id uint) (*address.Address, error) {
	return g.store.Get(ctx, persistence.ByID(id))
}

func (g *gormAddressRepository) List(ctx context.Context) ([]address.Address, error) {
	return g.store.List(ctx, persistence.OrderByID)
}

func (g *gormAddressRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*address.Address, error) {
	return g.store.Update(ctx, persistence.ByID(id), fields)
}

func (g *gormAddressRepository) Delete(ctx context.Context, id uint) (*address.Address, error) {
	return g.store.Delete(ctx, persistence.ByID(id))
}
