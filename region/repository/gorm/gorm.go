package gorm

import (
	"context"
	"errors"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/region"
	"gorm.io/gorm"
)

type gormRegionRepository struct {
	DB        *gorm.DB
	provinces *persistence.Store[region.Province]
	cities    *persistence.Store[region.City]
	barangays *persistence.Store[region.Barangay]
}

func NewGormRegionRepository(d *gorm.DB) region.Repository {
	return &gormRegionRepository{
		DB:        d,
		provinces: persistence.NewStore[region.Province](d, persistence.HardDelete),
		cities:    persistence.NewStore[region.City](d, persistence.HardDelete),
		barangays: persistence.NewStore[region.Barangay](d, persistence.HardDelete),
	}
}

func (g *gormRegionRepository) GetProvince(ctx context.Context, id uint) (*region.Province, error) {
	return g.provinces.Get(ctx, persistence.ByID(id))
}

func (g *gormRegionRepository) GetCityInProvince(ctx context.Context, id uint, provinceID uint) (*region.City, error) {
	return g.cities.Get(ctx, persistence.ByColumns(map[string]interface{}{
		"id":          id,
		"province_id": provinceID,
	}))
}

func (g *gormRegionRepository) GetBarangay(ctx context.Context, id uint) (*region.Barangay, error) {
	return g.barangays.Get(ctx, persistence.ByID(id))
}

func (g *gormRegionRepository) GetBarangayInCity(ctx context.Context, id uint, cityID uint) (*region.Barangay, error) {
	return g.barangays.Get(ctx, persistence.ByColumns(map[string]interface{}{
		"id":      id,
		"city_id": cityID,
	}))
}

func (g *gormRegionRepository) Import(ctx context.Context, seed region.Seed) (*region.ImportResult, error) {
	result := &region.ImportResult{}
	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sp := range seed.Provinces {
			province := region.Province{Code: sp.Code, Name: sp.Name}
			created, err := firstOrCreate(tx, &province, sp.Code)
			if err != nil {
				return err
			}
			if created {
				result.Provinces++
			}

			for _, sc := range sp.Cities {
				city := region.City{Code: sc.Code, Name: sc.Name, ProvinceID: province.ID}
				created, err := firstOrCreate(tx, &city, sc.Code)
				if err != nil {
					return err
				}
				if created {
					result.Cities++
				}

				for _, sb := range sc.Barangays {
					barangay := region.Barangay{Code: sb.Code, Name: sb.Name, ProvinceID: province.ID, CityID: city.ID}
					created, err := firstOrCreate(tx, &barangay, sb.Code)
					if err != nil {
						return err
					}
					if created {
						result.Barangays++
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, persistence.Translate(err)
	}
	return result, nil
}

// firstOrCreate loads the row matching code into v, inserting v when none exists
func firstOrCreate(tx *gorm.DB, v interface{}, code string) (bool, error) {
	err := tx.Where("code = ?", code).Take(v).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := tx.Create(v).Error; err != nil {
		return false, err
	}
	return true, nil
}
