package gorm_test

import (
	"context"
	"testing"

	"github.com/npesaras/clens/internal"
	"github.com/npesaras/clens/internal/testutil"
	"github.com/npesaras/clens/region"
	regionGorm "github.com/npesaras/clens/region/repository/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	rr := regionGorm.NewGormRegionRepository(db)

	result, err := rr.Import(ctx, testutil.Regions)
	require.NoError(t, err)
	assert.Equal(t, region.ImportResult{Provinces: 2, Cities: 2, Barangays: 3}, *result)

	t.Run("Idempotent", func(t *testing.T) {
		again, err := rr.Import(ctx, testutil.Regions)
		require.NoError(t, err)
		assert.Equal(t, region.ImportResult{}, *again)
	})

	t.Run("Adds new entries only", func(t *testing.T) {
		seed := region.Seed{Provinces: []region.SeedProvince{{
			Code: "PH-LAN",
			Name: "Lanao del Norte",
			Cities: []region.SeedCity{{
				Code:      "ILI",
				Name:      "Iligan City",
				Barangays: []region.SeedBarangay{{Code: "ILI-HIN", Name: "Hinaplanon"}},
			}},
		}}}
		added, err := rr.Import(ctx, seed)
		require.NoError(t, err)
		assert.Equal(t, region.ImportResult{Barangays: 1}, *added)

		barangay, err := rr.GetBarangayInCity(ctx, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, "Hinaplanon", barangay.Name)
		assert.Equal(t, uint(1), barangay.ProvinceID)
	})
}

func TestHierarchy(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	rr := testutil.SeedRegions(t, db)

	city, err := rr.GetCityInProvince(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "CDO", city.Code)

	_, err = rr.GetCityInProvince(ctx, 2, 1)
	assert.ErrorIs(t, err, internal.ErrRecordNotFound)

	_, err = rr.GetBarangayInCity(ctx, 3, 1)
	assert.ErrorIs(t, err, internal.ErrRecordNotFound)

	_, err = rr.GetProvince(ctx, 9)
	assert.ErrorIs(t, err, internal.ErrRecordNotFound)
}
