package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/region"
	regionGorm "github.com/npesaras/clens/region/repository/gorm"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Clock is a controllable time source for gorm's NowFunc. Every call advances
// it by a second so consecutive writes get distinct timestamps.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// NewDB opens a migrated in-memory sqlite database with foreign keys enforced
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := persistence.Open(sqlite.Open("file::memory:?_foreign_keys=1"), gormlogger.Silent)
	require.NoError(t, err)

	clock := &Clock{now: time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)}
	db.Config.NowFunc = clock.Now

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection would get its own in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, persistence.Migrate(db))
	return db
}

// Regions is the reference data seeded by SeedRegions
var Regions = region.Seed{
	Provinces: []region.SeedProvince{
		{
			Code: "PH-LAN",
			Name: "Lanao del Norte",
			Cities: []region.SeedCity{
				{
					Code: "ILI",
					Name: "Iligan City",
					Barangays: []region.SeedBarangay{
						{Code: "ILI-TIB", Name: "Tibanga"},
						{Code: "ILI-PAL", Name: "Palao"},
					},
				},
			},
		},
		{
			Code: "PH-MSC",
			Name: "Misamis Oriental",
			Cities: []region.SeedCity{
				{
					Code: "CDO",
					Name: "Cagayan de Oro",
					Barangays: []region.SeedBarangay{
						{Code: "CDO-CAR", Name: "Carmen"},
					},
				},
			},
		},
	},
}

// SeedRegions imports Regions. Ids are assigned in order: provinces 1-2,
// cities 1-2 and barangays 1-3.
func SeedRegions(t testing.TB, db *gorm.DB) region.Repository {
	t.Helper()

	rr := regionGorm.NewGormRegionRepository(db)
	_, err := rr.Import(context.Background(), Regions)
	require.NoError(t, err)
	return rr
}
