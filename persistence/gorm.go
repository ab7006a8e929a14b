package persistence

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/npesaras/clens/address"
	"github.com/npesaras/clens/admin"
	"github.com/npesaras/clens/civilian"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/logger"
	"github.com/npesaras/clens/location"
	"github.com/npesaras/clens/region"
	"github.com/npesaras/clens/reward"
	"github.com/npesaras/clens/schedule"
	"github.com/npesaras/clens/sensor"
	"github.com/npesaras/clens/sensordata"
	"github.com/npesaras/clens/trashrecord"
	"github.com/npesaras/clens/trashstatistics"
	"github.com/npesaras/clens/truck"
	"github.com/npesaras/clens/truckroute"
	"github.com/npesaras/clens/user"
	"github.com/npesaras/clens/waterquality"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// NewGorm connects to postgres and, when enabled, runs pending migrations
func NewGorm(cfg config.Database) (*gorm.DB, error) {
	db, err := Open(postgres.Open(cfg.URL), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Open opens a connection through dialector. Driver errors are translated so
// Translate can recognize constraint violations.
func Open(dialector gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(logger.Log, gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

// Migrate applies every migration that has not run yet
func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).Migrate()
}

// Rollback reverts the most recent migration
func Rollback(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).RollbackLast()
}

func tables(models ...interface{}) *gormigrate.Migration {
	return &gormigrate.Migration{
		Migrate: func(tx *gorm.DB) error {
			return tx.AutoMigrate(models...)
		},
		Rollback: func(tx *gorm.DB) error {
			// Children first
			for i := len(models) - 1; i >= 0; i-- {
				if err := tx.Migrator().DropTable(models[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func migrations() []*gormigrate.Migration {
	steps := []struct {
		id     string
		models []interface{}
	}{
		{"20250601_create_region_tables", []interface{}{&region.Province{}, &region.City{}, &region.Barangay{}}},
		{"20250601_create_account_tables", []interface{}{&user.User{}, &admin.Admin{}, &address.Address{}, &civilian.Civilian{}}},
		{"20250601_create_fleet_tables", []interface{}{&truck.Truck{}, &location.Location{}, &truckroute.TruckRoute{}}},
		{"20250601_create_waste_tables", []interface{}{&trashrecord.TrashRecord{}, &trashstatistics.TrashStatistics{}}},
		{"20250601_create_sensor_tables", []interface{}{&sensor.Sensor{}, &sensordata.SensorData{}, &waterquality.WaterQualityStatistics{}}},
		{"20250601_create_program_tables", []interface{}{&reward.Multiplier{}, &schedule.Schedule{}}},
	}

	list := make([]*gormigrate.Migration, 0, len(steps))
	for _, step := range steps {
		m := tables(step.models...)
		m.ID = step.id
		list = append(list, m)
	}
	return list
}
