package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/npesaras/clens/internal/app"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/logger"
	"github.com/npesaras/clens/persistence"
	"github.com/npesaras/clens/region"
	regionGorm "github.com/npesaras/clens/region/repository/gorm"
	"github.com/npesaras/clens/transport"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	var (
		cfg        config.Configuration
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:           "clens",
		Short:         "Waste management administration API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine, the environment may already be set
			_ = godotenv.Load()

			cfgPtr, err := config.New("clens", "yaml", configPath)
			if err != nil {
				return err
			}
			cfg = *cfgPtr
			logger.Init(cfg.Name, cfg.Log.Level, cfg.Environment == config.Production)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "/etc/clens/", "Directory containing clens.yaml")

	rootCmd.AddCommand(
		setupServeCommand(&cfg),
		setupMigrateCommand(&cfg),
		setupSeedCommand(&cfg),
	)
	if err := rootCmd.Execute(); err != nil {
		logger.Log.WithError(err).Error("clens failed")
		os.Exit(1)
	}
}

func setupServeCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := persistence.NewGorm(cfg.Database)
			if err != nil {
				return err
			}
			router, err := app.NewRouter(*cfg, db)
			if err != nil {
				return err
			}
			logger.Log.WithFields(logrus.Fields{
				"environment": cfg.Environment,
				"port":        cfg.Server.Port,
			}).Info("Starting server")
			return transport.RunHttp(*cfg, router)
		},
	}
}

func setupMigrateCommand(cfg *config.Configuration) *cobra.Command {
	var rollback bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open(*cfg)
			if err != nil {
				return err
			}
			if rollback {
				if err := persistence.Rollback(db); err != nil {
					return err
				}
				logger.Log.Info("Rolled back last migration")
				return nil
			}
			if err := persistence.Migrate(db); err != nil {
				return err
			}
			logger.Log.Info("Migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&rollback, "rollback", false, "Revert the most recent migration instead")
	return cmd
}

func setupSeedCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [regions.yaml]",
		Short: "Import provinces, cities and barangays",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			seed, err := region.ParseSeed(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			db, err := persistence.NewGorm(cfg.Database)
			if err != nil {
				return err
			}
			result, err := regionGorm.NewGormRegionRepository(db).Import(context.Background(), *seed)
			if err != nil {
				return err
			}
			logger.Log.WithFields(logrus.Fields{
				"provinces": result.Provinces,
				"cities":    result.Cities,
				"barangays": result.Barangays,
			}).Info("Regions imported")
			return nil
		},
	}
}

// open connects without running migrations
func open(cfg config.Configuration) (*gorm.DB, error) {
	dbCfg := cfg.Database
	dbCfg.AutoMigrate = false
	return persistence.NewGorm(dbCfg)
}
