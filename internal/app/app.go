package app

import (
	"github.com/gin-gonic/gin"
	addressGorm "github.com/npesaras/clens/address/repository/gorm"
	addressService "github.com/npesaras/clens/address/service"
	addressTransport "github.com/npesaras/clens/address/transport"
	adminGorm "github.com/npesaras/clens/admin/repository/gorm"
	adminService "github.com/npesaras/clens/admin/service"
	adminTransport "github.com/npesaras/clens/admin/transport"
	civilianGorm "github.com/npesaras/clens/civilian/repository/gorm"
	civilianService "github.com/npesaras/clens/civilian/service"
	civilianTransport "github.com/npesaras/clens/civilian/transport"
	"github.com/npesaras/clens/internal/config"
	"github.com/npesaras/clens/internal/metrics"
	locationGorm "github.com/npesaras/clens/location/repository/gorm"
	locationService "github.com/npesaras/clens/location/service"
	locationTransport "github.com/npesaras/clens/location/transport"
	regionGorm "github.com/npesaras/clens/region/repository/gorm"
	rewardGorm "github.com/npesaras/clens/reward/repository/gorm"
	rewardService "github.com/npesaras/clens/reward/service"
	rewardTransport "github.com/npesaras/clens/reward/transport"
	scheduleGorm "github.com/npesaras/clens/schedule/repository/gorm"
	scheduleService "github.com/npesaras/clens/schedule/service"
	scheduleTransport "github.com/npesaras/clens/schedule/transport"
	sensorGorm "github.com/npesaras/clens/sensor/repository/gorm"
	sensorService "github.com/npesaras/clens/sensor/service"
	sensorTransport "github.com/npesaras/clens/sensor/transport"
	sensordataGorm "github.com/npesaras/clens/sensordata/repository/gorm"
	sensordataService "github.com/npesaras/clens/sensordata/service"
	sensordataTransport "github.com/npesaras/clens/sensordata/transport"
	"github.com/npesaras/clens/transport"
	trashrecordGorm "github.com/npesaras/clens/trashrecord/repository/gorm"
	trashrecordService "github.com/npesaras/clens/trashrecord/service"
	trashrecordTransport "github.com/npesaras/clens/trashrecord/transport"
	trashstatisticsGorm "github.com/npesaras/clens/trashstatistics/repository/gorm"
	trashstatisticsService "github.com/npesaras/clens/trashstatistics/service"
	trashstatisticsTransport "github.com/npesaras/clens/trashstatistics/transport"
	truckGorm "github.com/npesaras/clens/truck/repository/gorm"
	truckService "github.com/npesaras/clens/truck/service"
	truckTransport "github.com/npesaras/clens/truck/transport"
	truckrouteGorm "github.com/npesaras/clens/truckroute/repository/gorm"
	truckrouteService "github.com/npesaras/clens/truckroute/service"
	truckrouteTransport "github.com/npesaras/clens/truckroute/transport"
	userGorm "github.com/npesaras/clens/user/repository/gorm"
	userService "github.com/npesaras/clens/user/service"
	userTransport "github.com/npesaras/clens/user/transport"
	waterqualityGorm "github.com/npesaras/clens/waterquality/repository/gorm"
	waterqualityService "github.com/npesaras/clens/waterquality/service"
	waterqualityTransport "github.com/npesaras/clens/waterquality/transport"
	"gorm.io/gorm"
)

// NewRouter wires every repository, service and route on top of db
func NewRouter(cfg config.Configuration, db *gorm.DB) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Setup repositories
	regionRepository := regionGorm.NewGormRegionRepository(db)
	userRepository := userGorm.NewGormUserRepository(db)
	adminRepository := adminGorm.NewGormAdminRepository(db)
	addressRepository := addressGorm.NewGormAddressRepository(db)
	civilianRepository := civilianGorm.NewGormCivilianRepository(db)
	truckRepository := truckGorm.NewGormTruckRepository(db)
	locationRepository := locationGorm.NewGormLocationRepository(db)
	truckRouteRepository := truckrouteGorm.NewGormTruckRouteRepository(db)
	trashRecordRepository := trashrecordGorm.NewGormTrashRecordRepository(db)
	trashStatisticsRepository := trashstatisticsGorm.NewGormTrashStatisticsRepository(db)
	sensorRepository := sensorGorm.NewGormSensorRepository(db)
	sensorDataRepository := sensordataGorm.NewGormSensorDataRepository(db)
	waterQualityRepository := waterqualityGorm.NewGormWaterQualityRepository(db)
	rewardRepository := rewardGorm.NewGormRewardRepository(db)
	scheduleRepository := scheduleGorm.NewGormScheduleRepository(db)
	// Setup services
	userService := userService.NewUserService(cfg, userRepository)
	adminService := adminService.NewAdminService(adminRepository, userRepository)
	addressService := addressService.NewAddressService(addressRepository, regionRepository)
	civilianService := civilianService.NewCivilianService(civilianRepository, userRepository, addressRepository)
	truckService := truckService.NewTruckService(truckRepository, userRepository)
	locationService := locationService.NewLocationService(locationRepository, truckRepository)
	truckRouteService := truckrouteService.NewTruckRouteService(truckRouteRepository, truckRepository)
	trashRecordService := trashrecordService.NewTrashRecordService(trashRecordRepository, civilianRepository, truckRepository)
	trashStatisticsService := trashstatisticsService.NewTrashStatisticsService(trashStatisticsRepository, civilianRepository, regionRepository)
	sensorService := sensorService.NewSensorService(sensorRepository, regionRepository)
	sensorDataService := sensordataService.NewSensorDataService(sensorDataRepository, sensorRepository)
	waterQualityService := waterqualityService.NewWaterQualityService(waterQualityRepository, sensorRepository)
	rewardService := rewardService.NewRewardService(rewardRepository, regionRepository)
	scheduleService := scheduleService.NewScheduleService(scheduleRepository, regionRepository)

	// Setup HTTP Server
	router := transport.NewHttp(cfg)

	// Attach Middlewares
	//
	// Order of execution:
	// 1. Logger tags the request and logs the final status
	// 2. Metrics records the final status and latency
	// 3. Error Middleware renders any error generated below it
	// 4. Recovery turns panics into errors
	// 5. Rate Limiter
	// 6. Security Middleware (Adds essential security headers to request)
	// 7. CORS
	router.Use(transport.LoggerMiddleware())
	if cfg.Server.Metrics {
		m := metrics.New(cfg.Name)
		router.Use(m.Middleware())
		m.Register(router)
	}
	router.Use(transport.ErrorMiddleware(), transport.RecoveryMiddleware())
	if cfg.Server.RPS > 0 {
		router.Use(transport.RateLimiterMiddleware(cfg.Server.RPS))
	}
	router.Use(transport.SecurityMiddleware(cfg), transport.CorsMiddleware(cfg))

	// Unauthenticated routes
	transport.NewHealthHttp(cfg, sqlDB, router)

	// Attach routes
	api := router.Group("", transport.AuthMiddleware(cfg.Auth.AccessToken))
	userTransport.NewUserHttp(userService, api)
	adminTransport.NewAdminHttp(adminService, api)
	civilianTransport.NewCivilianHttp(civilianService, api)
	addressTransport.NewAddressHttp(addressService, api)
	truckTransport.NewTruckHttp(truckService, api)
	locationTransport.NewLocationHttp(locationService, api)
	truckrouteTransport.NewTruckRouteHttp(truckRouteService, api)
	trashrecordTransport.NewTrashRecordHttp(trashRecordService, api)
	sensorTransport.NewSensorHttp(sensorService, api)
	sensordataTransport.NewSensorDataHttp(sensorDataService, api)
	trashstatisticsTransport.NewTrashStatisticsHttp(trashStatisticsService, api)
	waterqualityTransport.NewWaterQualityHttp(waterQualityService, api)
	scheduleTransport.NewScheduleHttp(scheduleService, api)
	rewardTransport.NewRewardHttp(rewardService, api)

	return router, nil
}
