package routes

import (
	"time"

	"github.com/vishwaszadte/ride-sharing-app-backend/configs"
	"github.com/vishwaszadte/ride-sharing-app-backend/controllers"
	"github.com/vishwaszadte/ride-sharing-app-backend/middlewares"
	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/geocode"
	"github.com/vishwaszadte/ride-sharing-app-backend/pkg/storage"
	"github.com/vishwaszadte/ride-sharing-app-backend/repository"
	"github.com/vishwaszadte/ride-sharing-app-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	riderRepo := repository.NewRiderRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	rideRepo := repository.NewRideRepository(db)

	// External collaborators
	geocoder := geocode.NewClient(cfg.GeocoderURL, cfg.GeocoderAPIKey)
	photos := storage.NewStore(cfg.UploadDir)
	statusCache := services.NewStatusCache(rdb, 30*time.Second)

	// Services
	authSvc := services.NewAuthService(riderRepo, driverRepo, cfg.JWTSecret, cfg.JWTTTL)
	rideSvc := services.NewRideService(db, rideRepo, riderRepo, driverRepo, statusCache)
	matchSvc := services.NewMatchService(riderRepo, driverRepo, rideRepo)
	locationSvc := services.NewLocationService(geocoder, riderRepo, driverRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, photos)
	riderCtrl := controllers.NewRiderController(matchSvc, rideSvc, locationSvc)
	driverCtrl := controllers.NewDriverController(matchSvc, rideSvc, locationSvc)

	// Rider (public)
	rider := r.Group("/rider")
	{
		rider.POST("/signup", authCtrl.RiderSignup)
		rider.POST("/login", authCtrl.RiderLogin)
	}

	// Rider (protected)
	riderAuth := rider.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "rider"))
	{
		riderAuth.GET("/home", riderCtrl.Home)
		riderAuth.POST("/update-location", riderCtrl.UpdateLocation)
		riderAuth.POST("/request-ride", riderCtrl.RequestRide)
		riderAuth.GET("/get-ride-info", riderCtrl.GetRideInfo)
		riderAuth.GET("/get-ride-status", riderCtrl.GetRideStatus)
		riderAuth.GET("/driver-detail/:driverID", riderCtrl.DriverDetail)
	}

	// Driver (public)
	driver := r.Group("/driver")
	{
		driver.POST("/signup", authCtrl.DriverSignup) // multipart พร้อมไฟล์ photo
		driver.POST("/login", authCtrl.DriverLogin)
	}

	// Driver (protected)
	driverAuth := driver.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "driver"))
	{
		driverAuth.POST("/update-location", driverCtrl.UpdateLocation)
		driverAuth.GET("/get-rides", driverCtrl.GetRides)
		driverAuth.PUT("/update-ride/:rideID", driverCtrl.UpdateRide)
		driverAuth.GET("/get-ride/:rideID", driverCtrl.GetRide)
	}
}
