package main

import (
	"fmt"
	"log"

	"github.com/vishwaszadte/ride-sharing-app-backend/configs"
	"github.com/vishwaszadte/ride-sharing-app-backend/middlewares"
	"github.com/vishwaszadte/ride-sharing-app-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	// Redis เป็น optional — ไม่มีก็แค่ไม่ cache สถานะ ride
	rdb := configs.NewRedisClient(cfg.RedisAddr)
	if rdb == nil {
		log.Println("redis unavailable, ride-status cache disabled")
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// เสิร์ฟรูป driver ที่อัปโหลด
	r.Static("/uploads", "./"+cfg.UploadDir)

	routes.RegisterRoutes(r, db, rdb, cfg)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
