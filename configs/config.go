package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource       string
	Port           string
	JWTSecret      string
	JWTTTL         time.Duration
	GeocoderURL    string
	GeocoderAPIKey string
	RedisAddr      string
	UploadDir      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "rides.db"),
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         time.Duration(48) * time.Hour, // token อายุ 48 ชม.
		GeocoderURL:    getEnv("GEOCODER_URL", "https://geocode.maps.co"),
		GeocoderAPIKey: os.Getenv("GEOCODER_API_KEY"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
