package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value the application needs.
type AppConfig struct {
	Port           string
	Env            string
	MongoMode      string
	MongoURI       string
	TokenSecretKey []byte
	CloudinaryURL  string
}

// Load reads configuration from a .env file or the environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		MongoMode:     getEnv("MONGO_MODE", "local"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}

	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			log.Fatal("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/merobazar")
	}

	key := getEnv("TOKEN_SECRET_KEY", "")
	if len(key) != 32 {
		log.Fatal("TOKEN_SECRET_KEY must be 32 characters long!")
	}
	cfg.TokenSecretKey = []byte(key)

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
