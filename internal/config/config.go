package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	MongoURI       string
	MongoDB        string
	Port           string
	JWTSecret      string
	WhatsAppNumber string
	CacheTTL       time.Duration
}

func LoadConfig() *Config {
	// Solo cargar .env en desarrollo local
	// En producción las variables vienen del entorno del contenedor
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			zap.L().Warn("Error loading .env file", zap.Error(err))
		} else {
			zap.L().Info("✅ .env file loaded successfully")
		}
	} else {
		zap.L().Info("🌐 Using system environment variables")
	}

	return &Config{
		MongoURI:       getEnv("MONGO_URI", ""),
		MongoDB:        getEnv("MONGO_DB", "tiendaArte"),
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", ""),
		CacheTTL:       getEnvSeconds("CACHE_TTL", 120*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		zap.L().Warn("Invalid duration value, using fallback", zap.String("key", key), zap.String("value", value))
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
