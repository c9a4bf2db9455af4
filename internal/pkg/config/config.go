package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/montirku/montirku/internal/pkg/models"
)

// InitConfig loads the .env file in local environments, then assembles the
// configuration from environment variables.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "montirku")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Mongo config
	configs.Mongo.URI = GetEnv("MONGO_URI", "mongodb://localhost:27017")
	configs.Mongo.Database = GetEnv("MONGO_DATABASE", "montirku")
	configs.Mongo.Timeout = GetEnvAsInt("MONGO_TIMEOUT", 10)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Postgres config (shop)
	configs.Postgres.Host = GetEnv("DB_HOST", "localhost")
	configs.Postgres.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Postgres.Username = GetEnv("DB_USERNAME", "")
	configs.Postgres.Password = GetEnv("DB_PASSWORD", "")
	configs.Postgres.Database = GetEnv("DB_DATABASE", "montirku_shop")
	configs.Postgres.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Postgres.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Postgres.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "montirku")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Directory config
	configs.Directory.DefaultRadiusKm = GetEnvAsFloat("DIRECTORY_DEFAULT_RADIUS_KM", 10.0)
	configs.Directory.MaxRadiusKm = GetEnvAsFloat("DIRECTORY_MAX_RADIUS_KM", 100.0)
	configs.Directory.GeohashPrecision = uint(GetEnvAsInt("DIRECTORY_GEOHASH_PRECISION", 5))

	// Identity config
	configs.Identity.CacheTTLSeconds = GetEnvAsInt("IDENTITY_CACHE_TTL_SECONDS", 300)

	// Shop config
	configs.Shop.Currency = GetEnv("SHOP_CURRENCY", "INR")
	configs.Shop.PaymentKeyID = GetEnv("SHOP_PAYMENT_KEY_ID", "")
	configs.Shop.PaymentKeySecret = GetEnv("SHOP_PAYMENT_KEY_SECRET", "")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
