package models

// Config is the application configuration assembled from the environment
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Directory DirectoryConfig
	Identity  IdentityConfig
	Shop      ShopConfig
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig holds document store settings
type MongoConfig struct {
	URI      string
	Database string
	Timeout  int
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// PostgresConfig holds relational store settings for the shop
type PostgresConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// NATSConfig holds messaging settings
type NATSConfig struct {
	URL string
}

// JWTConfig holds token settings
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// LoggerConfig holds logging settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DirectoryConfig holds mechanic directory settings
type DirectoryConfig struct {
	DefaultRadiusKm  float64
	MaxRadiusKm      float64
	GeohashPrecision uint
}

// IdentityConfig holds identity cache settings
type IdentityConfig struct {
	CacheTTLSeconds int
}

// ShopConfig holds shop settings
type ShopConfig struct {
	Currency         string
	PaymentKeyID     string
	PaymentKeySecret string
}
