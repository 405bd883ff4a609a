package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Pricing  PricingConfig
	Location LocationConfig
	Cache    CacheConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // seconds
	WriteTimeout    int // seconds
	ShutdownTimeout int // seconds
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address          string
	LookupdAddresses []string
	Channel          string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PricingConfig holds deployment constants used by the pricing engine
type PricingConfig struct {
	CityCenter         Coordinate `json:"city_center"`
	DeadheadReference  Coordinate `json:"deadhead_reference"`
	GSTRate            float64    `json:"gst_rate"`
	PlatformGSTRate    float64    `json:"platform_gst_rate"`
	DefaultPlatformFee float64    `json:"default_platform_fee"`
	RegularBundledKm   float64    `json:"regular_bundled_km"`
	SlabMaxKm          float64    `json:"slab_max_km"`
}

// LocationConfig holds trajectory and sampling settings
type LocationConfig struct {
	MaxHopKm         float64       `json:"max_hop_km"`
	SampleInterval   time.Duration `json:"sample_interval"`
	TTL              time.Duration `json:"ttl"`
	GeohashPrecision uint          `json:"geohash_precision"`
}

// CacheConfig controls the fare configuration read-through cache
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// DefaultPricingConfig returns the pricing constants used when nothing is configured
func DefaultPricingConfig() PricingConfig {
	center := Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	return PricingConfig{
		CityCenter:         center,
		DeadheadReference:  center,
		GSTRate:            0.05,
		PlatformGSTRate:    0.18,
		DefaultPlatformFee: 10,
		RegularBundledKm:   4,
		SlabMaxKm:          150,
	}
}

// DefaultLocationConfig returns the trajectory settings used when nothing is configured
func DefaultLocationConfig() LocationConfig {
	return LocationConfig{
		MaxHopKm:         0.5,
		SampleInterval:   5 * time.Second,
		TTL:              24 * time.Hour,
		GeohashPrecision: 9,
	}
}
