package config

import (
	"log"
	"strings"
	"time"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional file followed by the environment.
// Environment variables always win over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if strings.HasSuffix(configPath, ".env") {
			v.SetConfigType("env")
		}
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	return load(v)
}

func setDefaults(v *viper.Viper) {
	pricing := models.DefaultPricingConfig()
	location := models.DefaultLocationConfig()

	v.SetDefault("APP_NAME", "fare-service")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 9995)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE", "fares")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_LOOKUPD_ADDRESSES", "")
	v.SetDefault("NSQ_CHANNEL", "fare-service")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "nebengjek")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("PRICING_CITY_CENTER_LAT", pricing.CityCenter.Latitude)
	v.SetDefault("PRICING_CITY_CENTER_LNG", pricing.CityCenter.Longitude)
	v.SetDefault("PRICING_GST_RATE", pricing.GSTRate)
	v.SetDefault("PRICING_PLATFORM_GST_RATE", pricing.PlatformGSTRate)
	v.SetDefault("PRICING_DEFAULT_PLATFORM_FEE", pricing.DefaultPlatformFee)
	v.SetDefault("PRICING_REGULAR_BUNDLED_KM", pricing.RegularBundledKm)
	v.SetDefault("PRICING_SLAB_MAX_KM", pricing.SlabMaxKm)

	v.SetDefault("LOCATION_MAX_HOP_KM", location.MaxHopKm)
	v.SetDefault("LOCATION_SAMPLE_INTERVAL", location.SampleInterval)
	v.SetDefault("LOCATION_TTL", location.TTL)
	v.SetDefault("LOCATION_GEOHASH_PRECISION", location.GeohashPrecision)

	v.SetDefault("FARE_CONFIG_CACHE_ENABLED", true)
	v.SetDefault("FARE_CONFIG_CACHE_TTL", 5*time.Minute)
}

func load(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.LookupdAddresses = splitList(v.GetString("NSQ_LOOKUPD_ADDRESSES"))
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Pricing config
	configs.Pricing.CityCenter = models.Coordinate{
		Latitude:  v.GetFloat64("PRICING_CITY_CENTER_LAT"),
		Longitude: v.GetFloat64("PRICING_CITY_CENTER_LNG"),
	}
	configs.Pricing.DeadheadReference = configs.Pricing.CityCenter
	if v.IsSet("PRICING_DEADHEAD_REF_LAT") && v.IsSet("PRICING_DEADHEAD_REF_LNG") {
		configs.Pricing.DeadheadReference = models.Coordinate{
			Latitude:  v.GetFloat64("PRICING_DEADHEAD_REF_LAT"),
			Longitude: v.GetFloat64("PRICING_DEADHEAD_REF_LNG"),
		}
	}
	configs.Pricing.GSTRate = v.GetFloat64("PRICING_GST_RATE")
	configs.Pricing.PlatformGSTRate = v.GetFloat64("PRICING_PLATFORM_GST_RATE")
	configs.Pricing.DefaultPlatformFee = v.GetFloat64("PRICING_DEFAULT_PLATFORM_FEE")
	configs.Pricing.RegularBundledKm = v.GetFloat64("PRICING_REGULAR_BUNDLED_KM")
	configs.Pricing.SlabMaxKm = v.GetFloat64("PRICING_SLAB_MAX_KM")

	// Location config
	configs.Location.MaxHopKm = v.GetFloat64("LOCATION_MAX_HOP_KM")
	configs.Location.SampleInterval = v.GetDuration("LOCATION_SAMPLE_INTERVAL")
	configs.Location.TTL = v.GetDuration("LOCATION_TTL")
	configs.Location.GeohashPrecision = v.GetUint("LOCATION_GEOHASH_PRECISION")

	// Cache config
	configs.Cache.Enabled = v.GetBool("FARE_CONFIG_CACHE_ENABLED")
	configs.Cache.TTL = v.GetDuration("FARE_CONFIG_CACHE_TTL")

	return configs
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
