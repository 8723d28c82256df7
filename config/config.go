package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/weather-lookup/internal/location"
	"ulascansenturk/weather-lookup/internal/providers"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	GeocodingBaseURL  string
	ForecastBaseURL   string
	OutboundTimeout   time.Duration
	OutboundRateLimit float64
	OutboundRateBurst int
	SearchLimit       int
	SearchLanguage    string

	ZipkinEndpoint string

	LocationLatitude  string
	LocationLongitude string
	LocationLocality  string
	LocationCountry   string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-lookup")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("OUTBOUND_TIMEOUT", 10*time.Second)
	v.SetDefault("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com")
	v.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("SEARCH_LIMIT", 5)
	v.SetDefault("SEARCH_LANGUAGE", "en")
	v.SetDefault("OUTBOUND_RATE_LIMIT", 0)
	v.SetDefault("OUTBOUND_RATE_BURST", 1)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		ServerAddress:     v.GetString("SERVER_ADDRESS"),
		DBName:            v.GetString("DATABASE_NAME"),
		DBPassword:        v.GetString("DATABASE_PASSWORD"),
		DBUser:            v.GetString("DATABASE_USER"),
		DBPort:            v.GetString("DATABASE_PORT"),
		DBHost:            v.GetString("DATABASE_HOST"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		HTTPTimeout:       v.GetInt32("HTTP_TIMEOUT"),
		GeocodingBaseURL:  v.GetString("GEOCODING_BASE_URL"),
		ForecastBaseURL:   v.GetString("FORECAST_BASE_URL"),
		OutboundTimeout:   v.GetDuration("OUTBOUND_TIMEOUT"),
		OutboundRateLimit: v.GetFloat64("OUTBOUND_RATE_LIMIT"),
		OutboundRateBurst: v.GetInt("OUTBOUND_RATE_BURST"),
		SearchLimit:       v.GetInt("SEARCH_LIMIT"),
		SearchLanguage:    v.GetString("SEARCH_LANGUAGE"),
		ZipkinEndpoint:    v.GetString("ZIPKIN_ENDPOINT"),
		LocationLatitude:  v.GetString("LOCATION_LATITUDE"),
		LocationLongitude: v.GetString("LOCATION_LONGITUDE"),
		LocationLocality:  v.GetString("LOCATION_LOCALITY"),
		LocationCountry:   v.GetString("LOCATION_COUNTRY"),
	}

	if _, err := config.LocationCoordinates(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// IsDevelopment switches the server to human-readable console logs.
func (c *Config) IsDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// DatabaseEnabled reports whether the lookup log should be connected.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) TracingEnabled() bool {
	return c.ZipkinEndpoint != ""
}

func (c *Config) GeocodingClientConfig(logger *zerolog.Logger) providers.ClientConfig {
	return c.clientConfig(c.GeocodingBaseURL, logger)
}

func (c *Config) ForecastClientConfig(logger *zerolog.Logger) providers.ClientConfig {
	return c.clientConfig(c.ForecastBaseURL, logger)
}

func (c *Config) clientConfig(baseURL string, logger *zerolog.Logger) providers.ClientConfig {
	return providers.ClientConfig{
		BaseURL:   baseURL,
		Timeout:   c.OutboundTimeout,
		RateLimit: c.OutboundRateLimit,
		RateBurst: c.OutboundRateBurst,
		Logger:    logger,
	}
}

// LocationCoordinates returns nil when no static position is configured.
func (c *Config) LocationCoordinates() (*location.Coordinates, error) {
	latRaw := strings.TrimSpace(c.LocationLatitude)
	lonRaw := strings.TrimSpace(c.LocationLongitude)

	if latRaw == "" && lonRaw == "" {
		return nil, nil
	}
	if latRaw == "" || lonRaw == "" {
		return nil, fmt.Errorf("LOCATION_LATITUDE and LOCATION_LONGITUDE must be set together")
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("invalid LOCATION_LATITUDE %q", latRaw)
	}

	lon, err := strconv.ParseFloat(lonRaw, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid LOCATION_LONGITUDE %q", lonRaw)
	}

	return &location.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// LocationProvider builds the static provider used when the host has no
// positioning hardware.
func (c *Config) LocationProvider() (*location.StaticProvider, error) {
	coords, err := c.LocationCoordinates()
	if err != nil {
		return nil, err
	}

	return location.NewStaticProvider(coords, location.Place{
		Locality: c.LocationLocality,
		Country:  c.LocationCountry,
	}), nil
}
