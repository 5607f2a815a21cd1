package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, security settings)
// - default: Values common across all environments (layout, rates, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Facility FacilityConfig
	Pricing  PricingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// FacilityConfig describes the physical layout. The allocation algorithm is
// independent of the specific counts; these defaults mirror a three-story
// garage with ~165 spots per floor.
type FacilityConfig struct {
	Floors             int `envconfig:"FACILITY_FLOORS" default:"3"`
	CompactPerFloor    int `envconfig:"FACILITY_COMPACT_PER_FLOOR" default:"33"`
	RegularPerFloor    int `envconfig:"FACILITY_REGULAR_PER_FLOOR" default:"116"`
	LargePerFloor      int `envconfig:"FACILITY_LARGE_PER_FLOOR" default:"10"`
	AccessiblePerFloor int `envconfig:"FACILITY_ACCESSIBLE_PER_FLOOR" default:"6"`
}

type PricingConfig struct {
	CompactRateCents    int64 `envconfig:"PRICING_COMPACT_RATE_CENTS" default:"200"`
	RegularRateCents    int64 `envconfig:"PRICING_REGULAR_RATE_CENTS" default:"500"`
	LargeRateCents      int64 `envconfig:"PRICING_LARGE_RATE_CENTS" default:"1000"`
	AccessibleRateCents int64 `envconfig:"PRICING_ACCESSIBLE_RATE_CENTS" default:"500"`
	DiscountAfterHours  int64 `envconfig:"PRICING_DISCOUNT_AFTER_HOURS" default:"24"`
	DiscountPercent     int64 `envconfig:"PRICING_DISCOUNT_PERCENT" default:"20"`
}

func (c *FacilityConfig) Validate() error {
	if c.Floors < 1 {
		return fmt.Errorf("facility needs at least one floor, got %d", c.Floors)
	}
	if c.CompactPerFloor < 0 || c.RegularPerFloor < 0 || c.LargePerFloor < 0 || c.AccessiblePerFloor < 0 {
		return fmt.Errorf("spot counts cannot be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Facility.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid facility config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Facility: FacilityConfig{
			Floors:             1,
			CompactPerFloor:    3,
			RegularPerFloor:    2,
			LargePerFloor:      1,
			AccessiblePerFloor: 1,
		},
		Pricing: PricingConfig{
			CompactRateCents:    200,
			RegularRateCents:    500,
			LargeRateCents:      1000,
			AccessibleRateCents: 500,
			DiscountAfterHours:  24,
			DiscountPercent:     20,
		},
	}
}
