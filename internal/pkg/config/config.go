package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between deployments
// - default: values common across all environments, standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Console ConsoleConfig
	Hotel   HotelConfig
	Log     LogConfig
}

type ConsoleConfig struct {
	// Upper bound on re-prompts when a requested room turns out to be
	// unavailable during a group booking.
	MaxRoomRetries int `envconfig:"CONSOLE_MAX_ROOM_RETRIES" default:"3"`
}

type HotelConfig struct {
	CurrencyLabel string `envconfig:"HOTEL_CURRENCY_LABEL" default:"rub"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"text"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Console: ConsoleConfig{
			MaxRoomRetries: 3,
		},
		Hotel: HotelConfig{
			CurrencyLabel: "rub",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
