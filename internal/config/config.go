package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"classroombooking/internal/schedule"
)

// Config carries everything the API process reads from the environment.
type Config struct {
	Addr        string
	DatabaseURL string

	OpenHour           int
	CloseHour          int
	GranularityMinutes int
	// SplitHourly persists one row per hour slot instead of a single
	// multi-hour row.
	SplitHourly bool
}

// Load reads the configuration from the environment. DATABASE_URL is
// required; booking policy falls back to the 07:00-18:00 whole-hour
// defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:               getenv("ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		OpenHour:           7,
		CloseHour:          18,
		GranularityMinutes: 60,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	var err error
	if cfg.OpenHour, err = getenvInt("BOOKING_OPEN_HOUR", cfg.OpenHour); err != nil {
		return nil, err
	}
	if cfg.CloseHour, err = getenvInt("BOOKING_CLOSE_HOUR", cfg.CloseHour); err != nil {
		return nil, err
	}
	if cfg.GranularityMinutes, err = getenvInt("BOOKING_GRANULARITY_MINUTES", cfg.GranularityMinutes); err != nil {
		return nil, err
	}
	cfg.SplitHourly = os.Getenv("BOOKING_SPLIT_HOURLY") == "true"

	// A close hour of 24 would advertise a slot ending at midnight that
	// window validation rejects, so 23:00 is the latest accepted close.
	if cfg.OpenHour < 0 || cfg.CloseHour > 23 || cfg.OpenHour >= cfg.CloseHour {
		return nil, fmt.Errorf("invalid operating hours %d..%d", cfg.OpenHour, cfg.CloseHour)
	}
	if cfg.GranularityMinutes <= 0 {
		return nil, fmt.Errorf("invalid granularity %d minutes", cfg.GranularityMinutes)
	}

	return cfg, nil
}

// BookingPolicy converts the configured hours into the validator's policy.
func (c *Config) BookingPolicy() schedule.Policy {
	return schedule.Policy{
		OpenHour:    c.OpenHour,
		CloseHour:   c.CloseHour,
		Granularity: time.Duration(c.GranularityMinutes) * time.Minute,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
