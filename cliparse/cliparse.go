package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	// RetentionHours is how long an inactive room survives before the
	// sweeper deletes it.
	RetentionHours int
	// SweepMinutes is the interval between sweeper runs.
	SweepMinutes int
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quick-decide", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Retention tuning
	fs.IntVar(&cfg.RetentionHours, "retention-hours", 0, "Hours before an idle room is deleted")
	fs.IntVar(&cfg.SweepMinutes, "sweep-minutes", 0, "Minutes between retention sweeps")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.RetentionHours == 0 {
		cfg.RetentionHours = envInt("ROOM_RETENTION_HOURS", 24)
	}
	if cfg.RetentionHours < 1 {
		return Config{}, errors.New("retention must be at least one hour")
	}
	if cfg.SweepMinutes == 0 {
		cfg.SweepMinutes = envInt("SWEEP_INTERVAL_MINUTES", 60)
	}
	if cfg.SweepMinutes < 1 {
		return Config{}, errors.New("sweep interval must be at least one minute")
	}

	return cfg, nil
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
