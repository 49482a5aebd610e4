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
	ConfigDir    string
	StimuliDir   string
	StimuliSet   string
}

const (
	defaultPort       = 8001
	defaultConfigDir  = "static/configs"
	defaultStimuliDir = "static/stimuli_sets"
	defaultStimuliSet = "train_images_test_common_s12_s13_neurips_2020"
)

// ParseFlags validates flags, with environment variables as fallback
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("drawlab-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ConfigDir, "config-dir", "", "Directory of generated experiment configs")
	fs.StringVar(&cfg.StimuliDir, "stimuli-dir", "", "Directory of stimuli set files")
	fs.StringVar(&cfg.StimuliSet, "stimuli-set", "", "Stimuli set name")

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
			cfg.Port = defaultPort
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

	if cfg.ConfigDir == "" {
		cfg.ConfigDir = os.Getenv("CONFIG_DIR")
		if cfg.ConfigDir == "" {
			cfg.ConfigDir = defaultConfigDir
		}
	}
	if cfg.StimuliDir == "" {
		cfg.StimuliDir = os.Getenv("STIMULI_SET_DIR")
		if cfg.StimuliDir == "" {
			cfg.StimuliDir = defaultStimuliDir
		}
	}
	if cfg.StimuliSet == "" {
		cfg.StimuliSet = os.Getenv("STIMULI_SET")
		if cfg.StimuliSet == "" {
			cfg.StimuliSet = defaultStimuliSet
		}
	}

	return cfg, nil
}

// DriverName maps the configured database type to its sql driver.
func DriverName(databaseType string) string {
	if databaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
