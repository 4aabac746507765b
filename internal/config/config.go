package config

import (
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/myrjola/detectivequest/internal/envstruct"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/logging"
)

var ErrInvalidConfig = errors.NewSentinel("invalid configuration")

// Config of the game, read from DETECTIVE_* environment variables.
type Config struct {
	LogLevel       string `env:"DETECTIVE_LOG_LEVEL" envDefault:"warn"`
	SuspectBuckets int    `env:"DETECTIVE_SUSPECT_BUCKETS" envDefault:"10"`
	// PprofPort enables the pprof server on the loopback interface, e.g. ":6060".
	PprofPort string `env:"DETECTIVE_PPROF_PORT" envDefault:""`
	NoColor   bool   `env:"DETECTIVE_NO_COLOR" envDefault:"false"`
}

// LoadDotEnv loads the given .env files into the process environment. Missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrap(err, "load env file", slog.String("file", name))
		}
	}
	return nil
}

// Load reads the configuration with lookupEnv, which has the signature of [os.LookupEnv].
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return Config{}, errors.Wrap(err, "populate config")
	}
	if cfg.SuspectBuckets <= 0 {
		return Config{}, errors.Wrap(ErrInvalidConfig, "suspect buckets must be positive",
			slog.Int("buckets", cfg.SuspectBuckets))
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Level returns the configured log level. Load has already validated it.
func (c Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}
