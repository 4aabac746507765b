package game

import (
	"io"
	"log/slog"
	"os"

	"github.com/myrjola/detectivequest/internal/config"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "game",
	Title: "Game",
}

// setup reads the configuration and creates the logger writing to logOut.
func setup(logOut io.Writer) (config.Config, *slog.Logger, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		return config.Config{}, nil, errors.Wrap(err, "load config")
	}
	return cfg, logging.New(logOut, cfg.Level()), nil
}
