package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/myrjola/detectivequest/internal/config"
	"github.com/myrjola/detectivequest/internal/envstruct"
	"github.com/myrjola/detectivequest/internal/logging"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    config.Config
		wantErr error
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: config.Config{LogLevel: "warn", SuspectBuckets: 10, PprofPort: "", NoColor: false},
		},
		{
			name: "overrides",
			env: map[string]string{
				"DETECTIVE_LOG_LEVEL":       "debug",
				"DETECTIVE_SUSPECT_BUCKETS": "31",
				"DETECTIVE_PPROF_PORT":      ":6060",
				"DETECTIVE_NO_COLOR":        "true",
			},
			want: config.Config{LogLevel: "debug", SuspectBuckets: 31, PprofPort: ":6060", NoColor: true},
		},
		{
			name:    "zero buckets",
			env:     map[string]string{"DETECTIVE_SUSPECT_BUCKETS": "0"},
			wantErr: config.ErrInvalidConfig,
		},
		{
			name:    "malformed buckets",
			env:     map[string]string{"DETECTIVE_SUSPECT_BUCKETS": "many"},
			wantErr: envstruct.ErrParse,
		},
		{
			name:    "unknown log level",
			env:     map[string]string{"DETECTIVE_LOG_LEVEL": "verbose"},
			wantErr: config.ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.Load(lookup(tt.env))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoad_unknownLevelKeepsCause(t *testing.T) {
	_, err := config.Load(lookup(map[string]string{"DETECTIVE_LOG_LEVEL": "verbose"}))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
	require.Contains(t, err.Error(), "parse log level")
}

func TestConfig_Level(t *testing.T) {
	cfg, err := config.Load(lookup(map[string]string{"DETECTIVE_LOG_LEVEL": "error"}))
	require.NoError(t, err)
	require.Equal(t, slog.LevelError, cfg.Level())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DETECTIVE_TEST_DOTENV=loaded\n"), 0o600))
	t.Setenv("DETECTIVE_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("DETECTIVE_TEST_DOTENV"))

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	require.Equal(t, "loaded", os.Getenv("DETECTIVE_TEST_DOTENV"))
}
