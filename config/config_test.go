package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, uint32(100), cfg.Precision)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	type TC struct {
		name string
		yaml string
		cfg  Config
		err  bool
	}

	tcs := []TC{
		{
			name: "empty",
			yaml: "",
			cfg:  Default(),
		},
		{
			name: "overlay",
			yaml: "workers: 4\nlog:\n  level: debug\n",
			cfg: Config{
				Precision: 100,
				Workers:   4,
				Log:       LogConfig{Level: "debug"},
			},
		},
		{
			name: "precision",
			yaml: "precision: 34\n",
			cfg: Config{
				Precision: 34,
				Workers:   1,
				Log:       LogConfig{Level: "info"},
			},
		},
		{
			name: "unknown field",
			yaml: "prec: 34\n",
			err:  true,
		},
		{
			name: "zero precision",
			yaml: "precision: 0\n",
			err:  true,
		},
		{
			name: "zero workers",
			yaml: "workers: 0\n",
			err:  true,
		},
		{
			name: "bad level",
			yaml: "log:\n  level: loud\n",
			err:  true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "calxvec.yaml")
			err := os.WriteFile(path, []byte(tc.yaml), 0o644)
			require.NoError(t, err)

			cfg, err := Load(path)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.cfg, cfg)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestLogger(t *testing.T) {
	level, err := LogConfig{Level: "warn"}.ZapLevel()
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, level)

	log, err := LogConfig{Level: "debug"}.Logger()
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))

	_, err = LogConfig{Level: "loud"}.Logger()
	require.Error(t, err)
}
