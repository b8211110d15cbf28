// Package config holds the generator configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/calxvec/decimal"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("config")

// Config is the generator configuration.
type Config struct {
	// Precision is the number of significant digits used for arithmetic.
	Precision uint32 `yaml:"precision"`

	// Workers is the number of fraction cells rendered concurrently.
	Workers int `yaml:"workers"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used for the corpus.
func Default() Config {
	return Config{
		Precision: decimal.DefaultPrecision,
		Workers:   1,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a yaml file over the defaults.
func Load(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() (err error) {
	if c.Precision == 0 {
		return Error.New("precision must be positive")
	}

	if c.Workers < 1 {
		return Error.New("workers must be at least 1: %d", c.Workers)
	}

	_, err = c.Log.ZapLevel()
	if err != nil {
		return err
	}

	return nil
}

// ZapLevel parses the configured level.
func (l LogConfig) ZapLevel() (level zapcore.Level, err error) {
	level, err = zapcore.ParseLevel(l.Level)
	if err != nil {
		return level, Error.Wrap(err)
	}

	return level, nil
}

// Logger builds a production logger writing to stderr at the configured level.
func (l LogConfig) Logger() (_ *zap.Logger, err error) {
	defer Error.WrapP(&err)

	level, err := l.ZapLevel()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
