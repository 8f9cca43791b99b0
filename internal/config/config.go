// config/config.go
// Package: config
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mwiater/perfreport/internal/report"
	"github.com/mwiater/perfreport/internal/sink"
)

// Keys shared by config files, environment variables (PERFREPORT_<KEY>) and flags.
const (
	KeyConfig   = "config"
	KeyInput    = "input"
	KeyOutput   = "output"
	KeyFormat   = "format"
	KeyLocale   = "locale"
	KeyOrder    = "order"
	KeyLogLevel = "log_level"
	KeyDebug    = "debug"
	KeyQuiet    = "quiet"
)

// DefaultConfigFile is read when present and no --config is given.
const DefaultConfigFile = "config.json"

// Config holds the settings every report command needs to read and aggregate the input.
type Config struct {
	Input    string       `json:"input"`
	Locale   sink.Locale  `json:"locale"`
	Order    report.Order `json:"order"`
	LogLevel string       `json:"log_level"`
	Debug    bool         `json:"debug"`
}

// Output holds the settings used only when a summary file is written.
type Output struct {
	Path   string      `json:"output"`
	Format sink.Format `json:"format"`
	Quiet  bool        `json:"quiet"`
}

// SetDefaults registers defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "performance.csv")
	v.SetDefault(KeyOutput, "report.csv")
	v.SetDefault(KeyFormat, string(sink.FormatCSV))
	v.SetDefault(KeyLocale, string(sink.LocaleEnglish))
	v.SetDefault(KeyOrder, string(report.OrderAppearance))
	v.SetDefault(KeyLogLevel, "info")
	v.SetEnvPrefix("perfreport")
	v.AutomaticEnv()
}

// ReadFile merges the config file at path into v. A missing default file is not an error;
// a missing explicitly named file is.
func ReadFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read config file: %w", err)
	}
	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	logrus.WithField("config", path).Debug("loaded config file")
	return nil
}

// FromViper resolves and validates the read-side Config from v.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Input:    v.GetString(KeyInput),
		LogLevel: v.GetString(KeyLogLevel),
		Debug:    v.GetBool(KeyDebug),
	}

	var ok bool
	if cfg.Locale, ok = sink.ParseLocale(v.GetString(KeyLocale)); !ok {
		return Config{}, fmt.Errorf("unknown locale %q (want en or zh)", v.GetString(KeyLocale))
	}
	if cfg.Order, ok = report.ParseOrder(v.GetString(KeyOrder)); !ok {
		return Config{}, fmt.Errorf("unknown order %q (want appearance or ascending)", v.GetString(KeyOrder))
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Input == "" {
		return Config{}, errors.New("input path is required")
	}
	return cfg, nil
}

// OutputFromViper resolves and validates the write-side Output from v.
func OutputFromViper(v *viper.Viper) (Output, error) {
	out := Output{
		Path:  v.GetString(KeyOutput),
		Quiet: v.GetBool(KeyQuiet),
	}
	format, ok := sink.ParseFormat(v.GetString(KeyFormat))
	if !ok {
		return Output{}, fmt.Errorf("unknown format %q (want csv or json)", v.GetString(KeyFormat))
	}
	out.Format = format
	if out.Path == "" {
		return Output{}, errors.New("output path is required")
	}
	return out, nil
}
