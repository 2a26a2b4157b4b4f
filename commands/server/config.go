package server

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/iov-one/swap/errors"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"
)

// Configuration keys. Each one can be set by a flag, by an environment
// variable with the application prefix or by the config file.
const (
	FlagHome     = "home"
	FlagBind     = "bind"
	FlagLogLevel = "log_level"
	FlagDebug    = "debug"
	FlagDB       = "db"
)

// Config is the daemon configuration.
type Config struct {
	Home     string
	Bind     string
	LogLevel string
	Debug    bool
	// DB is the database path, relative to Home unless absolute. An
	// empty value keeps the state in memory.
	DB string
}

// DefaultHome returns the default home directory of the application.
func DefaultHome(name string) string {
	return filepath.Join(os.ExpandEnv("$HOME"), "."+name)
}

// NewViper returns a viper instance reading environment variables
// prefixed with the upper cased application name, for example
// SWAPD_LOG_LEVEL.
func NewViper(name string) *viper.Viper {
	v := viper.New()
	v.SetDefault(FlagHome, DefaultHome(name))
	v.SetDefault(FlagBind, "tcp://localhost:26658")
	v.SetDefault(FlagLogLevel, "info")
	v.SetDefault(FlagDebug, false)
	v.SetDefault(FlagDB, name+".db")

	v.SetConfigName(name)
	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional <name>.toml file from the home directory
// and returns the resulting configuration.
func LoadConfig(v *viper.Viper) (*Config, error) {
	v.AddConfigPath(v.GetString(FlagHome))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot read config file: %s", err)
		}
	}

	cfg := &Config{
		Home:     v.GetString(FlagHome),
		Bind:     v.GetString(FlagBind),
		LogLevel: v.GetString(FlagLogLevel),
		Debug:    v.GetBool(FlagDebug),
		DB:       v.GetString(FlagDB),
	}
	if cfg.Home == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "home directory")
	}
	return cfg, nil
}

// DBPath returns the absolute database path or an empty string for an in
// memory database.
func (c *Config) DBPath() string {
	if c.DB == "" || filepath.IsAbs(c.DB) {
		return c.DB
	}
	return filepath.Join(c.Home, c.DB)
}

// Logger returns a logger writing to stdout that drops entries below the
// configured level.
func (c *Config) Logger(module string) (log.Logger, error) {
	allowed, err := log.AllowLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	return log.NewFilter(logger, allowed).With("module", module), nil
}
