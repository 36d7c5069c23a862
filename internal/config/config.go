package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/ebbitten/bluepoker-sub001/internal/util"
	"github.com/ebbitten/bluepoker-sub001/pkg/playable/poker/texasholdem"
	"github.com/ebbitten/bluepoker-sub001/pkg/room"
)

// envPrefix is the prefix of every environment variable, e.g. BLUEPOKER_RULES_BIG_BLIND
const envPrefix = "bluepoker"

// Config provides configuration for bluepoker
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	Rules texasholdem.Options `yaml:"rules"`
	Table room.Options        `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		Rules: texasholdem.DefaultOptions(),
		Table: room.Options{
			ActionTimeout: 30 * time.Second,
			AutoDeal:      false,
			AutoDealDelay: 3 * time.Second,
		},
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from the defaults, then the YAML file named by BLUEPOKER_CONFIG_FILE (config.yaml if unset),
// then the environment. A .env file in the working directory is read into the environment first.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("BLUEPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("file", configFile).Debug("no config file, using defaults")
	default:
		return err
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Marshal encodes the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// NewLogger returns a logger with the configured level and format
func (c Config) NewLogger() (*logrus.Logger, error) {
	logger := logrus.New()

	if lvl := c.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return nil, err
		}

		logger.SetLevel(level)
	}

	if strings.ToLower(c.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger, nil
}
