package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultDictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultQuoteBaseURL      = "https://api.quotable.io"
)

type StorageDriver string

const (
	StorageDriverFile   StorageDriver = "file"
	StorageDriverMySQL  StorageDriver = "mysql"
	StorageDriverMemory StorageDriver = "memory"
)

var AllStorageDrivers = []StorageDriver{StorageDriverFile, StorageDriverMySQL, StorageDriverMemory}

type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Quote      QuoteConfig      `mapstructure:"quote"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

type DictionaryConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// TimeoutSeconds of 0 waits for the service indefinitely.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type QuoteConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
}

type StorageConfig struct {
	Driver    StorageDriver `mapstructure:"driver" validate:"oneof=file mysql memory"`
	Directory string        `mapstructure:"directory" validate:"dir"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lexi")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionary.base_url", DefaultDictionaryBaseURL)
	v.SetDefault("dictionary.timeout_seconds", 0)
	v.SetDefault("quote.base_url", DefaultQuoteBaseURL)
	v.SetDefault("quote.timeout_seconds", 5)
	v.SetDefault("quote.retry_attempts", 0)
	v.SetDefault("storage.driver", string(StorageDriverFile))
	v.SetDefault("storage.directory", defaultStorageDirectory())
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "lexi")
	v.SetDefault("database.username", "user")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// defaultStorageDirectory keeps the word lists under the user's data directory,
// falling back to the working directory when HOME is not set.
func defaultStorageDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lexi")
	}
	return filepath.Join(home, ".local", "share", "lexi")
}
