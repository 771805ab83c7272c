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
	StorageBackendFile   = "file"
	StorageBackendMySQL  = "mysql"
	StorageBackendMemory = "memory"
)

type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Outputs   OutputsConfig   `mapstructure:"outputs"`
}

type StorageConfig struct {
	Backend   string `mapstructure:"backend" validate:"oneof=file mysql memory"`
	Directory string `mapstructure:"directory" validate:"required_if=Backend file"`
	Key       string `mapstructure:"key" validate:"storage_key"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"min=0,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	ConnectAttempts uint              `mapstructure:"connect_attempts" validate:"min=1"`
}

type QuizConfig struct {
	DefaultMode string `mapstructure:"default_mode" validate:"oneof=word-to-meaning meaning-to-word"`
}

type TemplatesConfig struct {
	VocabularyTemplate string `mapstructure:"vocabulary_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	Directory string `mapstructure:"directory"`
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
		v.AddConfigPath("$HOME/.config/wordcard")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("storage.backend", StorageBackendFile)
	v.SetDefault("storage.directory", DefaultDataDirectory())
	v.SetDefault("storage.key", "wordcard:snapshot:v1")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordcard")
	v.SetDefault("database.username", "wordcard")
	v.SetDefault("database.connect_attempts", 3)
	v.SetDefault("quiz.default_mode", "word-to-meaning")
	// Template is optional - the embedded template is used when it is empty
	v.SetDefault("templates.vocabulary_template", "")
	v.SetDefault("outputs.directory", "outputs")

	if err := v.BindEnv("storage.backend", "WORDCARD_STORAGE_BACKEND"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDCARD_STORAGE_BACKEND environment variable: %w", err)
	}
	if err := v.BindEnv("storage.directory", "WORDCARD_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDCARD_DATA_DIR environment variable: %w", err)
	}
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

// DefaultDataDirectory is where the file backend keeps the snapshot unless
// configured otherwise.
func DefaultDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordcard"
	}
	return filepath.Join(home, ".local", "share", "wordcard")
}
