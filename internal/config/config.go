package config

import (
	"fmt"
	"path"
	"strings"

	"log_report/internal/domain/report"

	"github.com/spf13/viper"
)

const (
	// DefaultDSN оставляет хост, пользователя и sslmode окружению libpq (PGHOST, PGSSLMODE, сокет).
	DefaultDSN = "dbname=news"
	// DefaultKeyBase имя отчёта без расширения; расширение задаёт формат.
	DefaultKeyBase = "log-report"
)

// DB содержит параметры подключения к БД.
type DB struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// Output описывает итоговый файл отчёта.
type Output struct {
	Key    string `mapstructure:"key"`
	Format string `mapstructure:"format"`
}

// Storage описывает настройки хранилища файлов.
type Storage struct {
	Type     string `mapstructure:"type"`
	BasePath string `mapstructure:"basepath"`
	S3       S3     `mapstructure:"s3"`
}

// S3 содержит настройки для S3-совместимого хранилища.
type S3 struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Logging содержит настройки логирования.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config объединяет все разделы конфигурации.
type Config struct {
	DB      DB      `mapstructure:"database"`
	Output  Output  `mapstructure:"output"`
	Storage Storage `mapstructure:"storage"`
	Logging Logging `mapstructure:"logging"`
}

// Load читает конфигурацию из файла и окружения с помощью viper.
// Без файла и переменных окружения значения совпадают с константами отчёта:
// база news, файл ./log-report.txt.
func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/log-report")

	// Настройка для environment variables
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()
	bindEnvironmentVariables()

	// Чтение файла конфигурации (опционально)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Output.Key == "" {
		cfg.Output.Key = DefaultKeyBase + "." + report.Format(cfg.Output.Format).Extension()
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// setDefaults устанавливает значения по умолчанию
func setDefaults() {
	// Database defaults
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.dsn", DefaultDSN)

	// Output defaults: пустой ключ выводится из формата в Load
	viper.SetDefault("output.key", "")
	viper.SetDefault("output.format", "text")

	// Storage defaults
	viper.SetDefault("storage.type", "local")
	viper.SetDefault("storage.basepath", ".")
	viper.SetDefault("storage.s3.region", "us-east-1")
	viper.SetDefault("storage.s3.bucket", "")
	viper.SetDefault("storage.s3.endpoint", "")
	viper.SetDefault("storage.s3.access_key", "")
	viper.SetDefault("storage.s3.secret_key", "")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
}

// bindEnvironmentVariables привязывает переменные окружения к конфигурации
func bindEnvironmentVariables() {
	// Database
	viper.BindEnv("database.driver", "APP_DATABASE_DRIVER")
	viper.BindEnv("database.dsn", "APP_DATABASE_DSN")

	// Output
	viper.BindEnv("output.key", "APP_OUTPUT_KEY")
	viper.BindEnv("output.format", "APP_OUTPUT_FORMAT")

	// Storage
	viper.BindEnv("storage.type", "APP_STORAGE_TYPE")
	viper.BindEnv("storage.basepath", "APP_STORAGE_BASEPATH")
	viper.BindEnv("storage.s3.region", "APP_STORAGE_S3_REGION")
	viper.BindEnv("storage.s3.bucket", "APP_STORAGE_S3_BUCKET")
	viper.BindEnv("storage.s3.endpoint", "APP_STORAGE_S3_ENDPOINT")
	viper.BindEnv("storage.s3.access_key", "APP_STORAGE_S3_ACCESS_KEY")
	viper.BindEnv("storage.s3.secret_key", "APP_STORAGE_S3_SECRET_KEY")

	// Logging
	viper.BindEnv("logging.level", "APP_LOGGING_LEVEL")
	viper.BindEnv("logging.format", "APP_LOGGING_FORMAT")
}

// validateConfig проверяет корректность конфигурации
func validateConfig(cfg Config) error {
	if cfg.DB.Driver != "postgres" && cfg.DB.Driver != "sqlite3" {
		return fmt.Errorf("database driver must be 'postgres' or 'sqlite3', got: %s", cfg.DB.Driver)
	}

	if cfg.DB.DSN == "" {
		return fmt.Errorf("database DSN cannot be empty")
	}

	if cfg.Output.Key == "" {
		return fmt.Errorf("output key cannot be empty")
	}

	if cfg.Output.Format != "text" && cfg.Output.Format != "xlsx" {
		return fmt.Errorf("output format must be 'text' or 'xlsx', got: %s", cfg.Output.Format)
	}

	if want := "." + report.Format(cfg.Output.Format).Extension(); path.Ext(cfg.Output.Key) != want {
		return fmt.Errorf("output key %q does not match format %s, expected a %s file", cfg.Output.Key, cfg.Output.Format, want)
	}

	// Проверка настроек хранилища
	if cfg.Storage.Type != "local" && cfg.Storage.Type != "s3" {
		return fmt.Errorf("storage type must be 'local' or 's3', got: %s", cfg.Storage.Type)
	}

	if cfg.Storage.Type == "local" && cfg.Storage.BasePath == "" {
		return fmt.Errorf("storage basepath cannot be empty for local storage")
	}

	if cfg.Storage.Type == "s3" {
		if cfg.Storage.S3.Region == "" {
			return fmt.Errorf("S3 region cannot be empty")
		}
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket cannot be empty")
		}
	}

	// Проверка уровня логирования
	validLogLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	isValidLevel := false
	for _, level := range validLogLevels {
		if strings.ToLower(cfg.Logging.Level) == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("invalid logging level: %s. Valid levels: %v", cfg.Logging.Level, validLogLevels)
	}

	return nil
}

// String возвращает строковое представление конфигурации (без чувствительных данных)
func (c Config) String() string {
	storage := c.Storage
	storage.S3.AccessKey, storage.S3.SecretKey = "", ""
	return fmt.Sprintf("Config{DB: {Driver: %s, DSN: [HIDDEN]}, Output: %+v, Storage: %+v, Logging: %+v}",
		c.DB.Driver, c.Output, storage, c.Logging)
}
