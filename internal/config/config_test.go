package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir переходит во временную директорию, чтобы не подхватить чужой config.yaml
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	// хост и sslmode не фиксируются: их выбирает окружение libpq
	assert.Equal(t, "dbname=news", cfg.DB.DSN)
	assert.NotContains(t, cfg.DB.DSN, "sslmode")
	assert.NotContains(t, cfg.DB.DSN, "host")
	assert.Equal(t, "log-report.txt", cfg.Output.Key)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, ".", cfg.Storage.BasePath)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t)
	t.Setenv("APP_DATABASE_DRIVER", "sqlite3")
	t.Setenv("APP_DATABASE_DSN", "file:news.db")
	t.Setenv("APP_OUTPUT_FORMAT", "xlsx")
	t.Setenv("APP_OUTPUT_KEY", "log-report.xlsx")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, "file:news.db", cfg.DB.DSN)
	assert.Equal(t, "xlsx", cfg.Output.Format)
	assert.Equal(t, "log-report.xlsx", cfg.Output.Key)
}

func TestLoadDerivesKeyFromFormat(t *testing.T) {
	chdir(t)
	t.Setenv("APP_OUTPUT_FORMAT", "xlsx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "log-report.xlsx", cfg.Output.Key)
}

func TestLoadFromFile(t *testing.T) {
	dir := chdir(t)
	content := "database:\n  dsn: \"host=db dbname=news\"\nlogging:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db dbname=news", cfg.DB.DSN)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		msg  string
	}{
		{name: "driver", env: map[string]string{"APP_DATABASE_DRIVER": "mysql"}, msg: "database driver"},
		{name: "format", env: map[string]string{"APP_OUTPUT_FORMAT": "pdf"}, msg: "output format"},
		{name: "xlsx into txt", env: map[string]string{"APP_OUTPUT_FORMAT": "xlsx", "APP_OUTPUT_KEY": "log-report.txt"}, msg: "does not match format"},
		{name: "text into xlsx", env: map[string]string{"APP_OUTPUT_KEY": "reports/log-report.xlsx"}, msg: "expected a .txt file"},
		{name: "storage", env: map[string]string{"APP_STORAGE_TYPE": "ftp"}, msg: "storage type"},
		{name: "s3 bucket", env: map[string]string{"APP_STORAGE_TYPE": "s3"}, msg: "S3 bucket"},
		{name: "log level", env: map[string]string{"APP_LOGGING_LEVEL": "loud"}, msg: "invalid logging level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConfigStringHidesSecrets(t *testing.T) {
	cfg := Config{
		DB:      DB{Driver: "postgres", DSN: "postgres://u:secret@h/news"},
		Storage: Storage{Type: "s3", S3: S3{AccessKey: "AKIA", SecretKey: "shh"}},
	}
	s := cfg.String()
	assert.NotContains(t, s, "secret@")
	assert.NotContains(t, s, "AKIA")
	assert.NotContains(t, s, "shh")
	assert.Contains(t, s, "[HIDDEN]")
}
