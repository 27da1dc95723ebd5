package storage

import (
	"context"
	"fmt"
	"io"

	"log_report/internal/config"

	"github.com/sirupsen/logrus"
)

const (
	// Типы хранилищ
	StorageTypeLocal = "local"
	StorageTypeS3    = "s3"
)

// Storage defines the interface for report file storage operations
type Storage interface {
	// Save writes the whole document under key, replacing previous content
	Save(ctx context.Context, key string, reader io.Reader) error

	// Get retrieves a file from storage
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether key is present
	Exists(ctx context.Context, key string) (bool, error)
}

// NewStorageFromConfig создает хранилище из конфигурации и оборачивает его в middleware
func NewStorageFromConfig(cfg config.Config, logger *logrus.Logger) (Storage, error) {
	var (
		s   Storage
		err error
	)

	switch cfg.Storage.Type {
	case StorageTypeLocal:
		s, err = NewLocalStorage(LocalConfig{
			BasePath:    cfg.Storage.BasePath,
			Permissions: 0o644,
		})
	case StorageTypeS3:
		s, err = NewS3Storage(S3Config{
			Region:         cfg.Storage.S3.Region,
			Bucket:         cfg.Storage.S3.Bucket,
			Endpoint:       cfg.Storage.S3.Endpoint,
			AccessKey:      cfg.Storage.S3.AccessKey,
			SecretKey:      cfg.Storage.S3.SecretKey,
			ForcePathStyle: true,
		})
	default:
		return nil, fmt.Errorf("неподдерживаемый тип хранилища: %s", cfg.Storage.Type)
	}
	if err != nil {
		return nil, err
	}

	return NewValidationMiddleware(NewLoggingMiddleware(s, logger)), nil
}
