package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LoggingMiddleware добавляет логирование к операциям хранилища
type LoggingMiddleware struct {
	storage Storage
	logger  *logrus.Logger
}

// NewLoggingMiddleware создает новый logging middleware
func NewLoggingMiddleware(storage Storage, logger *logrus.Logger) Storage {
	return &LoggingMiddleware{
		storage: storage,
		logger:  logger,
	}
}

// Save пишет отчёт и логирует время записи
func (m *LoggingMiddleware) Save(ctx context.Context, key string, reader io.Reader) error {
	start := time.Now()
	err := m.storage.Save(ctx, key, reader)

	entry := m.logger.WithFields(logrus.Fields{
		"operation": "save",
		"key":       key,
		"duration":  time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Error("Отчёт не записан")
		return err
	}
	entry.Info("Отчёт записан")
	return nil
}

// Get логирует операцию получения
func (m *LoggingMiddleware) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := m.storage.Get(ctx, key)
	if err != nil {
		m.logger.WithError(err).WithFields(logrus.Fields{"operation": "get", "key": key}).Error("Ошибка получения файла")
	}
	return reader, err
}

// Exists логирует результат проверки на уровне debug
func (m *LoggingMiddleware) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := m.storage.Exists(ctx, key)
	logger := m.logger.WithFields(logrus.Fields{"operation": "exists", "key": key})
	if err != nil {
		logger.WithError(err).Error("Ошибка проверки файла")
		return false, err
	}
	logger.WithField("exists", ok).Debug("Проверка файла")
	return ok, nil
}

// ValidationMiddleware отклоняет некорректные ключи до обращения к хранилищу
type ValidationMiddleware struct {
	storage Storage
}

// NewValidationMiddleware создает новый validation middleware
func NewValidationMiddleware(storage Storage) Storage {
	return &ValidationMiddleware{storage: storage}
}

func (m *ValidationMiddleware) Save(ctx context.Context, key string, reader io.Reader) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	return m.storage.Save(ctx, key, reader)
}

func (m *ValidationMiddleware) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return m.storage.Get(ctx, key)
}

func (m *ValidationMiddleware) Exists(ctx context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	return m.storage.Exists(ctx, key)
}

// ValidateKey проверяет ключ файла: непустой, относительный, без выхода за базовый путь
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("ключ файла не может быть пустым")
	}
	if len(key) > 1024 {
		return fmt.Errorf("ключ файла слишком длинный: %d символов (максимум 1024)", len(key))
	}
	if strings.HasPrefix(key, "/") {
		return fmt.Errorf("ключ файла должен быть относительным: %s", key)
	}
	clean := path.Clean(key)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("ключ файла выходит за пределы хранилища: %s", key)
	}
	return nil
}
