package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalConfig конфигурация локального хранилища
type LocalConfig struct {
	BasePath    string
	Permissions os.FileMode
}

// LocalStorage реализация локального файлового хранилища
type LocalStorage struct {
	basePath    string
	permissions os.FileMode
}

// NewLocalStorage создает новое локальное хранилище.
// Базовая директория не создаётся: отчёт пишется рядом с процессом.
func NewLocalStorage(cfg LocalConfig) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("базовый путь не может быть пустым")
	}
	perm := cfg.Permissions
	if perm == 0 {
		perm = 0o644
	}
	return &LocalStorage{basePath: cfg.BasePath, permissions: perm}, nil
}

// Save создаёт или обрезает файл и записывает в него документ целиком
func (l *LocalStorage) Save(ctx context.Context, key string, reader io.Reader) error {
	file, err := os.OpenFile(l.getFullPath(key), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, l.permissions)
	if err != nil {
		return fmt.Errorf("ошибка создания файла: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}

	// Close может вернуть отложенную ошибку записи
	if err := file.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия файла: %w", err)
	}
	return nil
}

// Get получает файл локально
func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	file, err := os.Open(l.getFullPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("файл не найден: %s", key)
		}
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	return file, nil
}

// Exists проверяет существование файла
func (l *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(l.getFullPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("ошибка проверки существования файла: %w", err)
	}
	return true, nil
}

func (l *LocalStorage) getFullPath(key string) string {
	return filepath.Join(l.basePath, key)
}
