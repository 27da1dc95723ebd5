package di

import (
	"fmt"
	"time"

	"log_report/internal/config"
	"log_report/internal/domain/report"
	sqlinfra "log_report/internal/infrastructure/sql"
	"log_report/internal/infrastructure/template"
	"log_report/internal/storage"
	"log_report/internal/usecase"
	"log_report/internal/usecase/repository"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

// InitializeApp собирает граф зависимостей генератора отчёта.
// Подключение к БД открывается при построении графа, до записи какого-либо файла.
func InitializeApp(opts ...fx.Option) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Provide(
			config.Load,
			NewLogger,
			newExecutor,
			newRenderer,
			newStorage,
			usecase.NewReportService,
		),
		fx.Options(opts...),
	)
}

// NewLogger создает и настраивает логгер на основе конфигурации
func NewLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
		logger.WithError(err).Warn("Неверный уровень логирования, используется info")
	}
	logger.SetLevel(level)

	switch cfg.Logging.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	logger.WithField("config", cfg.String()).Debug("Конфигурация загружена")
	return logger
}

func newExecutor(cfg config.Config, logger *logrus.Logger) (repository.QueryExecutor, error) {
	db, err := sqlinfra.Open(cfg.DB.Driver, cfg.DB.DSN, logger)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func newRenderer(cfg config.Config) (repository.Renderer, error) {
	switch report.Format(cfg.Output.Format) {
	case report.FormatText:
		return template.NewText(), nil
	case report.FormatXLSX:
		return template.NewXLSX(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", cfg.Output.Format)
	}
}

func newStorage(cfg config.Config, logger *logrus.Logger) (repository.ReportStorage, error) {
	return storage.NewStorageFromConfig(cfg, logger)
}
