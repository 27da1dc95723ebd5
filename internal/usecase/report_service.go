package usecase

import (
	"bytes"
	"context"
	"fmt"

	"log_report/internal/domain/query"
	"log_report/internal/usecase/repository"

	"github.com/sirupsen/logrus"
)

// ReportService генерирует отчёт по каталогу SQL-запросов и сохраняет его.
type ReportService struct {
	Executor repository.QueryExecutor
	Renderer repository.Renderer
	Storage  repository.ReportStorage
	Logger   *logrus.Logger
}

// NewReportService собирает сервис из зависимостей.
func NewReportService(exec repository.QueryExecutor, r repository.Renderer, stor repository.ReportStorage, log *logrus.Logger) *ReportService {
	return &ReportService{Executor: exec, Renderer: r, Storage: stor, Logger: log}
}

// Generate выполняет запросы каталога и формирует документ отчёта.
func (s *ReportService) Generate(ctx context.Context, catalog []query.Query) ([]byte, error) {
	if err := query.ValidateCatalog(catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	results, err := s.Executor.Execute(ctx, query.SQLs(catalog))
	if err != nil {
		return nil, err
	}
	if len(results) != len(catalog) {
		return nil, fmt.Errorf("executor returned %d result sets for %d queries", len(results), len(catalog))
	}

	return s.Renderer.Render(catalog, results)
}

// Run формирует отчёт и записывает его под ключом key.
// Если генерация не удалась, хранилище не затрагивается.
func (s *ReportService) Run(ctx context.Context, catalog []query.Query, key string) error {
	logger := s.Logger.WithFields(logrus.Fields{
		"key":    key,
		"format": s.Renderer.Format(),
	})

	logger.Info("Генерация отчета")

	doc, err := s.Generate(ctx, catalog)
	if err != nil {
		logger.WithError(err).Error("Ошибка генерации отчета")
		return fmt.Errorf("generate report: %w", err)
	}

	if err := s.Storage.Save(ctx, key, bytes.NewReader(doc)); err != nil {
		logger.WithError(err).Error("Ошибка сохранения отчета")
		return fmt.Errorf("save report: %w", err)
	}

	logger.WithField("bytes", len(doc)).Info("Отчет сохранен")
	return nil
}
