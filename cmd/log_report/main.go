package main

import (
	"context"

	"log_report/internal/config"
	"log_report/internal/di"
	"log_report/internal/domain/query"
	"log_report/internal/usecase"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

func main() {
	var (
		svc    *usecase.ReportService
		cfg    config.Config
		logger *logrus.Logger
	)

	app := di.InitializeApp(fx.Populate(&svc, &cfg, &logger))
	if err := app.Err(); err != nil {
		logrus.WithError(err).Fatal("Не удалось инициализировать приложение")
	}

	if err := svc.Run(context.Background(), query.Catalog(), cfg.Output.Key); err != nil {
		logger.WithError(err).Fatal("Не удалось сформировать отчет")
	}
}
