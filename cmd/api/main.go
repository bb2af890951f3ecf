package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/gscclient"
	"github.com/vfg2006/search-insights-api/internal/api"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/search-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	// Token refresh is lazy: the first Search Console call triggers it.
	tokenManager := gscclient.NewTokenManager(cfg)
	gscClient := gscclient.NewClient(cfg, tokenManager)
	gscIntegrator := gsc.New(cfg, gscClient)

	session := reporting.NewSession()
	reportService := reporting.NewService(cfg, gscIntegrator, session)
	exportService := exporting.NewService()

	server, err := api.New(
		cfg,
		reportService,
		exportService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger sets the log format and working directory.
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
