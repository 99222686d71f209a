package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"screenfeed/config"
	"screenfeed/handlers"
	"screenfeed/internal/metrics"
	"screenfeed/internal/search"
	"screenfeed/internal/telemetry"
	"screenfeed/models"
	"screenfeed/services/catalog"
	"screenfeed/services/query"
	"screenfeed/utils"
)

// version is stamped by the build via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	settingsPath := os.Getenv("SCREENFEED_SETTINGS")
	if settingsPath == "" {
		settingsPath = "settings.json"
	}

	cfg := config.NewManager(settingsPath)
	settings, err := cfg.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load settings")
	}

	utils.SetupLogging(settings.LogLevel, settings.LogFile)
	if err := telemetry.Init(settings.SentryDSN, version); err != nil {
		logrus.WithError(err).Warn("sentry init failed, continuing without error tracking")
	}
	defer telemetry.Flush()

	// The catalog loads exactly once; a failure here is fatal, never
	// surfaced per query.
	snap, err := catalog.Load(context.Background(), afero.NewOsFs(), settings.SnapshotSource)
	if err != nil {
		logrus.WithError(err).WithField("source", settings.SnapshotSource).Fatal("load catalog snapshot")
	}
	store := catalog.NewStore(snap)
	for _, kind := range []string{
		models.KindEpisode, models.KindSeries, models.KindChannel,
		models.KindGenre, models.KindSeason, models.KindProgram,
	} {
		metrics.CatalogRecords.WithLabelValues(kind).Set(float64(len(store.ByKind(kind))))
	}
	logrus.WithFields(logrus.Fields{
		"source":  settings.SnapshotSource,
		"records": store.Len(),
	}).Info("catalog loaded")

	service := query.NewService(search.NewBleveMatcher(), settings.TimeZone)

	router := utils.NewRouter()
	handlers.NewFeedsHandler(store, service).Register(router)
	handlers.NewCollectionsHandler(store, service).Register(router)
	handlers.NewEPGHandler(store, service).Register(router)

	addr := fmt.Sprintf(":%d", settings.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logrus.WithField("addr", addr).Info("screenfeed listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("server exited")
	}
}
