package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo"
	"github.com/wakuli/retail-analytics-api/internal/api/handler"
	"github.com/wakuli/retail-analytics-api/internal/api/handler/router"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/scheduler"
	"github.com/wakuli/retail-analytics-api/internal/usecases/authenticating"
	"github.com/wakuli/retail-analytics-api/internal/usecases/reporting"
	"github.com/wakuli/retail-analytics-api/internal/usecases/storing"
	"github.com/wakuli/retail-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reportingService reporting.Reporter,
	storeService storing.StoreService,
	authenticator authenticating.Authenticator,
	odooService odoo.OdooIntegrator,
	nmbrsService nmbrs.NmbrsIntegrator,
	erpSyncService *scheduler.ERPSyncService,
	payrollSyncService *scheduler.PayrollSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ERPSyncService:     erpSyncService,
		PayrollSyncService: payrollSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Reports(reportingService)...),
		router.WithRoutes(handler.Stores(storeService)...),
		router.WithRoutes(handler.Connections(odooService, nmbrsService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("error while running server")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful server shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("HTTP server shut down")
	return nil
}
