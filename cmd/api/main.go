package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wakuli/retail-analytics-api/infrastructure/database/postgres"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/nmbrsclient"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo/odooclient"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	"github.com/wakuli/retail-analytics-api/internal/api"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/demo"
	"github.com/wakuli/retail-analytics-api/internal/scheduler"
	"github.com/wakuli/retail-analytics-api/internal/usecases/authenticating"
	"github.com/wakuli/retail-analytics-api/internal/usecases/kpi"
	"github.com/wakuli/retail-analytics-api/internal/usecases/reporting"
	"github.com/wakuli/retail-analytics-api/internal/usecases/storing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	investmentRepo := repository.NewInvestmentRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	stores := config.Stores()

	odooClient := odooclient.NewClient(cfg)
	odooIntegrator := odoo.New(cfg, odooClient)

	nmbrsClient := nmbrsclient.NewClient(cfg)
	nmbrsIntegrator := nmbrs.New(cfg, stores, nmbrsClient)

	generator := demo.NewGenerator(stores, time.Now())
	defaultYears := demoYears(cfg)

	var provider reporting.DatasetProvider
	if cfg.App.DataSource == "erp" {
		provider = reporting.NewSnapshotProvider(generator, snapshotRepo, investmentRepo, defaultYears)
		logrus.Info("KPI inputs come from synced ERP snapshots")
	} else {
		provider = reporting.NewDemoProvider(generator, investmentRepo, defaultYears)
		logrus.Info("KPI inputs come from the demo dataset")
	}

	engine := kpi.NewEngine(stores, cfg.Targets)
	reportingService := reporting.NewService(cfg, engine, provider)
	storeService := storing.NewService(stores, investmentRepo)

	erpSyncService := scheduler.NewERPSyncService(odooIntegrator, snapshotRepo, cfg)
	payrollSyncService := scheduler.NewPayrollSyncService(nmbrsIntegrator, snapshotRepo, cfg)

	if err := erpSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start the ERP sync scheduler")
	} else {
		logrus.Info("ERP sync scheduler started")
	}

	if err := payrollSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("failed to start the payroll sync scheduler")
	} else {
		logrus.Info("payroll sync scheduler started")
	}

	server, err := api.New(
		cfg,
		reportingService,
		storeService,
		authenticator,
		odooIntegrator,
		nmbrsIntegrator,
		erpSyncService,
		payrollSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func pgconn(ctx context.Context, cfg config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	return conn
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// demoYears expands the configured demo year range into an explicit list.
func demoYears(cfg *config.Config) []int {
	from, to := cfg.App.DemoYearFrom, cfg.App.DemoYearTo
	if from == 0 || to == 0 || from > to {
		year := time.Now().Year()
		return []int{year - 1, year}
	}

	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}
