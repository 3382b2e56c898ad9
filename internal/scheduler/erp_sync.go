package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// ERPSyncConfig holds the scheduling knobs for the ERP financials sync.
type ERPSyncConfig struct {
	CronSchedule   string
	LookbackMonths int
	SyncEnabled    bool
}

// ERPSyncService refreshes the cached ERP financials (revenue, costs, capex)
// on a cron schedule.
type ERPSyncService struct {
	scheduler    *gocron.Scheduler
	config       ERPSyncConfig
	appConfig    *config.Config
	odooService  odoo.OdooIntegrator
	snapshotRepo repository.SnapshotRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewERPSyncService(
	odooService odoo.OdooIntegrator,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *ERPSyncService {
	syncConfig := ERPSyncConfig{
		CronSchedule:   appConfig.ERPSync.CronSchedule,
		LookbackMonths: appConfig.ERPSync.LookbackMonths,
		SyncEnabled:    appConfig.ERPSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"lookback_months": syncConfig.LookbackMonths,
		"sync_enabled":    syncConfig.SyncEnabled,
	}).Info("ERP sync scheduler configured")

	return &ERPSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		appConfig:    appConfig,
		odooService:  odooService,
		snapshotRepo: snapshotRepo,
	}
}

func (s *ERPSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("ERP sync disabled by configuration")
		return nil
	}

	if !s.appConfig.Odoo.IsConfigured() {
		log.L.Info("ERP credentials not configured, sync scheduler not started")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Starting ERP sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncFinancials()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule ERP sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping ERP sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncFinancials fetches the lookback window from the ERP and replaces the
// cached snapshots. Only one run at a time; overlapping triggers are dropped.
func (s *ERPSyncService) syncFinancials() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("ERP sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, _ := utils.GenerateID()
	startTime := time.Now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	years := s.lookbackYears(startTime)

	log.L.WithFields(log.Fields{
		"run_id": runID,
		"years":  years,
	}).Info("Starting ERP financials sync")

	financials, err := s.odooService.FetchFinancials(years)
	if err != nil {
		s.setLastSyncError(err.Error())
		log.L.WithFields(log.Fields{"run_id": runID}).WithError(err).Error("ERP fetch failed")
		return
	}

	collections := []struct {
		name    string
		payload interface{}
	}{
		{repository.CollectionRevenue, financials.Revenue},
		{repository.CollectionCosts, financials.Costs},
		{repository.CollectionCapex, financials.Capex},
	}

	for _, collection := range collections {
		if err := s.snapshotRepo.Save(repository.SourceERP, collection.name, collection.payload); err != nil {
			s.setLastSyncError(err.Error())
			log.L.WithFields(log.Fields{
				"run_id":     runID,
				"collection": collection.name,
			}).WithError(err).Error("Failed to save ERP snapshot")
			return
		}
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	log.L.WithFields(log.Fields{
		"run_id":   runID,
		"revenue":  len(financials.Revenue),
		"costs":    len(financials.Costs),
		"capex":    len(financials.Capex),
		"duration": time.Since(startTime).String(),
	}).Info("ERP financials sync completed")
}

func (s *ERPSyncService) setLastSyncError(msg string) {
	s.syncMutex.Lock()
	s.lastSyncError = msg
	s.syncMutex.Unlock()
}

// lookbackYears lists the calendar years the lookback window touches.
func (s *ERPSyncService) lookbackYears(now time.Time) []int {
	months := s.config.LookbackMonths
	if months <= 0 {
		months = 12
	}

	from := now.AddDate(0, -months, 0).Year()
	to := now.Year()

	years := make([]int, 0, to-from+1)
	for year := from; year <= to; year++ {
		years = append(years, year)
	}

	return years
}

// TriggerManualSync kicks off a sync in the background unless one is already
// running.
func (s *ERPSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("ERP sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Starting manual ERP sync")
	go s.syncFinancials()
}

func (s *ERPSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	lastError := s.lastSyncError
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_months":   s.config.LookbackMonths,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
		"last_sync_error":        lastError,
	}
}
