package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// PayrollSyncConfig holds the scheduling knobs for the payroll labor sync.
type PayrollSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PayrollSyncService rebuilds the cached labor entries from the payroll
// snapshot and the latest synced ERP revenue. It runs after the ERP sync so
// the revenue months it joins against are fresh.
type PayrollSyncService struct {
	scheduler    *gocron.Scheduler
	config       PayrollSyncConfig
	appConfig    *config.Config
	nmbrsService nmbrs.NmbrsIntegrator
	snapshotRepo repository.SnapshotRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewPayrollSyncService(
	nmbrsService nmbrs.NmbrsIntegrator,
	snapshotRepo repository.SnapshotRepository,
	appConfig *config.Config,
) *PayrollSyncService {
	syncConfig := PayrollSyncConfig{
		CronSchedule: appConfig.PayrollSync.CronSchedule,
		SyncEnabled:  appConfig.PayrollSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Payroll sync scheduler configured")

	return &PayrollSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		appConfig:    appConfig,
		nmbrsService: nmbrsService,
		snapshotRepo: snapshotRepo,
	}
}

func (s *PayrollSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Payroll sync disabled by configuration")
		return nil
	}

	if !s.appConfig.Nmbrs.IsConfigured() {
		log.L.Info("Payroll credentials not configured, sync scheduler not started")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Starting payroll sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncLabor()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule payroll sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Stopping payroll sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PayrollSyncService) syncLabor() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Payroll sync already running, skipping")
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

	log.L.WithField("run_id", runID).Info("Starting payroll labor sync")

	// labor entries are built against the synced revenue months
	var revenue []domain.RevenueEntry
	found, err := s.snapshotRepo.Load(repository.SourceERP, repository.CollectionRevenue, &revenue)
	if err != nil {
		s.setLastSyncError(err.Error())
		log.L.WithField("run_id", runID).WithError(err).Error("Failed to load synced revenue")
		return
	}
	if !found || len(revenue) == 0 {
		s.setLastSyncError("no synced ERP revenue to join against")
		log.L.WithField("run_id", runID).Warn("Skipping payroll sync, no synced ERP revenue yet")
		return
	}

	entries, err := s.nmbrsService.BuildLaborEntries(revenue)
	if err != nil {
		s.setLastSyncError(err.Error())
		log.L.WithField("run_id", runID).WithError(err).Error("Payroll fetch failed")
		return
	}

	if err := s.snapshotRepo.Save(repository.SourcePayroll, repository.CollectionLabor, entries); err != nil {
		s.setLastSyncError(err.Error())
		log.L.WithField("run_id", runID).WithError(err).Error("Failed to save labor snapshot")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	log.L.WithFields(log.Fields{
		"run_id":   runID,
		"entries":  len(entries),
		"duration": time.Since(startTime).String(),
	}).Info("Payroll labor sync completed")
}

func (s *PayrollSyncService) setLastSyncError(msg string) {
	s.syncMutex.Lock()
	s.lastSyncError = msg
	s.syncMutex.Unlock()
}

// TriggerManualSync kicks off a sync in the background unless one is already
// running.
func (s *PayrollSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Payroll sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Starting manual payroll sync")
	go s.syncLabor()
}

func (s *PayrollSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	lastError := s.lastSyncError
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
		"last_sync_error":        lastError,
	}
}
