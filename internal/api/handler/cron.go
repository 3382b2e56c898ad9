package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/internal/scheduler"
	"github.com/wakuli/retail-analytics-api/pkg/apiErrors"
	"github.com/wakuli/retail-analytics-api/pkg/middleware"
)

// CronJobType names the sync job to trigger manually.
const (
	CronJobTypeERP     = "erp"
	CronJobTypePayroll = "payroll"
	CronJobTypeAll     = "all"
)

// CronJobServices holds the scheduled sync services exposed over HTTP.
type CronJobServices struct {
	ERPSyncService     *scheduler.ERPSyncService
	PayrollSyncService *scheduler.PayrollSyncService
}

// RunCronJob triggers one of the sync jobs outside its schedule.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can run sync jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "sync job type not provided", nil)
			return
		}

		switch cronType {
		case CronJobTypeERP:
			if services.ERPSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "ERP sync service not available", nil)
				return
			}
			services.ERPSyncService.TriggerManualSync()

		case CronJobTypePayroll:
			if services.PayrollSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "payroll sync service not available", nil)
				return
			}
			services.PayrollSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ERPSyncService != nil {
				services.ERPSyncService.TriggerManualSync()
			}
			if services.PayrollSyncService != nil {
				services.PayrollSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid sync job type, accepted values: erp, payroll, all", nil)
			return
		}

		response := map[string]any{
			"message": "sync job started",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus reports the run state of both sync jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "only administrators can check sync job status", nil)
			return
		}

		status := map[string]any{
			"erp":     services.ERPSyncService.GetStatus(),
			"payroll": services.PayrollSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
