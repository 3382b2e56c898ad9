package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo"
	"github.com/wakuli/retail-analytics-api/pkg/log"
)

type connectionStatusResponse struct {
	ERP     connectionState        `json:"erp"`
	Payroll nmbrs.ConnectionStatus `json:"payroll"`
}

type connectionState struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}

// GetConnectionStatus checks both external integrations and reports whether
// they respond with the configured credentials.
func GetConnectionStatus(odooService odoo.OdooIntegrator, nmbrsService nmbrs.NmbrsIntegrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resp := connectionStatusResponse{}

		connected, err := odooService.CheckConnection()
		resp.ERP.Connected = connected
		if err != nil {
			resp.ERP.Error = err.Error()
			logger.WithError(err).Warn("connections: ERP check failed")
		}

		resp.Payroll = nmbrsService.CheckConnection()
		if resp.Payroll.Error != "" {
			logger.WithField("error", resp.Payroll.Error).Warn("connections: payroll check failed")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.WithError(err).Error("connections: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
