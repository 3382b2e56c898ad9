package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/internal/usecases/reporting"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// reportFiltersFromQuery reads the shared store/year query parameters. Both
// are optional; empty means chain-wide, all available years.
func reportFiltersFromQuery(r *http.Request) (*domain.ReportFilters, error) {
	years, err := utils.ParseYears(r.URL.Query().Get("years"))
	if err != nil {
		return nil, err
	}

	return &domain.ReportFilters{
		StoreCodes: utils.SplitCSV(r.URL.Query().Get("stores")),
		Years:      years,
	}, nil
}

// reportEnvelope wraps every KPI payload with the dataset source so clients
// can badge demo data.
type reportEnvelope struct {
	Source string `json:"source"`
	Data   any    `json:"data"`
}

// report builds a handler for one KPI endpoint: parse the shared filters,
// run the fetch and encode the envelope.
func report(name string, source func() string, fetch func(*domain.ReportFilters) (any, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := reportFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"report": name,
				"years":  r.URL.Query().Get("years"),
				"error":  err.Error(),
			}).Warn("reports: invalid years parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		payload, err := fetch(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"report": name,
				"error":  err.Error(),
			}).Error("reports: failed to compute report")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"report": name,
			"stores": filters.StoreCodes,
			"years":  filters.Years,
		}).Info("reports: report computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reportEnvelope{Source: source(), Data: payload}); err != nil {
			logger.WithFields(log.Fields{
				"report": name,
				"error":  err.Error(),
			}).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetSummary(service reporting.Reporter) http.Handler {
	return report("summary", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Summary(f)
	})
}

func GetStoreROI(service reporting.Reporter) http.Handler {
	return report("roi", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.StoreROI(f)
	})
}

func GetBreakEven(service reporting.Reporter) http.Handler {
	return report("break_even", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.BreakEven(f)
	})
}

func GetProfitability(service reporting.Reporter) http.Handler {
	return report("profitability", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Profitability(f)
	})
}

func GetProfitabilityByStore(service reporting.Reporter) http.Handler {
	return report("profitability_stores", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.ProfitabilityByStore(f)
	})
}

func GetRevenue(service reporting.Reporter) http.Handler {
	return report("revenue", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Revenue(f)
	})
}

// GetRevenueByPeriods also accepts a period grouping (month, quarter, year).
func GetRevenueByPeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		period := r.URL.Query().Get("period")

		filters, err := reportFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"years": r.URL.Query().Get("years"),
				"error": err.Error(),
			}).Warn("reports: invalid years parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rows, err := service.RevenueByPeriod(period, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"period": period,
				"error":  err.Error(),
			}).Warn("reports: invalid period grouping")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reportEnvelope{Source: service.DataSource(), Data: rows}); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCosts(service reporting.Reporter) http.Handler {
	return report("costs", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Costs(f)
	})
}

func GetCustomers(service reporting.Reporter) http.Handler {
	return report("customers", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Customers(f)
	})
}

func GetLabor(service reporting.Reporter) http.Handler {
	return report("labor", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Labor(f)
	})
}

func GetInventory(service reporting.Reporter) http.Handler {
	return report("inventory", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Inventory(f)
	})
}

func GetCashFlow(service reporting.Reporter) http.Handler {
	return report("cash_flow", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.CashFlow(f)
	})
}

func GetImpact(service reporting.Reporter) http.Handler {
	return report("impact", service.DataSource, func(f *domain.ReportFilters) (any, error) {
		return service.Impact(f)
	})
}
