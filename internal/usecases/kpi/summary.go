package kpi

import (
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// ExecutiveSummary is the top-level view aggregating the other reports:
// revenue, margins, average ROI across invested stores, growth and impact
// headline figures.
type ExecutiveSummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	GrossMarginPct   float64 `json:"gross_margin_pct"`
	NetMarginPct     float64 `json:"net_margin_pct"`
	EBITDA           float64 `json:"ebitda"`
	AvgROIPct        float64 `json:"avg_roi_pct"`
	TotalInvestment  float64 `json:"total_investment"`
	GrowthPct        float64 `json:"growth_pct"`
	AvgTransaction   float64 `json:"avg_transaction_value"`
	TotalCustomers   int     `json:"total_customers"`
	ActiveStores     int     `json:"active_stores"`
	FarmersSupported int     `json:"farmers_supported"`
	PremiumPaid      float64 `json:"premium_paid"`
}

func (m ExecutiveSummary) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"total_revenue":         domain.Currency(m.TotalRevenue),
		"gross_margin_pct":      domain.Percent(m.GrossMarginPct),
		"net_margin_pct":        domain.Percent(m.NetMarginPct),
		"ebitda":                domain.Currency(m.EBITDA),
		"avg_roi_pct":           domain.Percent(m.AvgROIPct),
		"total_investment":      domain.Currency(m.TotalInvestment),
		"growth_pct":            domain.Percent(m.GrowthPct),
		"avg_transaction_value": domain.Currency(m.AvgTransaction),
		"total_customers":       domain.Count(float64(m.TotalCustomers)),
		"active_stores":         domain.Count(float64(m.ActiveStores)),
		"farmers_supported":     domain.Count(float64(m.FarmersSupported)),
		"premium_paid":          domain.Currency(m.PremiumPaid),
	}
}

// ExecutiveSummary composes the headline KPIs from the underlying reports.
func (e *Engine) ExecutiveSummary(ds *domain.Dataset, filters *domain.ReportFilters) ExecutiveSummary {
	profit := e.Profitability(ds, filters)
	revenue := e.RevenueMetrics(ds, filters)
	roi := e.StoreROI(ds, filters)
	impact := e.ImpactSummary(ds, filters)

	avgROI := 0.0
	totalInvestment := 0.0
	for _, row := range roi {
		avgROI += row.ROIPct
		totalInvestment += row.TotalInvestment
	}
	if len(roi) > 0 {
		avgROI /= float64(len(roi))
	}

	activeStores := make(map[string]bool)
	for _, r := range ds.Revenue {
		if filters.MatchesStore(r.StoreCode) && filters.MatchesYear(r.Year) {
			activeStores[r.StoreCode] = true
		}
	}

	return ExecutiveSummary{
		TotalRevenue:     profit.TotalRevenue,
		GrossMarginPct:   profit.GrossMarginPct,
		NetMarginPct:     profit.NetMarginPct,
		EBITDA:           profit.EBITDA,
		AvgROIPct:        utils.RoundWithOneDecimalPlace(avgROI),
		TotalInvestment:  totalInvestment,
		GrowthPct:        revenue.GrowthPct3M,
		AvgTransaction:   revenue.AvgTransaction,
		TotalCustomers:   revenue.TotalCustomers,
		ActiveStores:     len(activeStores),
		FarmersSupported: impact.FarmersSupported,
		PremiumPaid:      impact.TotalPremiumPaid,
	}
}
