package kpi

import (
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// LaborEfficiency carries the labor productivity KPIs.
//
// Revenue per labor hour = revenue / total labor hours
// Labor cost pct = labor cost / revenue * 100
type LaborEfficiency struct {
	TotalLaborHours     float64 `json:"total_labor_hours"`
	TotalLaborCost      float64 `json:"total_labor_cost"`
	AvgFTE              float64 `json:"avg_fte"`
	RevenuePerLaborHour float64 `json:"revenue_per_labor_hour"`
	LaborCostPct        float64 `json:"labor_cost_pct"`
	RevenuePerFTEMonth  float64 `json:"revenue_per_employee_month"`
	TargetLaborPct      float64 `json:"target_labor_pct"`
	VsTargetPct         float64 `json:"vs_target"`
}

func (m LaborEfficiency) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"total_labor_hours":          domain.Count(m.TotalLaborHours),
		"total_labor_cost":           domain.Currency(m.TotalLaborCost),
		"avg_fte":                    domain.Count(m.AvgFTE),
		"revenue_per_labor_hour":     domain.Currency(m.RevenuePerLaborHour),
		"labor_cost_pct":             domain.Percent(m.LaborCostPct),
		"revenue_per_employee_month": domain.Currency(m.RevenuePerFTEMonth),
		"target_labor_pct":           domain.Percent(m.TargetLaborPct),
		"vs_target":                  domain.Percent(m.VsTargetPct),
	}
}

// LaborEfficiency computes labor productivity over the filtered dataset and
// compares the labor cost share against its benchmark.
func (e *Engine) LaborEfficiency(ds *domain.Dataset, filters *domain.ReportFilters) LaborEfficiency {
	var (
		totalRevenue   float64
		totalHours     float64
		totalLaborCost float64
		fteSum         float64
		rowCount       int
	)
	months := make(map[string]bool)

	for _, l := range ds.Labor {
		if !filters.MatchesStore(l.StoreCode) || !filters.MatchesYear(l.Year) {
			continue
		}
		totalRevenue += l.Revenue
		totalHours += l.TotalLaborHours
		totalLaborCost += l.LaborCost
		fteSum += l.FTECount
		months[l.Month] = true
		rowCount++
	}

	if rowCount == 0 {
		return LaborEfficiency{TargetLaborPct: e.targets.LaborCostPct * 100}
	}

	avgFTE := fteSum / float64(rowCount)

	revPerHour := 0.0
	if totalHours > 0 {
		revPerHour = totalRevenue / totalHours
	}

	laborPct := 0.0
	if totalRevenue > 0 {
		laborPct = totalLaborCost / totalRevenue * 100
	}

	revPerFTE := 0.0
	if avgFTE > 0 && len(months) > 0 {
		revPerFTE = totalRevenue / (avgFTE * float64(len(months)))
	}

	targetPct := e.targets.LaborCostPct * 100

	return LaborEfficiency{
		TotalLaborHours:     utils.RoundWithTwoDecimalPlace(totalHours),
		TotalLaborCost:      utils.RoundWithTwoDecimalPlace(totalLaborCost),
		AvgFTE:              utils.RoundWithOneDecimalPlace(avgFTE),
		RevenuePerLaborHour: utils.RoundWithTwoDecimalPlace(revPerHour),
		LaborCostPct:        utils.RoundWithOneDecimalPlace(laborPct),
		RevenuePerFTEMonth:  utils.RoundWithTwoDecimalPlace(revPerFTE),
		TargetLaborPct:      targetPct,
		VsTargetPct:         utils.RoundWithOneDecimalPlace(laborPct - targetPct),
	}
}
