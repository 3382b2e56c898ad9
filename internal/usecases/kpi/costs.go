package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// CostCategory is one row of the cost structure report: a cost category as a
// share of revenue, compared against its benchmark where one is configured.
type CostCategory struct {
	Category     string   `json:"cost_category"`
	Label        string   `json:"cost_label"`
	Amount       float64  `json:"amount"`
	PctOfRevenue float64  `json:"pct_of_revenue"`
	TargetPct    *float64 `json:"target_pct"`
	VsTargetPct  *float64 `json:"vs_target"`
}

// CostStructure breaks filtered costs down by category, largest first. The
// target comparison is a pass-through against the configured benchmarks, only
// present for categories that have one.
func (e *Engine) CostStructure(ds *domain.Dataset, filters *domain.ReportFilters) []CostCategory {
	totalRevenue := 0.0
	for _, r := range ds.Revenue {
		if filters.MatchesStore(r.StoreCode) && filters.MatchesYear(r.Year) {
			totalRevenue += r.Revenue
		}
	}

	type bucket struct {
		label  string
		amount float64
	}
	buckets := make(map[string]*bucket)
	for _, c := range ds.Costs {
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		b, ok := buckets[c.Category]
		if !ok {
			b = &bucket{label: c.Label}
			buckets[c.Category] = b
		}
		b.amount += c.Amount
	}

	rows := make([]CostCategory, 0, len(buckets))
	for category, b := range buckets {
		row := CostCategory{
			Category: category,
			Label:    b.label,
			Amount:   utils.RoundWithTwoDecimalPlace(b.amount),
		}
		if totalRevenue > 0 {
			row.PctOfRevenue = utils.RoundWithOneDecimalPlace(b.amount / totalRevenue * 100)
		}
		if target, ok := e.targets.CostTargetPct(category); ok {
			t := utils.RoundWithOneDecimalPlace(target)
			vs := utils.RoundWithOneDecimalPlace(row.PctOfRevenue - target)
			row.TargetPct = &t
			row.VsTargetPct = &vs
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Amount > rows[j].Amount })

	return rows
}
