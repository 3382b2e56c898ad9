// Package kpi computes the financial and operational metrics reported by the
// analytics API. Every calculation is a pure function over an in-memory
// dataset: no I/O, no caching, no mutation of the input records. Zero
// denominators produce defined sentinels (zero values, or nil for an
// unreachable payback) so reports always render.
package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
)

// Engine evaluates KPI formulas over a dataset. Store metadata and benchmark
// targets are injected so the engine carries no global state.
type Engine struct {
	stores  domain.Registry
	targets domain.Targets
}

func NewEngine(stores domain.Registry, targets domain.Targets) *Engine {
	return &Engine{stores: stores, targets: targets}
}

// Targets returns the benchmark table the engine compares against.
func (e *Engine) Targets() domain.Targets {
	return e.targets
}

// monthlyRevenue sums revenue per month for the records passing the filter,
// optionally narrowed to a single store.
func monthlyRevenue(entries []domain.RevenueEntry, filters *domain.ReportFilters, storeCode string) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range entries {
		if storeCode != "" && r.StoreCode != storeCode {
			continue
		}
		if !filters.MatchesStore(r.StoreCode) || !filters.MatchesYear(r.Year) {
			continue
		}
		out[r.Month] += r.Revenue
	}
	return out
}

// monthlyCosts sums cost amounts per month, optionally narrowed to a single
// store and a single cost category.
func monthlyCosts(entries []domain.CostEntry, filters *domain.ReportFilters, storeCode, category string) map[string]float64 {
	out := make(map[string]float64)
	for _, c := range entries {
		if storeCode != "" && c.StoreCode != storeCode {
			continue
		}
		if category != "" && c.Category != category {
			continue
		}
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		out[c.Month] += c.Amount
	}
	return out
}

// monthlyCapex sums capital expenditure per month for the records passing
// the filter.
func monthlyCapex(entries []domain.CapexEntry, filters *domain.ReportFilters) map[string]float64 {
	out := make(map[string]float64)
	for _, c := range entries {
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		out[c.Month] += c.Amount
	}
	return out
}

func sortedMonths(byMonth map[string]float64) []string {
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

func sumMonths(byMonth map[string]float64, months []string) float64 {
	total := 0.0
	for _, m := range months {
		total += byMonth[m]
	}
	return total
}

// lastThreeVsPriorThree is the growth figure used across reports: the most
// recent three months compared against the three before them. Needs at least
// six months of data, otherwise reports zero.
func lastThreeVsPriorThree(byMonth map[string]float64) float64 {
	months := sortedMonths(byMonth)
	if len(months) < 6 {
		return 0
	}
	recent := sumMonths(byMonth, months[len(months)-3:])
	prior := sumMonths(byMonth, months[len(months)-6:len(months)-3])
	if prior <= 0 {
		return 0
	}
	return (recent - prior) / prior * 100
}
