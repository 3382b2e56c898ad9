package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// Profitability carries the margin structure of the filtered dataset.
//
// Gross margin = (revenue - COGS) / revenue * 100
// Net margin   = (revenue - total costs) / revenue * 100
// EBITDA       = net profit + depreciation
type Profitability struct {
	TotalRevenue   float64 `json:"total_revenue"`
	COGS           float64 `json:"cogs"`
	GrossProfit    float64 `json:"gross_profit"`
	GrossMarginPct float64 `json:"gross_margin_pct"`
	NetProfit      float64 `json:"net_profit"`
	NetMarginPct   float64 `json:"net_margin_pct"`
	EBITDA         float64 `json:"ebitda"`
	EBITDAPct      float64 `json:"ebitda_margin_pct"`
	TotalCosts     float64 `json:"total_costs"`
	OpexRatioPct   float64 `json:"opex_ratio"`
}

// Metrics exposes the margins as a tagged metric map for callers that format
// rather than compute.
func (p Profitability) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"total_revenue":     domain.Currency(p.TotalRevenue),
		"cogs":              domain.Currency(p.COGS),
		"gross_profit":      domain.Currency(p.GrossProfit),
		"gross_margin_pct":  domain.Percent(p.GrossMarginPct),
		"net_profit":        domain.Currency(p.NetProfit),
		"net_margin_pct":    domain.Percent(p.NetMarginPct),
		"ebitda":            domain.Currency(p.EBITDA),
		"ebitda_margin_pct": domain.Percent(p.EBITDAPct),
		"total_costs":       domain.Currency(p.TotalCosts),
		"opex_ratio":        domain.Percent(p.OpexRatioPct),
	}
}

// Profitability computes margins over the filtered dataset. Zero revenue
// zeroes every percentage instead of dividing.
func (e *Engine) Profitability(ds *domain.Dataset, filters *domain.ReportFilters) Profitability {
	totalRevenue := 0.0
	for _, r := range ds.Revenue {
		if filters.MatchesStore(r.StoreCode) && filters.MatchesYear(r.Year) {
			totalRevenue += r.Revenue
		}
	}

	cogs := 0.0
	depreciation := 0.0
	totalCosts := 0.0
	for _, c := range ds.Costs {
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		totalCosts += c.Amount
		if domain.COGSCategories[c.Category] {
			cogs += c.Amount
		}
		if c.Category == domain.CostDepreciation {
			depreciation += c.Amount
		}
	}

	grossProfit := totalRevenue - cogs
	netProfit := totalRevenue - totalCosts
	ebitda := netProfit + depreciation

	p := Profitability{
		TotalRevenue: totalRevenue,
		COGS:         cogs,
		GrossProfit:  grossProfit,
		NetProfit:    netProfit,
		EBITDA:       ebitda,
		TotalCosts:   totalCosts,
	}

	if totalRevenue > 0 {
		p.GrossMarginPct = utils.RoundWithOneDecimalPlace(grossProfit / totalRevenue * 100)
		p.NetMarginPct = utils.RoundWithOneDecimalPlace(netProfit / totalRevenue * 100)
		p.EBITDAPct = utils.RoundWithOneDecimalPlace(ebitda / totalRevenue * 100)
		p.OpexRatioPct = utils.RoundWithOneDecimalPlace((totalCosts - cogs) / totalRevenue * 100)
	}

	return p
}

// StoreProfitability is the margin structure of a single store.
type StoreProfitability struct {
	StoreCode string `json:"store_code"`
	StoreName string `json:"store_name"`
	Profitability
}

// ProfitabilityByStore computes margins per store, ordered by net profit.
// Stores without revenue in the filtered range are skipped.
func (e *Engine) ProfitabilityByStore(ds *domain.Dataset, filters *domain.ReportFilters) []StoreProfitability {
	seen := make(map[string]bool)
	codes := make([]string, 0)
	for _, r := range ds.Revenue {
		if !filters.MatchesStore(r.StoreCode) || !filters.MatchesYear(r.Year) {
			continue
		}
		if !seen[r.StoreCode] {
			seen[r.StoreCode] = true
			codes = append(codes, r.StoreCode)
		}
	}

	rows := make([]StoreProfitability, 0, len(codes))
	for _, code := range codes {
		storeFilters := &domain.ReportFilters{StoreCodes: []string{code}, Years: filters.YearsOrNil()}
		p := e.Profitability(ds, storeFilters)
		if p.TotalRevenue == 0 {
			continue
		}
		rows = append(rows, StoreProfitability{
			StoreCode:     code,
			StoreName:     e.stores.Name(code),
			Profitability: p,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].NetProfit > rows[j].NetProfit })

	return rows
}
