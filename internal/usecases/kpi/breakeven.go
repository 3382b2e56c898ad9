package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// defaultVariableCostRatio stands in when a store has costs but no revenue
// yet, so the break-even projection still renders.
const defaultVariableCostRatio = 0.7

// BreakEven is the break-even position of one store.
//
// Break-even revenue = avg monthly fixed costs / (1 - variable cost ratio).
// MonthsToPayback is nil when average monthly profit is not positive: payback
// is unreachable, which is a reportable state rather than an error.
type BreakEven struct {
	StoreCode          string   `json:"store_code"`
	StoreName          string   `json:"store_name"`
	TotalInvestment    float64  `json:"total_investment"`
	AvgMonthlyRevenue  float64  `json:"avg_monthly_revenue"`
	BreakEvenRevenue   float64  `json:"break_even_revenue_monthly"`
	AvgMonthlyProfit   float64  `json:"avg_monthly_profit"`
	MonthsToPayback    *float64 `json:"months_to_payback"`
	PerformancePct     float64  `json:"be_performance_pct"`
	VariableCostRatio  float64  `json:"variable_cost_ratio"`
	ContributionMargin float64  `json:"contribution_margin"`
}

// BreakEven computes the break-even analysis for every store with a
// registered investment and at least one month of revenue. A variable cost
// ratio of one or more makes break-even revenue undefined, reported as zero.
func (e *Engine) BreakEven(ds *domain.Dataset, filters *domain.ReportFilters) []BreakEven {
	rows := make([]BreakEven, 0, len(ds.Investments))

	for _, inv := range ds.Investments {
		if !filters.MatchesStore(inv.StoreCode) {
			continue
		}

		revByMonth := monthlyRevenue(ds.Revenue, filters, inv.StoreCode)
		months := len(revByMonth)
		if months == 0 {
			continue
		}

		totalRevenue := sumMonths(revByMonth, sortedMonths(revByMonth))
		avgMonthlyRevenue := totalRevenue / float64(months)

		fixedTotal := 0.0
		variableTotal := 0.0
		for _, c := range ds.Costs {
			if c.StoreCode != inv.StoreCode {
				continue
			}
			if !filters.MatchesYear(c.Year) {
				continue
			}
			if domain.FixedCostCategories[c.Category] {
				fixedTotal += c.Amount
			} else {
				variableTotal += c.Amount
			}
		}

		variableCostRatio := defaultVariableCostRatio
		if totalRevenue > 0 {
			variableCostRatio = variableTotal / totalRevenue
		}
		avgMonthlyFixed := fixedTotal / float64(months)

		breakEvenRevenue := 0.0
		if variableCostRatio < 1 {
			breakEvenRevenue = avgMonthlyFixed / (1 - variableCostRatio)
		}

		avgMonthlyProfit := (totalRevenue - fixedTotal - variableTotal) / float64(months)

		var monthsToPayback *float64
		if avgMonthlyProfit > 0 {
			v := utils.RoundWithOneDecimalPlace(inv.Total / avgMonthlyProfit)
			monthsToPayback = &v
		}

		performancePct := 0.0
		if breakEvenRevenue > 0 {
			performancePct = avgMonthlyRevenue / breakEvenRevenue * 100
		}

		rows = append(rows, BreakEven{
			StoreCode:          inv.StoreCode,
			StoreName:          e.stores.Name(inv.StoreCode),
			TotalInvestment:    inv.Total,
			AvgMonthlyRevenue:  utils.RoundWithTwoDecimalPlace(avgMonthlyRevenue),
			BreakEvenRevenue:   utils.RoundWithTwoDecimalPlace(breakEvenRevenue),
			AvgMonthlyProfit:   utils.RoundWithTwoDecimalPlace(avgMonthlyProfit),
			MonthsToPayback:    monthsToPayback,
			PerformancePct:     utils.RoundWithOneDecimalPlace(performancePct),
			VariableCostRatio:  utils.RoundWithThreeDecimalPlace(variableCostRatio),
			ContributionMargin: utils.RoundWithThreeDecimalPlace(1 - variableCostRatio),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].StoreCode < rows[j].StoreCode })

	return rows
}
