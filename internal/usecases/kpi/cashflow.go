package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// CashFlowRow is one month of the estimated cash flow series.
//
// Operating cash flow = net profit + depreciation. Free cash flow subtracts
// the month's capital expenditure. The cumulative column runs over the
// operating series in month order.
type CashFlowRow struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	TotalCosts   float64 `json:"total_costs"`
	NetProfit    float64 `json:"net_profit"`
	Depreciation float64 `json:"depreciation"`
	OperatingCF  float64 `json:"operating_cash_flow"`
	Capex        float64 `json:"capex"`
	FreeCF       float64 `json:"free_cash_flow"`
	CumulativeCF float64 `json:"cumulative_cash_flow"`
}

// CashFlow estimates the monthly cash flow over the filtered dataset.
// Months appearing in either revenue or costs are included; capex is joined
// by month.
func (e *Engine) CashFlow(ds *domain.Dataset, filters *domain.ReportFilters) []CashFlowRow {
	revByMonth := monthlyRevenue(ds.Revenue, filters, "")
	costByMonth := monthlyCosts(ds.Costs, filters, "", "")
	deprByMonth := monthlyCosts(ds.Costs, filters, "", domain.CostDepreciation)
	capexByMonth := monthlyCapex(ds.Capex, filters)

	monthSet := make(map[string]bool)
	for m := range revByMonth {
		monthSet[m] = true
	}
	for m := range costByMonth {
		monthSet[m] = true
	}
	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	rows := make([]CashFlowRow, 0, len(months))
	cumulative := 0.0
	for _, m := range months {
		revenue := revByMonth[m]
		costs := costByMonth[m]
		depreciation := deprByMonth[m]
		capex := capexByMonth[m]
		netProfit := revenue - costs
		operatingCF := netProfit + depreciation
		freeCF := operatingCF - capex
		cumulative += operatingCF

		rows = append(rows, CashFlowRow{
			Month:        m,
			Revenue:      utils.RoundWithTwoDecimalPlace(revenue),
			TotalCosts:   utils.RoundWithTwoDecimalPlace(costs),
			NetProfit:    utils.RoundWithTwoDecimalPlace(netProfit),
			Depreciation: utils.RoundWithTwoDecimalPlace(depreciation),
			OperatingCF:  utils.RoundWithTwoDecimalPlace(operatingCF),
			Capex:        utils.RoundWithTwoDecimalPlace(capex),
			FreeCF:       utils.RoundWithTwoDecimalPlace(freeCF),
			CumulativeCF: utils.RoundWithTwoDecimalPlace(cumulative),
		})
	}

	return rows
}
