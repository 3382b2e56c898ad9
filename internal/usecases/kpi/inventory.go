package kpi

import (
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// daysPerMonth normalizes the days-inventory-outstanding figure. Months are
// treated as 30 days.
const daysPerMonth = 30.0

// InventoryMetrics carries the stock management KPIs.
//
// Turnover ratio = cost of goods sold / average stock value
// Waste rate     = waste / (sold + waste) * 100
// DIO            = avg stock value / daily cost of goods sold
type InventoryMetrics struct {
	AvgStockValue      float64 `json:"avg_stock_value"`
	CurrentStockValue  float64 `json:"current_stock_value"`
	TurnoverRatio      float64 `json:"turnover_ratio"`
	AnnualizedTurnover float64 `json:"annualized_turnover"`
	WasteRatePct       float64 `json:"waste_rate_pct"`
	DaysOutstanding    float64 `json:"days_inventory_outstanding"`
	TotalWasteUnits    int     `json:"total_waste_units"`
	TotalSoldUnits     int     `json:"total_sold_units"`
}

func (m InventoryMetrics) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"avg_stock_value":            domain.Currency(m.AvgStockValue),
		"current_stock_value":        domain.Currency(m.CurrentStockValue),
		"turnover_ratio":             domain.Ratio(m.TurnoverRatio),
		"annualized_turnover":        domain.Ratio(m.AnnualizedTurnover),
		"waste_rate_pct":             domain.Percent(m.WasteRatePct),
		"days_inventory_outstanding": domain.Count(m.DaysOutstanding),
		"total_waste_units":          domain.Count(float64(m.TotalWasteUnits)),
		"total_sold_units":           domain.Count(float64(m.TotalSoldUnits)),
	}
}

// InventoryMetrics computes stock KPIs over the filtered dataset. Cost of
// goods sold is derived from sold units at unit cost, the current stock value
// is the latest month's.
func (e *Engine) InventoryMetrics(ds *domain.Dataset, filters *domain.ReportFilters) InventoryMetrics {
	var (
		totalSold     int
		totalWaste    int
		totalCostSold float64
	)
	stockByMonth := make(map[string]float64)

	for _, inv := range ds.Inventory {
		if !filters.MatchesStore(inv.StoreCode) || !filters.MatchesYear(inv.Year) {
			continue
		}
		totalSold += inv.Sold
		totalWaste += inv.Waste
		totalCostSold += float64(inv.Sold) * inv.UnitCost
		stockByMonth[inv.Month] += inv.StockValue
	}

	months := sortedMonths(stockByMonth)
	if len(months) == 0 {
		return InventoryMetrics{}
	}

	avgStockValue := sumMonths(stockByMonth, months) / float64(len(months))
	currentStockValue := stockByMonth[months[len(months)-1]]

	turnover := 0.0
	if avgStockValue > 0 {
		turnover = totalCostSold / avgStockValue
	}
	annualized := turnover * 12 / float64(len(months))

	wasteRate := 0.0
	if totalSold+totalWaste > 0 {
		wasteRate = float64(totalWaste) / float64(totalSold+totalWaste) * 100
	}

	dio := 0.0
	dailyCostSold := totalCostSold / (float64(len(months)) * daysPerMonth)
	if dailyCostSold > 0 {
		dio = avgStockValue / dailyCostSold
	}

	return InventoryMetrics{
		AvgStockValue:      utils.RoundWithTwoDecimalPlace(avgStockValue),
		CurrentStockValue:  utils.RoundWithTwoDecimalPlace(currentStockValue),
		TurnoverRatio:      utils.RoundWithOneDecimalPlace(turnover),
		AnnualizedTurnover: utils.RoundWithOneDecimalPlace(annualized),
		WasteRatePct:       utils.RoundWithTwoDecimalPlace(wasteRate),
		DaysOutstanding:    utils.RoundWithOneDecimalPlace(dio),
		TotalWasteUnits:    totalWaste,
		TotalSoldUnits:     totalSold,
	}
}
