package domain

// Targets are the benchmark values KPIs are compared against. They are
// supplied by configuration and passed into the engine explicitly; the engine
// only does pass-through comparisons with them, never derives them.
type Targets struct {
	GrossMarginPct      float64 `mapstructure:"gross_margin_pct"`
	NetMarginPct        float64 `mapstructure:"net_margin_pct"`
	LaborCostPct        float64 `mapstructure:"labor_cost_pct"`
	RentCostPct         float64 `mapstructure:"rent_cost_pct"`
	FoodCostPct         float64 `mapstructure:"food_cost_pct"`
	BeverageCostPct     float64 `mapstructure:"beverage_cost_pct"`
	AvgTransactionValue float64 `mapstructure:"avg_transaction_value"`
	RevenuePerSQMMonth  float64 `mapstructure:"revenue_per_sqm_month"`
	RevenuePerLaborHour float64 `mapstructure:"revenue_per_labor_hour"`
	CustomerRetention   float64 `mapstructure:"customer_retention_pct"`
	InventoryTurnover   float64 `mapstructure:"inventory_turnover"`
	BreakEvenMonths     float64 `mapstructure:"break_even_months"`
	CLVCACRatio         float64 `mapstructure:"clv_cac_ratio"`
}

// CostTargetPct returns the benchmark share of revenue for a cost category,
// or false when no benchmark is configured for it.
func (t Targets) CostTargetPct(category string) (float64, bool) {
	switch category {
	case CostLabor:
		return t.LaborCostPct * 100, true
	case CostRent:
		return t.RentCostPct * 100, true
	case CostCOGSCoffee:
		return t.BeverageCostPct * 100, true
	case CostCOGSFood:
		return t.FoodCostPct * 100, true
	}
	return 0, false
}
