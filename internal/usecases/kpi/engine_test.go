package kpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakuli/retail-analytics-api/internal/domain"
)

func testStores() domain.Registry {
	return domain.Registry{
		"LIN": {Code: "LIN", Name: "Linnaeusstraat", City: "Amsterdam", SQM: 65, Opened: "2021-03"},
		"JPH": {Code: "JPH", Name: "Jan Pieter Heijestraat", City: "Amsterdam", SQM: 55, Opened: "2021-06"},
		"OOH": {Code: "OOH", Name: "Overhead (All Stores)", City: "Amsterdam", SQM: 0, Opened: "2021-01"},
	}
}

func testTargets() domain.Targets {
	return domain.Targets{
		GrossMarginPct:  0.68,
		NetMarginPct:    0.12,
		LaborCostPct:    0.30,
		RentCostPct:     0.12,
		FoodCostPct:     0.30,
		BeverageCostPct: 0.25,
	}
}

func testEngine() *Engine {
	return NewEngine(testStores(), testTargets())
}

func revenueRows(storeCode string, months []string, perMonth float64) []domain.RevenueEntry {
	rows := make([]domain.RevenueEntry, 0, len(months))
	for _, m := range months {
		rows = append(rows, domain.RevenueEntry{
			Year:      2024,
			Month:     m,
			StoreCode: storeCode,
			Category:  domain.CategoryCoffee,
			Revenue:   perMonth,
		})
	}
	return rows
}

func TestProfitability(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name     string
		dataset  *domain.Dataset
		validate func(t *testing.T, p Profitability)
	}{
		{
			name: "margins from revenue and cost totals",
			dataset: &domain.Dataset{
				Revenue: []domain.RevenueEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 100000},
				},
				Costs: []domain.CostEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostCOGSCoffee, Amount: 40000},
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 30000},
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostRent, Amount: 10000},
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostDepreciation, Amount: 5000},
				},
			},
			validate: func(t *testing.T, p Profitability) {
				assert.Equal(t, 100000.0, p.TotalRevenue)
				assert.Equal(t, 40000.0, p.COGS)
				assert.Equal(t, 60.0, p.GrossMarginPct)
				assert.Equal(t, 15.0, p.NetMarginPct)
				assert.Equal(t, 15000.0, p.NetProfit)
				assert.Equal(t, 20000.0, p.EBITDA)
				assert.Equal(t, 20.0, p.EBITDAPct)
				assert.Equal(t, 45.0, p.OpexRatioPct)
			},
		},
		{
			name: "zero revenue zeroes every percentage",
			dataset: &domain.Dataset{
				Costs: []domain.CostEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 5000},
				},
			},
			validate: func(t *testing.T, p Profitability) {
				assert.Equal(t, 0.0, p.GrossMarginPct)
				assert.Equal(t, 0.0, p.NetMarginPct)
				assert.Equal(t, 0.0, p.EBITDAPct)
				assert.Equal(t, 0.0, p.OpexRatioPct)
				assert.Equal(t, -5000.0, p.NetProfit)
			},
		},
		{
			name: "gross margin decreases as cogs grows",
			dataset: &domain.Dataset{
				Revenue: []domain.RevenueEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 100000},
				},
				Costs: []domain.CostEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostCOGSCoffee, Amount: 55000},
				},
			},
			validate: func(t *testing.T, p Profitability) {
				assert.Equal(t, 45.0, p.GrossMarginPct)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, engine.Profitability(tt.dataset, nil))
		})
	}
}

func TestProfitabilityMetricsUnits(t *testing.T) {
	engine := testEngine()
	ds := &domain.Dataset{
		Revenue: []domain.RevenueEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 1000},
		},
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostCOGSCoffee, Amount: 400},
		},
	}

	metrics := engine.Profitability(ds, nil).Metrics()

	assert.Equal(t, domain.UnitPercent, metrics["gross_margin_pct"].Unit)
	assert.Equal(t, domain.UnitCurrency, metrics["ebitda"].Unit)
	assert.Equal(t, 60.0, metrics["gross_margin_pct"].Value)
}

func TestStoreROI(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: revenueRows("LIN", []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}, 20000),
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 110000},
		},
		Investments: []domain.InvestmentEntry{
			{StoreCode: "LIN", Opened: "2021-03", Total: 50000},
		},
	}

	rows := engine.StoreROI(ds, nil)
	require.Len(t, rows, 1)

	// net profit 120000 - 110000 = 10000 on a 50000 investment over 6 months
	assert.Equal(t, 10000.0, rows[0].NetProfit)
	assert.Equal(t, 20.0, rows[0].ROIPct)
	assert.Equal(t, 40.0, rows[0].AnnualizedPct)
	assert.Equal(t, 6, rows[0].MonthsOperating)
	assert.Equal(t, "Linnaeusstraat", rows[0].StoreName)
}

func TestStoreROI_ZeroInvestment(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue:     revenueRows("LIN", []string{"2024-01"}, 20000),
		Costs:       []domain.CostEntry{{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 5000}},
		Investments: []domain.InvestmentEntry{{StoreCode: "LIN", Total: 0}},
	}

	rows := engine.StoreROI(ds, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].ROIPct)
	assert.Equal(t, 0.0, rows[0].AnnualizedPct)
}

func TestBreakEven(t *testing.T) {
	engine := testEngine()

	// 12 months at 100000 revenue, 20000 fixed (rent) and 60000 variable per
	// month: variable cost ratio 0.6, break-even 20000/(1-0.6) = 50000.
	months := []string{
		"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06",
		"2024-07", "2024-08", "2024-09", "2024-10", "2024-11", "2024-12",
	}
	ds := &domain.Dataset{
		Revenue:     revenueRows("LIN", months, 100000),
		Investments: []domain.InvestmentEntry{{StoreCode: "LIN", Total: 240000}},
	}
	for _, m := range months {
		ds.Costs = append(ds.Costs,
			domain.CostEntry{Year: 2024, Month: m, StoreCode: "LIN", Category: domain.CostRent, Amount: 20000},
			domain.CostEntry{Year: 2024, Month: m, StoreCode: "LIN", Category: domain.CostLabor, Amount: 60000},
		)
	}

	rows := engine.BreakEven(ds, nil)
	require.Len(t, rows, 1)

	be := rows[0]
	assert.Equal(t, 50000.0, be.BreakEvenRevenue)
	assert.Equal(t, 0.6, be.VariableCostRatio)
	assert.Equal(t, 0.4, be.ContributionMargin)
	assert.Equal(t, 20000.0, be.AvgMonthlyProfit)
	require.NotNil(t, be.MonthsToPayback)
	assert.Equal(t, 12.0, *be.MonthsToPayback)
	assert.Equal(t, 200.0, be.PerformancePct)
}

func TestBreakEven_UnreachablePayback(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue:     revenueRows("LIN", []string{"2024-01", "2024-02"}, 10000),
		Investments: []domain.InvestmentEntry{{StoreCode: "LIN", Total: 100000}},
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 15000},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CostLabor, Amount: 15000},
		},
	}

	rows := engine.BreakEven(ds, nil)
	require.Len(t, rows, 1)

	// losing money: payback is unreachable, reported as nil rather than inf
	assert.Nil(t, rows[0].MonthsToPayback)
}

func TestBreakEven_VariableCostRatioAtOne(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue:     revenueRows("LIN", []string{"2024-01"}, 10000),
		Investments: []domain.InvestmentEntry{{StoreCode: "LIN", Total: 50000}},
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 10000},
		},
	}

	rows := engine.BreakEven(ds, nil)
	require.Len(t, rows, 1)

	// variable cost ratio of exactly 1 makes break-even undefined
	assert.Equal(t, 1.0, rows[0].VariableCostRatio)
	assert.Equal(t, 0.0, rows[0].BreakEvenRevenue)
	assert.Equal(t, 0.0, rows[0].ContributionMargin)
}

func TestRevenueMetrics(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: []domain.RevenueEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 7000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryFood, Revenue: 2000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryMerchandise, Revenue: 600},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategorySubscription, Revenue: 400},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 10000},
		},
		Customers: []domain.CustomerEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", AvgTransactionValue: 6.0, UniqueCustomers: 900},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", AvgTransactionValue: 7.0, UniqueCustomers: 1100},
		},
	}

	m := engine.RevenueMetrics(ds, nil)

	assert.Equal(t, 20000.0, m.TotalRevenue)
	assert.Equal(t, 2, m.MonthsOfData)
	assert.Equal(t, 10000.0, m.AvgMonthlyRevenue)
	// 20000 / 2 months / 65 sqm
	assert.InDelta(t, 153.85, m.RevenuePerSQMMonth, 0.01)
	assert.Equal(t, 6.5, m.AvgTransaction)
	assert.Equal(t, 2000, m.TotalCustomers)
	assert.Equal(t, 85.0, m.CoffeePct)
	assert.Equal(t, 10.0, m.FoodPct)
	assert.Equal(t, 3.0, m.MerchandisePct)
	assert.Equal(t, 2.0, m.SubscriptionPct)
	// fewer than six months of data
	assert.Equal(t, 0.0, m.GrowthPct3M)
}

func TestRevenueMetrics_Growth(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{}
	for i, rev := range []float64{1000, 1000, 1000, 1100, 1100, 1100} {
		month := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05", "2024-06"}[i]
		ds.Revenue = append(ds.Revenue, domain.RevenueEntry{
			Year: 2024, Month: month, StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: rev,
		})
	}

	m := engine.RevenueMetrics(ds, nil)

	// (3300 - 3000) / 3000 * 100
	assert.Equal(t, 10.0, m.GrowthPct3M)
}

func TestRevenueByPeriod(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: []domain.RevenueEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 100},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 200},
			{Year: 2024, Month: "2024-04", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 400},
			{Year: 2025, Month: "2025-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 800},
		},
	}

	tests := []struct {
		name     string
		period   string
		expected []PeriodRevenue
	}{
		{
			name:   "monthly buckets",
			period: PeriodMonth,
			expected: []PeriodRevenue{
				{Period: "2024-01", Revenue: 100},
				{Period: "2024-02", Revenue: 200},
				{Period: "2024-04", Revenue: 400},
				{Period: "2025-01", Revenue: 800},
			},
		},
		{
			name:   "quarterly buckets",
			period: PeriodQuarter,
			expected: []PeriodRevenue{
				{Period: "2024-Q1", Revenue: 300},
				{Period: "2024-Q2", Revenue: 400},
				{Period: "2025-Q1", Revenue: 800},
			},
		},
		{
			name:   "yearly buckets",
			period: PeriodYear,
			expected: []PeriodRevenue{
				{Period: "2024", Revenue: 700},
				{Period: "2025", Revenue: 800},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.RevenueByPeriod(ds, nil, tt.period))
		})
	}
}

func TestCostStructure(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: []domain.RevenueEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 100000},
		},
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Label: "Labor Costs", Amount: 35000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostRent, Label: "Rent & Occupancy", Amount: 11000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostSupplies, Label: "Supplies & Consumables", Amount: 2000},
		},
	}

	rows := engine.CostStructure(ds, nil)
	require.Len(t, rows, 3)

	// sorted by amount, largest first
	assert.Equal(t, domain.CostLabor, rows[0].Category)
	assert.Equal(t, 35.0, rows[0].PctOfRevenue)
	require.NotNil(t, rows[0].TargetPct)
	assert.Equal(t, 30.0, *rows[0].TargetPct)
	require.NotNil(t, rows[0].VsTargetPct)
	assert.Equal(t, 5.0, *rows[0].VsTargetPct)

	assert.Equal(t, domain.CostRent, rows[1].Category)
	require.NotNil(t, rows[1].VsTargetPct)
	assert.Equal(t, -1.0, *rows[1].VsTargetPct)

	// supplies has no benchmark
	assert.Nil(t, rows[2].TargetPct)
	assert.Nil(t, rows[2].VsTargetPct)
}

func TestCustomerMetrics(t *testing.T) {
	engine := testEngine()

	tests := []struct {
		name     string
		dataset  *domain.Dataset
		validate func(t *testing.T, m CustomerMetrics)
	}{
		{
			name: "cac and clv from marketing spend and retention",
			dataset: &domain.Dataset{
				Customers: []domain.CustomerEntry{
					{
						Year: 2024, Month: "2024-01", StoreCode: "LIN",
						Revenue: 60000, TotalTransactions: 5000, UniqueCustomers: 1000,
						NewCustomers: 50, ReturningCustomers: 950,
						AvgTransactionValue: 6.5, RetentionRate: 0.5,
					},
				},
				Costs: []domain.CostEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostMarketing, Amount: 5000},
				},
			},
			validate: func(t *testing.T, m CustomerMetrics) {
				assert.Equal(t, 100.0, m.CAC)
				// 60 per customer, lifespan 1/(1-0.5) = 2 months
				assert.Equal(t, 120.0, m.CLV)
				assert.Equal(t, 1.2, m.CLVCACRatio)
				assert.Equal(t, 5.0, m.VisitsPerCustomer)
				assert.Equal(t, 5.0, m.NewCustomerPct)
				assert.Equal(t, 0.5, m.AvgRetentionRate)
			},
		},
		{
			name: "no new customers means no cac and no ratio",
			dataset: &domain.Dataset{
				Customers: []domain.CustomerEntry{
					{
						Year: 2024, Month: "2024-01", StoreCode: "LIN",
						Revenue: 1000, TotalTransactions: 100, UniqueCustomers: 50,
						RetentionRate: 0.4,
					},
				},
				Costs: []domain.CostEntry{
					{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostMarketing, Amount: 5000},
				},
			},
			validate: func(t *testing.T, m CustomerMetrics) {
				assert.Equal(t, 0.0, m.CAC)
				assert.Equal(t, 0.0, m.CLVCACRatio)
			},
		},
		{
			name: "full retention caps the lifespan",
			dataset: &domain.Dataset{
				Customers: []domain.CustomerEntry{
					{
						Year: 2024, Month: "2024-01", StoreCode: "LIN",
						Revenue: 1000, TotalTransactions: 100, UniqueCustomers: 100,
						RetentionRate: 1.0,
					},
				},
			},
			validate: func(t *testing.T, m CustomerMetrics) {
				// 10 per customer over the capped 24-month lifespan
				assert.Equal(t, 240.0, m.CLV)
			},
		},
		{
			name:    "empty dataset returns zero values",
			dataset: &domain.Dataset{},
			validate: func(t *testing.T, m CustomerMetrics) {
				assert.Equal(t, CustomerMetrics{}, m)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, engine.CustomerMetrics(tt.dataset, nil))
		})
	}
}

func TestLaborEfficiency(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Labor: []domain.LaborEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Revenue: 50000, FTECount: 5, TotalLaborHours: 800, LaborCost: 16000},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Revenue: 60000, FTECount: 5, TotalLaborHours: 1200, LaborCost: 17000},
		},
	}

	m := engine.LaborEfficiency(ds, nil)

	assert.Equal(t, 2000.0, m.TotalLaborHours)
	assert.Equal(t, 33000.0, m.TotalLaborCost)
	assert.Equal(t, 5.0, m.AvgFTE)
	assert.Equal(t, 55.0, m.RevenuePerLaborHour)
	assert.Equal(t, 30.0, m.LaborCostPct)
	// 110000 / (5 FTE * 2 months)
	assert.Equal(t, 11000.0, m.RevenuePerFTEMonth)
	assert.Equal(t, 30.0, m.TargetLaborPct)
	assert.Equal(t, 0.0, m.VsTargetPct)
}

func TestLaborEfficiency_ZeroHours(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Labor: []domain.LaborEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Revenue: 50000, FTECount: 0, TotalLaborHours: 0, LaborCost: 0},
		},
	}

	m := engine.LaborEfficiency(ds, nil)

	assert.Equal(t, 0.0, m.RevenuePerLaborHour)
	assert.Equal(t, 0.0, m.RevenuePerFTEMonth)
}

func TestInventoryMetrics(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Inventory: []domain.InventoryEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", ItemName: "Espresso Beans", UnitCost: 10, Sold: 500, Waste: 20, StockValue: 4000},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", ItemName: "Espresso Beans", UnitCost: 10, Sold: 480, Waste: 0, StockValue: 6000},
		},
	}

	m := engine.InventoryMetrics(ds, nil)

	// cost of sold 9800, avg stock 5000
	assert.Equal(t, 5000.0, m.AvgStockValue)
	assert.Equal(t, 6000.0, m.CurrentStockValue)
	assert.InDelta(t, 2.0, m.TurnoverRatio, 0.05)
	assert.InDelta(t, 11.8, m.AnnualizedTurnover, 0.05)
	assert.Equal(t, 2.0, m.WasteRatePct)
	// daily cogs 9800/60, dio = 5000 / 163.33
	assert.InDelta(t, 30.6, m.DaysOutstanding, 0.05)
	assert.Equal(t, 20, m.TotalWasteUnits)
	assert.Equal(t, 980, m.TotalSoldUnits)
}

func TestInventoryMetrics_Empty(t *testing.T) {
	engine := testEngine()
	assert.Equal(t, InventoryMetrics{}, engine.InventoryMetrics(&domain.Dataset{}, nil))
}

func TestCashFlow(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: revenueRows("LIN", []string{"2024-01", "2024-02"}, 50000),
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 30000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostDepreciation, Amount: 5000},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CostLabor, Amount: 60000},
			{Year: 2024, Month: "2024-03", StoreCode: "LIN", Category: domain.CostRent, Amount: 4000},
		},
	}

	rows := engine.CashFlow(ds, nil)
	require.Len(t, rows, 3)

	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, 15000.0, rows[0].NetProfit)
	assert.Equal(t, 20000.0, rows[0].OperatingCF)
	assert.Equal(t, 20000.0, rows[0].CumulativeCF)

	assert.Equal(t, -10000.0, rows[1].OperatingCF)
	assert.Equal(t, 10000.0, rows[1].CumulativeCF)

	// month with costs but no revenue still appears
	assert.Equal(t, "2024-03", rows[2].Month)
	assert.Equal(t, -4000.0, rows[2].OperatingCF)
	assert.Equal(t, 6000.0, rows[2].CumulativeCF)
}

func TestCashFlow_FreeCashFlowSubtractsCapex(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: revenueRows("LIN", []string{"2024-01", "2024-02"}, 50000),
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostLabor, Amount: 30000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostDepreciation, Amount: 5000},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CostLabor, Amount: 30000},
		},
		Capex: []domain.CapexEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", AccountCode: "037000", Amount: 12000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", AccountCode: "021000", Amount: 3000},
			{Year: 2024, Month: "2024-01", StoreCode: "JPH", AccountCode: "037000", Amount: 40000},
		},
	}

	rows := engine.CashFlow(ds, &domain.ReportFilters{StoreCodes: []string{"LIN"}})
	require.Len(t, rows, 2)

	// operating 20000, capex 15000 (JPH spend filtered out)
	assert.Equal(t, 15000.0, rows[0].Capex)
	assert.Equal(t, 20000.0, rows[0].OperatingCF)
	assert.Equal(t, 5000.0, rows[0].FreeCF)

	// month without capex: free cash flow equals operating cash flow
	assert.Equal(t, 0.0, rows[1].Capex)
	assert.Equal(t, rows[1].OperatingCF, rows[1].FreeCF)
}

func TestImpactSummary(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Impact: []domain.ImpactEntry{
			{
				Year: 2024, Month: "2024-01",
				KgCoffeeSourced: 2800, DirectTradePct: 0.92, FarmersSupported: 840,
				FarmerPremiumPct: 0.35, PremiumPaidEUR: 9000, CompostablePct: 0.88,
				CO2PerCupGrams: 70, CupsServed: 90000,
			},
			{
				Year: 2024, Month: "2024-02",
				KgCoffeeSourced: 3000, DirectTradePct: 0.94, FarmersSupported: 850,
				FarmerPremiumPct: 0.35, PremiumPaidEUR: 11000, CompostablePct: 0.90,
				CO2PerCupGrams: 68, CupsServed: 110000,
			},
		},
	}

	m := engine.ImpactSummary(ds, nil)

	assert.Equal(t, 5800.0, m.TotalKgSourced)
	assert.Equal(t, 20000.0, m.TotalPremiumPaid)
	assert.Equal(t, 200000, m.TotalCupsServed)
	// latest month's figures
	assert.Equal(t, 850, m.FarmersSupported)
	assert.Equal(t, 68.0, m.CurrentCO2PerCup)
	assert.Equal(t, 3000.0, m.KgLatestMonth)
	assert.Equal(t, 35.0, m.AvgFarmerPremium)
	assert.Equal(t, 93.0, m.AvgDirectTradePct)
	assert.Equal(t, 89.0, m.AvgCompostablePct)
	assert.Equal(t, 0.1, m.PremiumPerCup)
}

func TestExecutiveSummary(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: []domain.RevenueEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 100000},
			{Year: 2024, Month: "2024-01", StoreCode: "JPH", Category: domain.CategoryCoffee, Revenue: 50000},
		},
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostCOGSCoffee, Amount: 45000},
			{Year: 2024, Month: "2024-01", StoreCode: "JPH", Category: domain.CostCOGSCoffee, Amount: 30000},
		},
		Investments: []domain.InvestmentEntry{
			{StoreCode: "LIN", Total: 100000},
			{StoreCode: "JPH", Total: 50000},
		},
	}

	summary := engine.ExecutiveSummary(ds, nil)

	assert.Equal(t, 150000.0, summary.TotalRevenue)
	assert.Equal(t, 50.0, summary.GrossMarginPct)
	assert.Equal(t, 2, summary.ActiveStores)
	assert.Equal(t, 150000.0, summary.TotalInvestment)
	// LIN ROI 55%, JPH ROI 40%
	assert.Equal(t, 47.5, summary.AvgROIPct)
}

func TestEngineIdempotence(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: revenueRows("LIN", []string{"2024-01", "2024-02", "2024-03"}, 33333.33),
		Costs: []domain.CostEntry{
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CostCOGSCoffee, Amount: 12345.67},
			{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CostLabor, Amount: 9876.54},
		},
		Investments: []domain.InvestmentEntry{{StoreCode: "LIN", Total: 150000}},
	}

	first := engine.Profitability(ds, nil)
	second := engine.Profitability(ds, nil)
	assert.Equal(t, first, second)

	assert.Equal(t, engine.StoreROI(ds, nil), engine.StoreROI(ds, nil))
	assert.Equal(t, engine.BreakEven(ds, nil), engine.BreakEven(ds, nil))
	assert.Equal(t, engine.CashFlow(ds, nil), engine.CashFlow(ds, nil))
}

func TestFilters(t *testing.T) {
	engine := testEngine()

	ds := &domain.Dataset{
		Revenue: []domain.RevenueEntry{
			{Year: 2023, Month: "2023-12", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 1000},
			{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 2000},
			{Year: 2024, Month: "2024-01", StoreCode: "JPH", Category: domain.CategoryCoffee, Revenue: 4000},
		},
	}

	all := engine.Profitability(ds, nil)
	assert.Equal(t, 7000.0, all.TotalRevenue)

	onlyLIN := engine.Profitability(ds, &domain.ReportFilters{StoreCodes: []string{"LIN"}})
	assert.Equal(t, 3000.0, onlyLIN.TotalRevenue)

	only2024 := engine.Profitability(ds, &domain.ReportFilters{Years: []int{2024}})
	assert.Equal(t, 6000.0, only2024.TotalRevenue)

	both := engine.Profitability(ds, &domain.ReportFilters{StoreCodes: []string{"LIN"}, Years: []int{2024}})
	assert.Equal(t, 2000.0, both.TotalRevenue)
}
