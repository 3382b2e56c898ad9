package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

func testStores() domain.Registry {
	return domain.Registry{
		"LIN": {Code: "LIN", Name: "Linnaeusstraat", City: "Amsterdam", SQM: 65, Opened: "2021-03"},
		"JPH": {Code: "JPH", Name: "Jan Pieter Heijestraat", City: "Amsterdam", SQM: 55, Opened: "2021-06"},
		"HAS": {Code: "HAS", Name: "Haarlemmerstraat", City: "Leiden", SQM: 55, Opened: "2025-01"},
		"OOH": {Code: "OOH", Name: "Overhead (All Stores)", City: "Amsterdam", SQM: 0, Opened: "2021-01"},
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	now := time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)
	years := []int{2023, 2024}

	first := NewGenerator(testStores(), now).Generate(years)
	second := NewGenerator(testStores(), now).Generate(years)

	assert.Equal(t, first.Revenue, second.Revenue)
	assert.Equal(t, first.Costs, second.Costs)
	assert.Equal(t, first.Customers, second.Customers)
	assert.Equal(t, first.Labor, second.Labor)
	assert.Equal(t, first.Inventory, second.Inventory)
	assert.Equal(t, first.Investments, second.Investments)
	assert.Equal(t, first.Impact, second.Impact)
	assert.Equal(t, first.Capex, second.Capex)
}

func TestGenerate_NoFutureMonths(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2024})

	for _, r := range ds.Revenue {
		assert.LessOrEqual(t, r.Month, "2024-03")
	}
	for _, i := range ds.Impact {
		assert.LessOrEqual(t, i.Month, "2024-03")
	}
}

func TestGenerate_RespectsOpeningDates(t *testing.T) {
	now := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2024})

	// HAS opens 2025-01 and must not appear in 2024 revenue
	for _, r := range ds.Revenue {
		assert.NotEqual(t, "HAS", r.StoreCode)
	}
}

func TestGenerate_ExcludesOverheadStore(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2024})

	for _, r := range ds.Revenue {
		assert.NotEqual(t, domain.OverheadCode, r.StoreCode)
	}
	for _, inv := range ds.Investments {
		assert.NotEqual(t, domain.OverheadCode, inv.StoreCode)
	}
}

func TestGenerate_ValidDataset(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2023, 2024})

	require.NotEmpty(t, ds.Revenue)
	require.NotEmpty(t, ds.Costs)
	require.NotEmpty(t, ds.Customers)
	require.NotEmpty(t, ds.Labor)
	require.NotEmpty(t, ds.Inventory)
	require.NotEmpty(t, ds.Investments)
	require.NotEmpty(t, ds.Impact)
	require.NotEmpty(t, ds.Capex)

	// generated data must pass the same validation as ERP data
	assert.NoError(t, ds.Validate())
}

func TestGenerate_CostsTrackRevenue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2024})

	totalRevenue := 0.0
	for _, r := range ds.Revenue {
		totalRevenue += r.Revenue
	}
	totalCosts := 0.0
	for _, c := range ds.Costs {
		totalCosts += c.Amount
	}

	require.Greater(t, totalRevenue, 0.0)
	// cost profiles sum to roughly 80% of revenue
	ratio := totalCosts / totalRevenue
	assert.Greater(t, ratio, 0.6)
	assert.Less(t, ratio, 1.0)
}

func TestGenerate_InventoryBalances(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2024})

	for _, inv := range ds.Inventory {
		assert.GreaterOrEqual(t, inv.ClosingStock, 0)
		assert.GreaterOrEqual(t, inv.Waste, 0)
		assert.Equal(t, inv.StockValue, utils.RoundWithTwoDecimalPlace(float64(inv.ClosingStock)*inv.UnitCost))
	}
}

func TestGenerate_MonetaryValuesFollowRoundingPolicy(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := NewGenerator(testStores(), now).Generate([]int{2023, 2024})

	for _, r := range ds.Revenue {
		assert.Equal(t, utils.RoundWithTwoDecimalPlace(r.Revenue), r.Revenue)
	}
	for _, c := range ds.Costs {
		assert.Equal(t, utils.RoundWithTwoDecimalPlace(c.Amount), c.Amount)
	}
	for _, c := range ds.Capex {
		assert.Equal(t, utils.RoundWithTwoDecimalPlace(c.Amount), c.Amount)
	}
	for _, inv := range ds.Investments {
		assert.Equal(t, utils.RoundWithTwoDecimalPlace(inv.Total), inv.Total)
	}
}
