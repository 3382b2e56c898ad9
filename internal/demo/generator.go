// Package demo generates a deterministic sample dataset covering every
// record collection the KPI engine consumes. It is the data source used when
// no ERP connection is configured, so reports can render out of the box.
package demo

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// Fixed seed: the same store registry and year range always produce the same
// dataset, which keeps demo reports stable between restarts.
const seed = 42

// Monthly seasonality multipliers. Coffee sells better in winter.
var seasonality = [12]float64{1.05, 1.02, 0.98, 0.95, 0.93, 0.88, 0.85, 0.87, 0.95, 1.02, 1.08, 1.15}

type inventoryItem struct {
	name     string
	category string
	unitCost float64
}

var inventoryItems = []inventoryItem{
	{"Single Origin Beans", "coffee", 18.50},
	{"Blend Beans", "coffee", 14.00},
	{"Milk & Alternatives", "dairy", 2.80},
	{"Pastries & Cakes", "food", 3.50},
	{"Sandwiches & Wraps", "food", 4.20},
	{"Cups & Packaging", "supplies", 0.35},
	{"Merchandise Items", "merchandise", 12.00},
	{"Syrups & Toppings", "supplies", 8.50},
}

var costProfiles = []struct {
	category     string
	label        string
	pctOfRevenue float64
	variance     float64
}{
	{domain.CostCOGSCoffee, "COGS - Coffee", 0.18, 0.03},
	{domain.CostCOGSFood, "COGS - Food", 0.09, 0.02},
	{domain.CostCOGSMerch, "COGS - Merchandise", 0.03, 0.01},
	{domain.CostLabor, "Labor Costs", 0.28, 0.04},
	{domain.CostRent, "Rent & Occupancy", 0.11, 0.01},
	{domain.CostUtilities, "Utilities", 0.035, 0.008},
	{domain.CostMarketing, "Marketing", 0.025, 0.01},
	{domain.CostMaintenance, "Equipment Maintenance", 0.015, 0.005},
	{domain.CostSupplies, "Supplies & Consumables", 0.02, 0.005},
	{domain.CostInsurance, "Insurance & Licenses", 0.012, 0.002},
	{domain.CostDepreciation, "Depreciation", 0.04, 0.005},
}

// Generator builds demo datasets over a store registry. The reference time
// caps generation at the current month so no future data appears.
type Generator struct {
	stores domain.Registry
	now    time.Time
}

func NewGenerator(stores domain.Registry, now time.Time) *Generator {
	return &Generator{stores: stores, now: now}
}

// Generate builds the full demo dataset for the given years.
func (g *Generator) Generate(years []int) *domain.Dataset {
	revenue := g.generateRevenue(years)

	return &domain.Dataset{
		Revenue:     revenue,
		Costs:       g.generateCosts(revenue),
		Customers:   g.generateCustomers(revenue),
		Labor:       g.generateLabor(revenue),
		Inventory:   g.generateInventory(years),
		Investments: g.generateInvestments(),
		Impact:      g.generateImpact(years),
		Capex:       g.generateCapex(years),
	}
}

// storeCodes returns the real stores in a stable order, so generation does
// not depend on map iteration.
func (g *Generator) storeCodes() []string {
	codes := g.stores.Codes()
	sort.Strings(codes)
	return codes
}

func (g *Generator) monthInRange(year, month int) bool {
	if year > g.now.Year() {
		return false
	}
	return year < g.now.Year() || month <= int(g.now.Month())
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func (g *Generator) generateRevenue(years []int) []domain.RevenueEntry {
	rng := rand.New(rand.NewSource(seed))
	stores := g.storeCodes()

	baseRevenue := make(map[string]float64, len(stores))
	for _, code := range stores {
		sqm := g.stores[code].SQM
		if sqm == 0 {
			sqm = 55
		}
		baseRevenue[code] = float64(sqm) * uniform(rng, 550, 750)
	}

	categorySplits := []struct {
		category string
		share    float64
	}{
		{domain.CategoryCoffee, 0.58},
		{domain.CategoryFood, 0.25},
		{domain.CategoryMerchandise, 0.07},
		{domain.CategorySubscription, 0.10},
	}
	channelSplits := []struct {
		channel string
		share   float64
	}{
		{"dine_in", 0.52},
		{"takeaway", 0.33},
		{"delivery", 0.08},
		{"subscription", 0.07},
	}

	var rows []domain.RevenueEntry
	for _, year := range years {
		for month := 1; month <= 12; month++ {
			if !g.monthInRange(year, month) {
				continue
			}
			seasonMult := seasonality[month-1]

			for _, code := range stores {
				monthsOpen := monthsSince(g.stores[code].Opened, year, month)
				if monthsOpen < 0 {
					continue
				}

				// New stores ramp up over their first six months, then grow
				// about half a percent per month.
				ramp := 1.0
				if monthsOpen < 6 {
					ramp = 0.4 + 0.1*float64(monthsOpen)
				}
				growth := 1.0 + 0.005*float64(max(0, monthsOpen-6))

				total := baseRevenue[code] * seasonMult * ramp * growth * uniform(rng, 0.88, 1.12)

				for _, cat := range categorySplits {
					for _, ch := range channelSplits {
						rev := total * cat.share * ch.share * uniform(rng, 0.9, 1.1)
						rows = append(rows, domain.RevenueEntry{
							Year:      year,
							Month:     monthKey(year, month),
							StoreCode: code,
							Category:  cat.category,
							Channel:   ch.channel,
							Revenue:   utils.RoundWithTwoDecimalPlace(rev),
						})
					}
				}
			}
		}
	}

	return rows
}

func (g *Generator) generateCosts(revenue []domain.RevenueEntry) []domain.CostEntry {
	rng := rand.New(rand.NewSource(seed))
	monthly := monthlyStoreRevenue(revenue)

	var rows []domain.CostEntry
	for _, mr := range monthly {
		for _, profile := range costProfiles {
			pct := profile.pctOfRevenue + uniform(rng, -profile.variance, profile.variance)
			if pct < 0 {
				pct = 0
			}
			rows = append(rows, domain.CostEntry{
				Year:      mr.year,
				Month:     mr.month,
				StoreCode: mr.storeCode,
				Category:  profile.category,
				Label:     profile.label,
				Amount:    utils.RoundWithTwoDecimalPlace(mr.revenue * pct),
			})
		}
	}

	return rows
}

func (g *Generator) generateCustomers(revenue []domain.RevenueEntry) []domain.CustomerEntry {
	rng := rand.New(rand.NewSource(seed))
	monthly := monthlyStoreRevenue(revenue)

	rows := make([]domain.CustomerEntry, 0, len(monthly))
	for _, mr := range monthly {
		avgTicket := uniform(rng, 5.20, 7.80)
		transactions := int(mr.revenue / avgTicket)
		uniqueCustomers := int(float64(transactions) * uniform(rng, 0.55, 0.72))
		newCustomerPct := uniform(rng, 0.25, 0.45)
		newCustomers := int(float64(uniqueCustomers) * newCustomerPct)

		rows = append(rows, domain.CustomerEntry{
			Year:                mr.year,
			Month:               mr.month,
			StoreCode:           mr.storeCode,
			Revenue:             mr.revenue,
			TotalTransactions:   transactions,
			UniqueCustomers:     uniqueCustomers,
			NewCustomers:        newCustomers,
			ReturningCustomers:  uniqueCustomers - newCustomers,
			AvgTransactionValue: utils.RoundWithTwoDecimalPlace(avgTicket),
			RetentionRate:       utils.RoundWithTwoDecimalPlace(1 - newCustomerPct),
		})
	}

	return rows
}

func (g *Generator) generateLabor(revenue []domain.RevenueEntry) []domain.LaborEntry {
	rng := rand.New(rand.NewSource(seed))
	monthly := monthlyStoreRevenue(revenue)

	rows := make([]domain.LaborEntry, 0, len(monthly))
	for _, mr := range monthly {
		sqm := g.stores[mr.storeCode].SQM
		if sqm == 0 {
			sqm = 55
		}
		fte := float64(sqm)/18 + uniform(rng, -0.5, 0.5)
		if fte < 2 {
			fte = 2
		}
		hours := fte * uniform(rng, 140, 168)
		laborCost := hours * uniform(rng, 14.5, 18.5)

		rows = append(rows, domain.LaborEntry{
			Year:            mr.year,
			Month:           mr.month,
			StoreCode:       mr.storeCode,
			Revenue:         mr.revenue,
			FTECount:        utils.RoundWithTwoDecimalPlace(fte),
			TotalLaborHours: float64(int(hours)),
			LaborCost:       utils.RoundWithTwoDecimalPlace(laborCost),
		})
	}

	return rows
}

func (g *Generator) generateInventory(years []int) []domain.InventoryEntry {
	rng := rand.New(rand.NewSource(seed))
	stores := g.storeCodes()

	var rows []domain.InventoryEntry
	for _, year := range years {
		for month := 1; month <= 12; month++ {
			if !g.monthInRange(year, month) {
				continue
			}
			for _, code := range stores {
				for _, item := range inventoryItems {
					opening := 20 + rng.Intn(130)
					purchased := 30 + rng.Intn(170)
					maxSold := int(float64(opening+purchased) * 0.85)
					sold := 25
					if maxSold > 25 {
						sold = 25 + rng.Intn(maxSold-25)
					}
					waste := int(uniform(rng, 0.02, 0.08) * float64(sold))
					closing := opening + purchased - sold - waste
					if closing < 0 {
						closing = 0
					}

					rows = append(rows, domain.InventoryEntry{
						Year:         year,
						Month:        monthKey(year, month),
						StoreCode:    code,
						ItemName:     item.name,
						ItemCategory: item.category,
						UnitCost:     item.unitCost,
						OpeningStock: opening,
						Purchased:    purchased,
						Sold:         sold,
						Waste:        waste,
						ClosingStock: closing,
						StockValue:   utils.RoundWithTwoDecimalPlace(float64(closing) * item.unitCost),
					})
				}
			}
		}
	}

	return rows
}

func (g *Generator) generateInvestments() []domain.InvestmentEntry {
	rng := rand.New(rand.NewSource(seed))
	stores := g.storeCodes()

	rows := make([]domain.InvestmentEntry, 0, len(stores))
	for _, code := range stores {
		sqm := g.stores[code].SQM
		if sqm == 0 {
			sqm = 55
		}
		buildout := float64(sqm) * uniform(rng, 1200, 1800)
		equipment := uniform(rng, 25000, 45000)
		furniture := float64(sqm) * uniform(rng, 150, 300)
		workingCapital := uniform(rng, 15000, 30000)

		rows = append(rows, domain.InvestmentEntry{
			StoreCode:      code,
			Opened:         g.stores[code].Opened,
			BuildoutCost:   utils.RoundWithTwoDecimalPlace(buildout),
			EquipmentCost:  utils.RoundWithTwoDecimalPlace(equipment),
			FurnitureCost:  utils.RoundWithTwoDecimalPlace(furniture),
			WorkingCapital: utils.RoundWithTwoDecimalPlace(workingCapital),
			Total:          utils.RoundWithTwoDecimalPlace(buildout + equipment + furniture + workingCapital),
		})
	}

	return rows
}

func (g *Generator) generateImpact(years []int) []domain.ImpactEntry {
	rng := rand.New(rand.NewSource(seed))

	var rows []domain.ImpactEntry
	for _, year := range years {
		for month := 1; month <= 12; month++ {
			if !g.monthInRange(year, month) {
				continue
			}

			monthsSinceStart := float64((year-2021)*12 + month)
			growthFactor := 1.0 + 0.02*monthsSinceStart

			kgCoffee := 2200 * growthFactor * uniform(rng, 0.9, 1.1)
			directTrade := 0.80 + 0.001*monthsSinceStart + uniform(rng, -0.02, 0.02)
			if directTrade > 0.98 {
				directTrade = 0.98
			}
			farmers := 500 + 3*int(monthsSinceStart) + rng.Intn(20) - 10
			premiumPct := 0.30 + 0.001*monthsSinceStart + uniform(rng, -0.02, 0.02)
			marketPrice := uniform(rng, 4.50, 6.50)
			paidPrice := marketPrice * (1 + premiumPct)
			premiumPaid := (paidPrice - marketPrice) * kgCoffee * directTrade
			compostable := 0.75 + 0.002*monthsSinceStart
			if compostable > 0.98 {
				compostable = 0.98
			}
			co2 := 85 - 0.15*monthsSinceStart + uniform(rng, -3, 3)
			if co2 < 55 {
				co2 = 55
			}

			rows = append(rows, domain.ImpactEntry{
				Year:             year,
				Month:            monthKey(year, month),
				KgCoffeeSourced:  utils.RoundWithTwoDecimalPlace(kgCoffee),
				DirectTradePct:   utils.RoundWithTwoDecimalPlace(directTrade),
				FarmersSupported: farmers,
				FarmerPremiumPct: utils.RoundWithTwoDecimalPlace(premiumPct),
				MarketPricePerKg: utils.RoundWithTwoDecimalPlace(marketPrice),
				PaidPricePerKg:   utils.RoundWithTwoDecimalPlace(paidPrice),
				PremiumPaidEUR:   utils.RoundWithTwoDecimalPlace(premiumPaid),
				CompostablePct:   utils.RoundWithTwoDecimalPlace(compostable),
				CO2PerCupGrams:   utils.RoundWithTwoDecimalPlace(co2),
				CupsServed:       int(kgCoffee * 1000 / 18), // ~18g per double shot
			})
		}
	}

	return rows
}

func (g *Generator) generateCapex(years []int) []domain.CapexEntry {
	rng := rand.New(rand.NewSource(seed))
	stores := g.storeCodes()

	accounts := []struct {
		code  string
		label string
	}{
		{"037000", "CAPEX Winkels (Store Renovations)"},
		{"032000", "WIA - Assets Under Construction"},
		{"031000", "Bedrijfsinventaris (Business Inventory)"},
		{"021000", "Koffiemachines (Coffee Machines)"},
		{"013000", "Verbouwingen (Renovations)"},
	}
	amounts := []float64{5000, 8000, 10000, 12000, 15000, 18000, 22000, 25000, 30000, 35000, 45000}

	var rows []domain.CapexEntry
	for _, year := range years {
		transactions := 40 + rng.Intn(30)
		for i := 0; i < transactions; i++ {
			month := 1 + rng.Intn(12)
			day := 1 + rng.Intn(28)
			code := stores[rng.Intn(len(stores))]
			account := accounts[rng.Intn(len(accounts))]
			amount := amounts[rng.Intn(len(amounts))] * uniform(rng, 0.7, 1.4)

			rows = append(rows, domain.CapexEntry{
				Date:        time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
				Year:        year,
				Month:       monthKey(year, month),
				StoreCode:   code,
				AccountCode: account.code,
				Label:       account.label,
				Description: fmt.Sprintf("%s - %s", account.label, g.stores.Name(code)),
				Amount:      utils.RoundWithTwoDecimalPlace(amount),
			})
		}
	}

	return rows
}

// monthlyStoreRevenue flattens revenue bookings into one total per store and
// month, in a stable order.
type storeMonthRevenue struct {
	year      int
	month     string
	storeCode string
	revenue   float64
}

func monthlyStoreRevenue(revenue []domain.RevenueEntry) []storeMonthRevenue {
	type key struct {
		month     string
		storeCode string
	}
	totals := make(map[key]*storeMonthRevenue)
	order := make([]key, 0)

	for _, r := range revenue {
		k := key{month: r.Month, storeCode: r.StoreCode}
		if _, ok := totals[k]; !ok {
			totals[k] = &storeMonthRevenue{year: r.Year, month: r.Month, storeCode: r.StoreCode}
			order = append(order, k)
		}
		totals[k].revenue += r.Revenue
	}

	sort.Slice(order, func(i, j int) bool {
		if order[i].month != order[j].month {
			return order[i].month < order[j].month
		}
		return order[i].storeCode < order[j].storeCode
	})

	rows := make([]storeMonthRevenue, 0, len(order))
	for _, k := range order {
		rows = append(rows, *totals[k])
	}
	return rows
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// monthsSince counts whole months between a store's opening ("2006-01") and
// the given year/month. Negative before opening, -1 on a malformed opening
// date so the store is skipped rather than generated from day zero.
func monthsSince(opened string, year, month int) int {
	t, err := time.Parse(domain.MonthLayout, opened)
	if err != nil {
		return -1
	}
	return (year-t.Year())*12 + month - int(t.Month())
}
