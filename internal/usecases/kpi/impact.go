package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// ImpactSummary aggregates the chain-wide sourcing and sustainability
// figures: kilograms sourced, premiums paid over market price, direct trade
// and packaging shares.
type ImpactSummary struct {
	TotalKgSourced    float64 `json:"total_kg_sourced"`
	TotalPremiumPaid  float64 `json:"total_premium_paid"`
	TotalCupsServed   int     `json:"total_cups_served"`
	FarmersSupported  int     `json:"current_farmers_supported"`
	AvgFarmerPremium  float64 `json:"avg_farmer_premium_pct"`
	AvgDirectTradePct float64 `json:"avg_direct_trade_pct"`
	AvgCompostablePct float64 `json:"avg_compostable_pct"`
	CurrentCO2PerCup  float64 `json:"current_co2_per_cup"`
	PremiumPerCup     float64 `json:"premium_per_cup"`
	PremiumGrowthPct  float64 `json:"premium_growth_pct"`
	KgLatestMonth     float64 `json:"kg_per_month_latest"`
}

func (m ImpactSummary) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"total_kg_sourced":          domain.Count(m.TotalKgSourced),
		"total_premium_paid":        domain.Currency(m.TotalPremiumPaid),
		"total_cups_served":         domain.Count(float64(m.TotalCupsServed)),
		"current_farmers_supported": domain.Count(float64(m.FarmersSupported)),
		"avg_farmer_premium_pct":    domain.Percent(m.AvgFarmerPremium),
		"avg_direct_trade_pct":      domain.Percent(m.AvgDirectTradePct),
		"avg_compostable_pct":       domain.Percent(m.AvgCompostablePct),
		"current_co2_per_cup":       domain.Count(m.CurrentCO2PerCup),
		"premium_per_cup":           domain.Currency(m.PremiumPerCup),
		"premium_growth_pct":        domain.Percent(m.PremiumGrowthPct),
		"kg_per_month_latest":       domain.Count(m.KgLatestMonth),
	}
}

// ImpactSummary aggregates the sustainability records, which are chain-wide
// and only filtered by year. The "current" figures come from the latest
// month, premium growth compares the last three months to the prior three.
func (e *Engine) ImpactSummary(ds *domain.Dataset, filters *domain.ReportFilters) ImpactSummary {
	entries := make([]domain.ImpactEntry, 0, len(ds.Impact))
	for _, entry := range ds.Impact {
		if filters.MatchesYear(entry.Year) {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return ImpactSummary{}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Month < entries[j].Month })
	latest := entries[len(entries)-1]

	var (
		totalKg        float64
		totalPremium   float64
		totalCups      int
		premiumPctSum  float64
		directTradeSum float64
		compostableSum float64
	)
	premiumByMonth := make(map[string]float64)

	for _, entry := range entries {
		totalKg += entry.KgCoffeeSourced
		totalPremium += entry.PremiumPaidEUR
		totalCups += entry.CupsServed
		premiumPctSum += entry.FarmerPremiumPct
		directTradeSum += entry.DirectTradePct
		compostableSum += entry.CompostablePct
		premiumByMonth[entry.Month] += entry.PremiumPaidEUR
	}

	n := float64(len(entries))

	premiumPerCup := 0.0
	if totalCups > 0 {
		premiumPerCup = totalPremium / float64(totalCups)
	}

	return ImpactSummary{
		TotalKgSourced:    utils.RoundWithTwoDecimalPlace(totalKg),
		TotalPremiumPaid:  utils.RoundWithTwoDecimalPlace(totalPremium),
		TotalCupsServed:   totalCups,
		FarmersSupported:  latest.FarmersSupported,
		AvgFarmerPremium:  utils.RoundWithOneDecimalPlace(premiumPctSum / n * 100),
		AvgDirectTradePct: utils.RoundWithOneDecimalPlace(directTradeSum / n * 100),
		AvgCompostablePct: utils.RoundWithOneDecimalPlace(compostableSum / n * 100),
		CurrentCO2PerCup:  utils.RoundWithOneDecimalPlace(latest.CO2PerCupGrams),
		PremiumPerCup:     utils.RoundWithThreeDecimalPlace(premiumPerCup),
		PremiumGrowthPct:  utils.RoundWithOneDecimalPlace(lastThreeVsPriorThree(premiumByMonth)),
		KgLatestMonth:     utils.RoundWithTwoDecimalPlace(latest.KgCoffeeSourced),
	}
}
