package kpi

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// RevenueMetrics carries the revenue KPIs of the filtered dataset: averages,
// per-square-meter yield, category mix and the rolling three-month growth.
type RevenueMetrics struct {
	TotalRevenue       float64 `json:"total_revenue"`
	AvgMonthlyRevenue  float64 `json:"avg_monthly_revenue"`
	MonthsOfData       int     `json:"months_of_data"`
	RevenuePerSQMMonth float64 `json:"revenue_per_sqm_month"`
	GrowthPct3M        float64 `json:"growth_pct_3m"`
	AvgTransaction     float64 `json:"avg_transaction_value"`
	TotalCustomers     int     `json:"total_customers"`
	CoffeePct          float64 `json:"revenue_coffee_pct"`
	FoodPct            float64 `json:"revenue_food_pct"`
	MerchandisePct     float64 `json:"revenue_merch_pct"`
	SubscriptionPct    float64 `json:"revenue_sub_pct"`
}

func (m RevenueMetrics) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"total_revenue":         domain.Currency(m.TotalRevenue),
		"avg_monthly_revenue":   domain.Currency(m.AvgMonthlyRevenue),
		"months_of_data":        domain.Count(float64(m.MonthsOfData)),
		"revenue_per_sqm_month": domain.Currency(m.RevenuePerSQMMonth),
		"growth_pct_3m":         domain.Percent(m.GrowthPct3M),
		"avg_transaction_value": domain.Currency(m.AvgTransaction),
		"total_customers":       domain.Count(float64(m.TotalCustomers)),
		"revenue_coffee_pct":    domain.Percent(m.CoffeePct),
		"revenue_food_pct":      domain.Percent(m.FoodPct),
		"revenue_merch_pct":     domain.Percent(m.MerchandisePct),
		"revenue_sub_pct":       domain.Percent(m.SubscriptionPct),
	}
}

// RevenueMetrics computes the revenue KPIs over the filtered dataset. The
// per-square-meter figure only counts floor surface of stores present in the
// data, excluding the overhead pseudo-store.
func (e *Engine) RevenueMetrics(ds *domain.Dataset, filters *domain.ReportFilters) RevenueMetrics {
	byMonth := make(map[string]float64)
	byCategory := make(map[string]float64)
	storesInData := make(map[string]bool)
	totalRevenue := 0.0

	for _, r := range ds.Revenue {
		if !filters.MatchesStore(r.StoreCode) || !filters.MatchesYear(r.Year) {
			continue
		}
		totalRevenue += r.Revenue
		byMonth[r.Month] += r.Revenue
		byCategory[r.Category] += r.Revenue
		storesInData[r.StoreCode] = true
	}

	months := len(byMonth)
	avgMonthly := 0.0
	if months > 0 {
		avgMonthly = totalRevenue / float64(months)
	}

	codes := make([]string, 0, len(storesInData))
	for code := range storesInData {
		codes = append(codes, code)
	}
	totalSQM := e.stores.TotalSQM(codes)

	revPerSQM := 0.0
	if totalSQM > 0 && months > 0 {
		revPerSQM = totalRevenue / float64(months) / float64(totalSQM)
	}

	avgTransaction := 0.0
	totalCustomers := 0
	customerRows := 0
	for _, c := range ds.Customers {
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		avgTransaction += c.AvgTransactionValue
		totalCustomers += c.UniqueCustomers
		customerRows++
	}
	if customerRows > 0 {
		avgTransaction /= float64(customerRows)
	}

	categoryPct := func(category string) float64 {
		if totalRevenue <= 0 {
			return 0
		}
		return utils.RoundWithOneDecimalPlace(byCategory[category] / totalRevenue * 100)
	}

	return RevenueMetrics{
		TotalRevenue:       totalRevenue,
		AvgMonthlyRevenue:  utils.RoundWithTwoDecimalPlace(avgMonthly),
		MonthsOfData:       months,
		RevenuePerSQMMonth: utils.RoundWithTwoDecimalPlace(revPerSQM),
		GrowthPct3M:        utils.RoundWithOneDecimalPlace(lastThreeVsPriorThree(byMonth)),
		AvgTransaction:     utils.RoundWithTwoDecimalPlace(avgTransaction),
		TotalCustomers:     totalCustomers,
		CoffeePct:          categoryPct(domain.CategoryCoffee),
		FoodPct:            categoryPct(domain.CategoryFood),
		MerchandisePct:     categoryPct(domain.CategoryMerchandise),
		SubscriptionPct:    categoryPct(domain.CategorySubscription),
	}
}

// Period granularities for RevenueByPeriod.
const (
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// PeriodRevenue is revenue aggregated over one period bucket.
type PeriodRevenue struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// RevenueByPeriod buckets revenue by month, quarter ("2024-Q2") or year,
// sorted chronologically. Unknown granularities fall back to monthly.
func (e *Engine) RevenueByPeriod(ds *domain.Dataset, filters *domain.ReportFilters, period string) []PeriodRevenue {
	buckets := make(map[string]float64)

	for _, r := range ds.Revenue {
		if !filters.MatchesStore(r.StoreCode) || !filters.MatchesYear(r.Year) {
			continue
		}

		key := r.Month
		switch period {
		case PeriodQuarter:
			key = quarterOf(r.Month)
		case PeriodYear:
			key = strconv.Itoa(r.Year)
		}
		buckets[key] += r.Revenue
	}

	rows := make([]PeriodRevenue, 0, len(buckets))
	for period, revenue := range buckets {
		rows = append(rows, PeriodRevenue{Period: period, Revenue: utils.RoundWithTwoDecimalPlace(revenue)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })

	return rows
}

// quarterOf converts a "2006-01" month into its "2006-Q1" quarter bucket.
func quarterOf(month string) string {
	if len(month) < 7 {
		return month
	}
	m, err := strconv.Atoi(month[5:7])
	if err != nil {
		return month
	}
	return fmt.Sprintf("%s-Q%d", month[:4], (m-1)/3+1)
}
