package kpi

import (
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// Customer lifespan estimation bounds. A retention rate of one would mean an
// infinite lifespan, so it is capped.
const (
	maxLifespanMonths           = 36.0
	fullRetentionLifespanMonths = 24.0
)

// CustomerMetrics carries the customer economics of the filtered dataset.
//
// CAC = marketing spend / new customers
// CLV = avg monthly revenue per customer * estimated lifespan in months,
// where lifespan = 1 / (1 - retention rate), capped.
type CustomerMetrics struct {
	TotalTransactions  int     `json:"total_transactions"`
	TotalCustomers     int     `json:"total_customers"`
	NewCustomers       int     `json:"new_customers"`
	ReturningCustomers int     `json:"returning_customers"`
	AvgRetentionRate   float64 `json:"avg_retention_rate"`
	AvgTransaction     float64 `json:"avg_transaction_value"`
	CAC                float64 `json:"customer_acquisition_cost"`
	CLV                float64 `json:"customer_lifetime_value"`
	CLVCACRatio        float64 `json:"clv_cac_ratio"`
	VisitsPerCustomer  float64 `json:"visits_per_customer"`
	NewCustomerPct     float64 `json:"new_customer_pct"`
}

func (m CustomerMetrics) Metrics() domain.KPIResult {
	return domain.KPIResult{
		"total_transactions":        domain.Count(float64(m.TotalTransactions)),
		"total_customers":           domain.Count(float64(m.TotalCustomers)),
		"new_customers":             domain.Count(float64(m.NewCustomers)),
		"returning_customers":       domain.Count(float64(m.ReturningCustomers)),
		"avg_retention_rate":        domain.Ratio(m.AvgRetentionRate),
		"avg_transaction_value":     domain.Currency(m.AvgTransaction),
		"customer_acquisition_cost": domain.Currency(m.CAC),
		"customer_lifetime_value":   domain.Currency(m.CLV),
		"clv_cac_ratio":             domain.Ratio(m.CLVCACRatio),
		"visits_per_customer":       domain.Ratio(m.VisitsPerCustomer),
		"new_customer_pct":          domain.Percent(m.NewCustomerPct),
	}
}

// CustomerMetrics computes customer economics over the filtered dataset.
// Without new customers the CAC reports zero, and without a CAC the CLV:CAC
// ratio does too.
func (e *Engine) CustomerMetrics(ds *domain.Dataset, filters *domain.ReportFilters) CustomerMetrics {
	var (
		totalTransactions  int
		totalCustomers     int
		newCustomers       int
		returningCustomers int
		retentionSum       float64
		avgTransactionSum  float64
		revenueSum         float64
		rowCount           int
	)
	months := make(map[string]bool)

	for _, c := range ds.Customers {
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		totalTransactions += c.TotalTransactions
		totalCustomers += c.UniqueCustomers
		newCustomers += c.NewCustomers
		returningCustomers += c.ReturningCustomers
		retentionSum += c.RetentionRate
		avgTransactionSum += c.AvgTransactionValue
		revenueSum += c.Revenue
		months[c.Month] = true
		rowCount++
	}

	if rowCount == 0 {
		return CustomerMetrics{}
	}

	avgRetention := retentionSum / float64(rowCount)
	avgTransaction := avgTransactionSum / float64(rowCount)

	marketingSpend := 0.0
	for _, c := range ds.Costs {
		if c.Category != domain.CostMarketing {
			continue
		}
		if !filters.MatchesStore(c.StoreCode) || !filters.MatchesYear(c.Year) {
			continue
		}
		marketingSpend += c.Amount
	}

	cac := 0.0
	if newCustomers > 0 {
		cac = marketingSpend / float64(newCustomers)
	}

	clv := 0.0
	if len(months) > 0 && totalCustomers > 0 {
		revPerCustomer := revenueSum / float64(totalCustomers)
		lifespan := fullRetentionLifespanMonths
		if avgRetention < 1 {
			lifespan = 1 / (1 - avgRetention)
		}
		if lifespan > maxLifespanMonths {
			lifespan = maxLifespanMonths
		}
		clv = revPerCustomer * lifespan
	}

	clvCACRatio := 0.0
	if cac > 0 {
		clvCACRatio = clv / cac
	}

	visitsPerCustomer := 0.0
	newCustomerPct := 0.0
	if totalCustomers > 0 {
		visitsPerCustomer = float64(totalTransactions) / float64(totalCustomers)
		newCustomerPct = float64(newCustomers) / float64(totalCustomers) * 100
	}

	return CustomerMetrics{
		TotalTransactions:  totalTransactions,
		TotalCustomers:     totalCustomers,
		NewCustomers:       newCustomers,
		ReturningCustomers: returningCustomers,
		AvgRetentionRate:   utils.RoundWithThreeDecimalPlace(avgRetention),
		AvgTransaction:     utils.RoundWithTwoDecimalPlace(avgTransaction),
		CAC:                utils.RoundWithTwoDecimalPlace(cac),
		CLV:                utils.RoundWithTwoDecimalPlace(clv),
		CLVCACRatio:        utils.RoundWithOneDecimalPlace(clvCACRatio),
		VisitsPerCustomer:  utils.RoundWithOneDecimalPlace(visitsPerCustomer),
		NewCustomerPct:     utils.RoundWithOneDecimalPlace(newCustomerPct),
	}
}
