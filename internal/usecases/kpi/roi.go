package kpi

import (
	"sort"

	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

// StoreROI is the return-on-investment position of one store.
//
// ROI = cumulative net profit / total investment * 100, annualized over the
// months the store has been generating revenue.
type StoreROI struct {
	StoreCode       string  `json:"store_code"`
	StoreName       string  `json:"store_name"`
	City            string  `json:"city"`
	Opened          string  `json:"opened"`
	TotalInvestment float64 `json:"total_investment"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCosts      float64 `json:"total_costs"`
	NetProfit       float64 `json:"net_profit"`
	ROIPct          float64 `json:"roi_pct"`
	AnnualizedPct   float64 `json:"annualized_roi_pct"`
	MonthsOperating int     `json:"months_operating"`
}

// StoreROI computes the ROI position for every store with a registered
// investment. Stores with zero investment report a zero ROI rather than
// failing.
func (e *Engine) StoreROI(ds *domain.Dataset, filters *domain.ReportFilters) []StoreROI {
	rows := make([]StoreROI, 0, len(ds.Investments))

	for _, inv := range ds.Investments {
		if !filters.MatchesStore(inv.StoreCode) {
			continue
		}

		revByMonth := monthlyRevenue(ds.Revenue, filters, inv.StoreCode)
		totalRevenue := sumMonths(revByMonth, sortedMonths(revByMonth))

		costByMonth := monthlyCosts(ds.Costs, filters, inv.StoreCode, "")
		totalCosts := sumMonths(costByMonth, sortedMonths(costByMonth))

		netProfit := totalRevenue - totalCosts
		monthsOperating := len(revByMonth)

		roiPct := 0.0
		if inv.Total > 0 {
			roiPct = netProfit / inv.Total * 100
		}

		annualized := 0.0
		if monthsOperating > 0 {
			annualized = roiPct / float64(monthsOperating) * 12
		}

		store := e.stores[inv.StoreCode]
		rows = append(rows, StoreROI{
			StoreCode:       inv.StoreCode,
			StoreName:       e.stores.Name(inv.StoreCode),
			City:            store.City,
			Opened:          inv.Opened,
			TotalInvestment: inv.Total,
			TotalRevenue:    totalRevenue,
			TotalCosts:      totalCosts,
			NetProfit:       netProfit,
			ROIPct:          utils.RoundWithOneDecimalPlace(roiPct),
			AnnualizedPct:   utils.RoundWithOneDecimalPlace(annualized),
			MonthsOperating: monthsOperating,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ROIPct > rows[j].ROIPct })

	return rows
}
