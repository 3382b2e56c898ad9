package reporting

import (
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/internal/usecases/kpi"
)

// Reporter serves every KPI report the dashboard renders. Scalar KPI families
// come back as KPIResult maps with unit hints; per-store and per-period
// reports come back as typed tables.
type Reporter interface {
	// Summary aggregates the headline numbers for the hero section.
	Summary(filters *domain.ReportFilters) (domain.KPIResult, error)

	// StoreROI ranks stores by return on their buildout investment.
	StoreROI(filters *domain.ReportFilters) ([]kpi.StoreROI, error)

	// BreakEven reports break-even revenue and payback per store.
	BreakEven(filters *domain.ReportFilters) ([]kpi.BreakEven, error)

	Profitability(filters *domain.ReportFilters) (domain.KPIResult, error)
	ProfitabilityByStore(filters *domain.ReportFilters) ([]kpi.StoreProfitability, error)

	Revenue(filters *domain.ReportFilters) (domain.KPIResult, error)
	RevenueByPeriod(period string, filters *domain.ReportFilters) ([]kpi.PeriodRevenue, error)

	// Costs reports the cost structure against the configured targets.
	Costs(filters *domain.ReportFilters) ([]kpi.CostCategory, error)

	Customers(filters *domain.ReportFilters) (domain.KPIResult, error)
	Labor(filters *domain.ReportFilters) (domain.KPIResult, error)
	Inventory(filters *domain.ReportFilters) (domain.KPIResult, error)

	CashFlow(filters *domain.ReportFilters) ([]kpi.CashFlowRow, error)
	Impact(filters *domain.ReportFilters) (domain.KPIResult, error)

	// DataSource names the active dataset source ("demo" or "erp").
	DataSource() string
}
