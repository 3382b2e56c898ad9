package reporting

import (
	"fmt"

	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/internal/usecases/kpi"
)

type Service struct {
	cfg      *config.Config
	engine   *kpi.Engine
	provider DatasetProvider
}

func NewService(cfg *config.Config, engine *kpi.Engine, provider DatasetProvider) Reporter {
	return &Service{
		cfg:      cfg,
		engine:   engine,
		provider: provider,
	}
}

func (s *Service) DataSource() string {
	return s.provider.Source()
}

func (s *Service) dataset(filters *domain.ReportFilters) (*domain.Dataset, error) {
	return s.provider.Dataset(filters.YearsOrNil())
}

func (s *Service) Summary(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.ExecutiveSummary(ds, filters).Metrics(), nil
}

func (s *Service) StoreROI(filters *domain.ReportFilters) ([]kpi.StoreROI, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.StoreROI(ds, filters), nil
}

func (s *Service) BreakEven(filters *domain.ReportFilters) ([]kpi.BreakEven, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.BreakEven(ds, filters), nil
}

func (s *Service) Profitability(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.Profitability(ds, filters).Metrics(), nil
}

func (s *Service) ProfitabilityByStore(filters *domain.ReportFilters) ([]kpi.StoreProfitability, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.ProfitabilityByStore(ds, filters), nil
}

func (s *Service) Revenue(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.RevenueMetrics(ds, filters).Metrics(), nil
}

func (s *Service) RevenueByPeriod(period string, filters *domain.ReportFilters) ([]kpi.PeriodRevenue, error) {
	switch period {
	case "":
		period = kpi.PeriodMonth
	case kpi.PeriodMonth, kpi.PeriodQuarter, kpi.PeriodYear:
	default:
		return nil, fmt.Errorf("unknown period grouping %q", period)
	}

	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.RevenueByPeriod(ds, filters, period), nil
}

func (s *Service) Costs(filters *domain.ReportFilters) ([]kpi.CostCategory, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.CostStructure(ds, filters), nil
}

func (s *Service) Customers(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.CustomerMetrics(ds, filters).Metrics(), nil
}

func (s *Service) Labor(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.LaborEfficiency(ds, filters).Metrics(), nil
}

func (s *Service) Inventory(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.InventoryMetrics(ds, filters).Metrics(), nil
}

func (s *Service) CashFlow(filters *domain.ReportFilters) ([]kpi.CashFlowRow, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.CashFlow(ds, filters), nil
}

func (s *Service) Impact(filters *domain.ReportFilters) (domain.KPIResult, error) {
	ds, err := s.dataset(filters)
	if err != nil {
		return nil, err
	}

	return s.engine.ImpactSummary(ds, filters).Metrics(), nil
}
