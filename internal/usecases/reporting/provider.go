package reporting

import (
	"fmt"
	"sync"

	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	"github.com/wakuli/retail-analytics-api/internal/demo"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/log"
)

// DatasetProvider yields the dataset the KPI engine runs on. Implementations
// must return validated datasets; the engine itself never validates.
type DatasetProvider interface {
	Dataset(years []int) (*domain.Dataset, error)
	Source() string
}

// DemoProvider serves the seeded generator's dataset. Generation is
// deterministic, so datasets are cached per year range. Recorded buildout
// investments still override the generated ones on every call.
type DemoProvider struct {
	generator    *demo.Generator
	investments  repository.InvestmentRepository
	defaultYears []int

	mu    sync.Mutex
	cache map[string]*domain.Dataset
}

func NewDemoProvider(
	generator *demo.Generator,
	investments repository.InvestmentRepository,
	defaultYears []int,
) *DemoProvider {
	return &DemoProvider{
		generator:    generator,
		investments:  investments,
		defaultYears: defaultYears,
		cache:        make(map[string]*domain.Dataset),
	}
}

func (p *DemoProvider) Source() string {
	return "demo"
}

func (p *DemoProvider) Dataset(years []int) (*domain.Dataset, error) {
	if len(years) == 0 {
		years = p.defaultYears
	}

	key := fmt.Sprint(years)

	p.mu.Lock()
	defer p.mu.Unlock()

	ds, ok := p.cache[key]
	if !ok {
		ds = p.generator.Generate(years)
		if err := ds.Validate(); err != nil {
			return nil, fmt.Errorf("generated dataset failed validation: %w", err)
		}
		p.cache[key] = ds
	}

	return overlayInvestments(ds, p.investments)
}

// SnapshotProvider overlays synced ERP and payroll snapshots on top of the
// demo baseline. Financials (revenue, costs, capex) come from the ERP sync,
// labor from the payroll sync and investments from the admin-recorded table
// when they exist; collections the external systems do not cover (customers,
// inventory, impact) keep the generated data.
type SnapshotProvider struct {
	generator    *demo.Generator
	snapshots    repository.SnapshotRepository
	investments  repository.InvestmentRepository
	defaultYears []int
}

func NewSnapshotProvider(
	generator *demo.Generator,
	snapshots repository.SnapshotRepository,
	investments repository.InvestmentRepository,
	defaultYears []int,
) *SnapshotProvider {
	return &SnapshotProvider{
		generator:    generator,
		snapshots:    snapshots,
		investments:  investments,
		defaultYears: defaultYears,
	}
}

func (p *SnapshotProvider) Source() string {
	return "erp"
}

func (p *SnapshotProvider) Dataset(years []int) (*domain.Dataset, error) {
	if len(years) == 0 {
		years = p.defaultYears
	}

	ds := p.generator.Generate(years)

	var revenue []domain.RevenueEntry
	if ok, err := p.snapshots.Load(repository.SourceERP, repository.CollectionRevenue, &revenue); err != nil {
		return nil, err
	} else if ok {
		ds.Revenue = filterByYears(revenue, years, func(e domain.RevenueEntry) int { return e.Year })
	}

	var costs []domain.CostEntry
	if ok, err := p.snapshots.Load(repository.SourceERP, repository.CollectionCosts, &costs); err != nil {
		return nil, err
	} else if ok {
		ds.Costs = filterByYears(costs, years, func(e domain.CostEntry) int { return e.Year })
	}

	var capex []domain.CapexEntry
	if ok, err := p.snapshots.Load(repository.SourceERP, repository.CollectionCapex, &capex); err != nil {
		return nil, err
	} else if ok {
		ds.Capex = filterByYears(capex, years, func(e domain.CapexEntry) int { return e.Year })
	}

	var labor []domain.LaborEntry
	if ok, err := p.snapshots.Load(repository.SourcePayroll, repository.CollectionLabor, &labor); err != nil {
		return nil, err
	} else if ok {
		ds.Labor = filterByYears(labor, years, func(e domain.LaborEntry) int { return e.Year })
	}

	ds, err := overlayInvestments(ds, p.investments)
	if err != nil {
		return nil, err
	}

	if err := ds.Validate(); err != nil {
		log.L.WithError(err).Error("Synced dataset failed validation")
		return nil, fmt.Errorf("synced dataset failed validation: %w", err)
	}

	return ds, nil
}

// overlayInvestments swaps generated buildout figures for recorded ones.
// Recorded investments are the source of truth for ROI and payback; the
// generated entry only stands in until the real numbers are filled in.
// The input dataset is left untouched so cached copies stay pristine.
func overlayInvestments(ds *domain.Dataset, investments repository.InvestmentRepository) (*domain.Dataset, error) {
	recorded, err := investments.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load recorded investments: %w", err)
	}
	if len(recorded) == 0 {
		return ds, nil
	}

	byStore := make(map[string]domain.InvestmentEntry, len(recorded))
	for _, entry := range recorded {
		byStore[entry.StoreCode] = entry
	}

	merged := *ds
	merged.Investments = make([]domain.InvestmentEntry, 0, len(ds.Investments))
	for _, entry := range ds.Investments {
		if rec, ok := byStore[entry.StoreCode]; ok {
			entry = rec
			delete(byStore, entry.StoreCode)
		}
		merged.Investments = append(merged.Investments, entry)
	}
	for _, entry := range recorded {
		if _, ok := byStore[entry.StoreCode]; ok {
			merged.Investments = append(merged.Investments, entry)
		}
	}

	return &merged, nil
}

func filterByYears[T any](entries []T, years []int, yearOf func(T) int) []T {
	wanted := make(map[int]bool, len(years))
	for _, year := range years {
		wanted[year] = true
	}

	filtered := make([]T, 0, len(entries))
	for _, entry := range entries {
		if wanted[yearOf(entry)] {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}
