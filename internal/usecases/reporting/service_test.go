package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	repomocks "github.com/wakuli/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/demo"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/internal/usecases/kpi"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var reportingNow = time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)

func reportingTargets() domain.Targets {
	return domain.Targets{
		GrossMarginPct:      0.68,
		NetMarginPct:        0.12,
		LaborCostPct:        0.30,
		RentCostPct:         0.12,
		AvgTransactionValue: 6.50,
	}
}

// noRecordedInvestments stands in for an empty store_investments table.
func noRecordedInvestments(t *testing.T) repository.InvestmentRepository {
	t.Helper()

	ctrl := gomock.NewController(t)
	investments := repomocks.NewMockInvestmentRepository(ctrl)
	investments.EXPECT().List().Return(nil, nil).AnyTimes()

	return investments
}

func demoService(t *testing.T) Reporter {
	t.Helper()

	stores := config.Stores()
	generator := demo.NewGenerator(stores, reportingNow)
	provider := NewDemoProvider(generator, noRecordedInvestments(t), []int{2024})
	engine := kpi.NewEngine(stores, reportingTargets())

	return NewService(&config.Config{}, engine, provider)
}

func TestSummary(t *testing.T) {
	service := demoService(t)

	result, err := service.Summary(nil)
	require.NoError(t, err)
	require.NotEmpty(t, result)

	revenue, ok := result["total_revenue"]
	require.True(t, ok)
	assert.Equal(t, domain.UnitCurrency, revenue.Unit)
	assert.Greater(t, revenue.Value, 0.0)
}

func TestSummary_FilteredToOneStore(t *testing.T) {
	service := demoService(t)

	chain, err := service.Summary(nil)
	require.NoError(t, err)

	single, err := service.Summary(&domain.ReportFilters{StoreCodes: []string{"LIN"}})
	require.NoError(t, err)

	assert.Less(t, single["total_revenue"].Value, chain["total_revenue"].Value)
}

func TestRevenueByPeriod_UnknownGrouping(t *testing.T) {
	service := demoService(t)

	_, err := service.RevenueByPeriod("week", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown period grouping")
}

func TestRevenueByPeriod_DefaultsToMonth(t *testing.T) {
	service := demoService(t)

	periods, err := service.RevenueByPeriod("", nil)
	require.NoError(t, err)
	require.NotEmpty(t, periods)
	assert.Len(t, periods[0].Period, len("2006-01"))
}

func TestDataSource(t *testing.T) {
	service := demoService(t)
	assert.Equal(t, "demo", service.DataSource())
}

func TestSnapshotProvider_OverlaysERPRevenue(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snapshots := repomocks.NewMockSnapshotRepository(ctrl)

	erpRevenue := []domain.RevenueEntry{
		{Year: 2024, Month: "2024-05", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 41000},
		// outside the requested years, must be filtered out
		{Year: 2022, Month: "2022-05", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 9000},
	}

	snapshots.EXPECT().
		Load(repository.SourceERP, repository.CollectionRevenue, gomock.Any()).
		DoAndReturn(func(source, collection string, out interface{}) (bool, error) {
			*(out.(*[]domain.RevenueEntry)) = erpRevenue
			return true, nil
		})
	snapshots.EXPECT().
		Load(repository.SourceERP, repository.CollectionCosts, gomock.Any()).
		Return(false, nil)
	snapshots.EXPECT().
		Load(repository.SourceERP, repository.CollectionCapex, gomock.Any()).
		Return(false, nil)
	snapshots.EXPECT().
		Load(repository.SourcePayroll, repository.CollectionLabor, gomock.Any()).
		Return(false, nil)

	stores := config.Stores()
	provider := NewSnapshotProvider(demo.NewGenerator(stores, reportingNow), snapshots, noRecordedInvestments(t), []int{2024})

	ds, err := provider.Dataset(nil)
	require.NoError(t, err)

	require.Len(t, ds.Revenue, 1)
	assert.Equal(t, "2024-05", ds.Revenue[0].Month)
	assert.Equal(t, 41000.0, ds.Revenue[0].Revenue)

	// collections the ERP does not cover keep the generated data
	assert.NotEmpty(t, ds.Costs)
	assert.NotEmpty(t, ds.Customers)
	assert.Equal(t, "erp", provider.Source())
}

func TestDemoProvider_CachesPerYearRange(t *testing.T) {
	stores := config.Stores()
	provider := NewDemoProvider(demo.NewGenerator(stores, reportingNow), noRecordedInvestments(t), []int{2024})

	first, err := provider.Dataset([]int{2024})
	require.NoError(t, err)

	second, err := provider.Dataset([]int{2024})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestDemoProvider_RecordedInvestmentsOverrideGenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	recorded := domain.InvestmentEntry{
		StoreCode:      "LIN",
		Opened:         "2021-03",
		BuildoutCost:   120000,
		EquipmentCost:  45000,
		WorkingCapital: 20000,
		Total:          185000,
	}

	investments := repomocks.NewMockInvestmentRepository(ctrl)
	investments.EXPECT().List().Return([]domain.InvestmentEntry{recorded}, nil).AnyTimes()

	stores := config.Stores()
	provider := NewDemoProvider(demo.NewGenerator(stores, reportingNow), investments, []int{2024})

	ds, err := provider.Dataset(nil)
	require.NoError(t, err)

	byStore := make(map[string]domain.InvestmentEntry, len(ds.Investments))
	for _, entry := range ds.Investments {
		byStore[entry.StoreCode] = entry
	}

	require.Contains(t, byStore, "LIN")
	assert.Equal(t, recorded, byStore["LIN"])

	// stores without a recorded investment keep the generated figures
	require.Contains(t, byStore, "JPH")
	assert.Greater(t, byStore["JPH"].Total, 0.0)

	// the cached baseline must not be mutated by the overlay
	fresh := NewDemoProvider(demo.NewGenerator(stores, reportingNow), noRecordedInvestments(t), []int{2024})
	baseline, err := fresh.Dataset(nil)
	require.NoError(t, err)

	for _, entry := range baseline.Investments {
		if entry.StoreCode == "LIN" {
			assert.NotEqual(t, recorded.Total, entry.Total)
		}
	}
}
