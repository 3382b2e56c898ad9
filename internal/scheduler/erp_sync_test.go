package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo"
	odoomocks "github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo/mocks"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository"
	"github.com/wakuli/retail-analytics-api/infrastructure/repository/mocks"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestERPSyncService_syncFinancials(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOdoo := odoomocks.NewMockOdooIntegrator(ctrl)
	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)

	service := &ERPSyncService{
		config:       ERPSyncConfig{LookbackMonths: 12},
		odooService:  mockOdoo,
		snapshotRepo: mockSnapshots,
	}

	financials := &odoo.Financials{
		Revenue: []domain.RevenueEntry{
			{Year: 2025, Month: "2025-06", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 38000},
		},
		Costs: []domain.CostEntry{
			{Year: 2025, Month: "2025-06", StoreCode: "LIN", Category: domain.CostLabor, Amount: 11000},
		},
	}

	mockOdoo.EXPECT().FetchFinancials(gomock.Any()).Return(financials, nil)
	mockSnapshots.EXPECT().Save(repository.SourceERP, repository.CollectionRevenue, financials.Revenue).Return(nil)
	mockSnapshots.EXPECT().Save(repository.SourceERP, repository.CollectionCosts, financials.Costs).Return(nil)
	mockSnapshots.EXPECT().Save(repository.SourceERP, repository.CollectionCapex, financials.Capex).Return(nil)

	service.syncFinancials()

	assert.Empty(t, service.lastSyncError)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestERPSyncService_syncFinancials_FetchError(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOdoo := odoomocks.NewMockOdooIntegrator(ctrl)

	service := &ERPSyncService{
		config:       ERPSyncConfig{LookbackMonths: 12},
		odooService:  mockOdoo,
		snapshotRepo: mocks.NewMockSnapshotRepository(ctrl),
	}

	mockOdoo.EXPECT().FetchFinancials(gomock.Any()).Return(nil, errors.New("authentication failed"))

	service.syncFinancials()

	assert.Equal(t, "authentication failed", service.lastSyncError)
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestERPSyncService_GetStatusDuringSync(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOdoo := odoomocks.NewMockOdooIntegrator(ctrl)
	mockSnapshots := mocks.NewMockSnapshotRepository(ctrl)

	service := &ERPSyncService{
		config:       ERPSyncConfig{LookbackMonths: 12},
		odooService:  mockOdoo,
		snapshotRepo: mockSnapshots,
	}

	mockOdoo.EXPECT().FetchFinancials(gomock.Any()).DoAndReturn(func([]int) (*odoo.Financials, error) {
		time.Sleep(20 * time.Millisecond)
		return &odoo.Financials{}, nil
	})
	mockSnapshots.EXPECT().Save(repository.SourceERP, gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.syncFinancials()
	}()

	for i := 0; i < 100; i++ {
		service.GetStatus()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Empty(t, status["last_sync_error"])
}

func TestERPSyncService_lookbackYears(t *testing.T) {
	tests := []struct {
		name     string
		months   int
		now      time.Time
		expected []int
	}{
		{
			name:     "two year window",
			months:   24,
			now:      time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC),
			expected: []int{2023, 2024, 2025},
		},
		{
			name:     "window crosses a year boundary",
			months:   1,
			now:      time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			expected: []int{2025, 2026},
		},
		{
			name:     "zero lookback defaults to a year",
			months:   0,
			now:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: []int{2024, 2025},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			service := &ERPSyncService{config: ERPSyncConfig{LookbackMonths: test.months}}
			assert.Equal(t, test.expected, service.lookbackYears(test.now))
		})
	}
}
