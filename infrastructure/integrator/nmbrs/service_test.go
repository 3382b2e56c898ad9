package nmbrs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nmbrsdomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/domain"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/nmbrsclient/mocks"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var payrollTestStores = domain.Registry{
	"LIN": {Code: "LIN", Name: "Linnaeusstraat", City: "Amsterdam", SQM: 65, Opened: "2021-03"},
	"JPH": {Code: "JPH", Name: "Jan Pieter Heijestraat", City: "Amsterdam", SQM: 55, Opened: "2021-09"},
	"OOH": {Code: "OOH", Name: "Overhead (All Stores)", City: "Amsterdam", SQM: 0, Opened: "2021-01"},
}

func payrollTestConfig() *config.Config {
	return &config.Config{
		Nmbrs: config.Nmbrs{
			Username:  "finance@wakuli.com",
			Token:     "token",
			Domain:    "wakuli",
			CompanyID: 101,
		},
	}
}

func TestFetchEmployees(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(payrollTestConfig(), payrollTestStores, mockClient)

	mockClient.EXPECT().ListEmployees(101).Return([]nmbrsdomain.Employee{
		{ID: 1, Name: "Anna Jansen"},
		{ID: 2, Name: "Tom de Vries"},
	}, nil)

	// Anna works in a store department, part time
	mockClient.EXPECT().CurrentDepartment(1).
		Return(&nmbrsdomain.Department{Code: 10, Description: "Store - Linnaeusstraat"}, nil)
	mockClient.EXPECT().CurrentCostCenter(1).Return("", nil)
	mockClient.EXPECT().CurrentHoursPerWeek(1).Return(32.0, nil)
	mockClient.EXPECT().CurrentGrossSalary(1).Return(2800.0, nil)

	// Tom is head office staff
	mockClient.EXPECT().CurrentDepartment(2).
		Return(&nmbrsdomain.Department{Code: 20, Description: "Finance"}, nil)
	mockClient.EXPECT().CurrentCostCenter(2).Return("", nil)
	mockClient.EXPECT().CurrentHoursPerWeek(2).Return(40.0, nil)
	mockClient.EXPECT().CurrentGrossSalary(2).Return(4000.0, nil)

	employees, err := service.FetchEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 2)

	anna := employees[0]
	assert.Equal(t, "LIN", anna.StoreCode)
	assert.Equal(t, 0.8, anna.FTEFactor)
	assert.Equal(t, 2800.0, anna.GrossMonthly)
	assert.Equal(t, 3640.0, anna.EmployerCostMonthly)

	tom := employees[1]
	assert.Equal(t, domain.OverheadCode, tom.StoreCode)
	assert.Equal(t, 1.0, tom.FTEFactor)
	assert.Equal(t, 5200.0, tom.EmployerCostMonthly)
}

func TestFetchEmployees_ToleratesLookupFailures(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(payrollTestConfig(), payrollTestStores, mockClient)

	mockClient.EXPECT().ListEmployees(101).Return([]nmbrsdomain.Employee{
		{ID: 7, Name: "Nieuwe Medewerker"},
	}, nil)

	lookupErr := errors.New("payroll API fault")
	mockClient.EXPECT().CurrentDepartment(7).Return(nil, lookupErr)
	mockClient.EXPECT().CurrentCostCenter(7).Return("", lookupErr)
	mockClient.EXPECT().CurrentHoursPerWeek(7).Return(0.0, lookupErr)
	mockClient.EXPECT().CurrentGrossSalary(7).Return(0.0, lookupErr)

	employees, err := service.FetchEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 1)

	emp := employees[0]
	assert.Equal(t, domain.OverheadCode, emp.StoreCode)
	assert.Equal(t, 1.0, emp.FTEFactor)
	assert.Equal(t, 0.0, emp.GrossMonthly)
	assert.Equal(t, 0.0, emp.EmployerCostMonthly)
}

func TestResolveStore(t *testing.T) {
	service := New(payrollTestConfig(), payrollTestStores, nil).(*NmbrsService)

	tests := []struct {
		name       string
		department string
		costCenter string
		expected   string
	}{
		{
			name:       "exact department match on store name",
			department: "Linnaeusstraat",
			expected:   "LIN",
		},
		{
			name:       "exact cost center match on store code",
			department: "Retail",
			costCenter: "JPH",
			expected:   "JPH",
		},
		{
			name:       "substring match on department",
			department: "Store - Jan Pieter Heijestraat",
			expected:   "JPH",
		},
		{
			name:       "unknown department falls back to overhead",
			department: "Marketing",
			expected:   domain.OverheadCode,
		},
		{
			name:     "empty department falls back to overhead",
			expected: domain.OverheadCode,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, service.resolveStore(test.department, test.costCenter))
		})
	}
}

func TestBuildLaborEntries(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(payrollTestConfig(), payrollTestStores, mockClient)

	mockClient.EXPECT().ListEmployees(101).Return([]nmbrsdomain.Employee{
		{ID: 1, Name: "Anna Jansen"},
		{ID: 2, Name: "Piet Bakker"},
	}, nil)

	mockClient.EXPECT().CurrentDepartment(1).
		Return(&nmbrsdomain.Department{Code: 10, Description: "Linnaeusstraat"}, nil)
	mockClient.EXPECT().CurrentCostCenter(1).Return("", nil)
	mockClient.EXPECT().CurrentHoursPerWeek(1).Return(32.0, nil)
	mockClient.EXPECT().CurrentGrossSalary(1).Return(2800.0, nil)

	mockClient.EXPECT().CurrentDepartment(2).
		Return(&nmbrsdomain.Department{Code: 10, Description: "Linnaeusstraat"}, nil)
	mockClient.EXPECT().CurrentCostCenter(2).Return("", nil)
	mockClient.EXPECT().CurrentHoursPerWeek(2).Return(40.0, nil)
	mockClient.EXPECT().CurrentGrossSalary(2).Return(3000.0, nil)

	revenue := []domain.RevenueEntry{
		{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 6000},
		{Year: 2024, Month: "2024-01", StoreCode: "LIN", Category: domain.CategoryFood, Revenue: 1000},
		{Year: 2024, Month: "2024-02", StoreCode: "LIN", Category: domain.CategoryCoffee, Revenue: 7500},
		// no employees mapped to JPH, so this month is dropped
		{Year: 2024, Month: "2024-01", StoreCode: "JPH", Category: domain.CategoryCoffee, Revenue: 5000},
	}

	entries, err := service.BuildLaborEntries(revenue)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	january := entries[0]
	assert.Equal(t, 2024, january.Year)
	assert.Equal(t, "2024-01", january.Month)
	assert.Equal(t, "LIN", january.StoreCode)
	assert.Equal(t, 7000.0, january.Revenue)
	assert.Equal(t, 1.8, january.FTECount)
	// 1.8 FTE * 40 hours * 4.33 weeks
	assert.Equal(t, 312.0, january.TotalLaborHours)
	assert.Equal(t, 7540.0, january.LaborCost)

	february := entries[1]
	assert.Equal(t, "2024-02", february.Month)
	assert.Equal(t, 7500.0, february.Revenue)
	assert.Equal(t, 7540.0, february.LaborCost)
}

func TestCheckConnection(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(payrollTestConfig(), payrollTestStores, mockClient)

	mockClient.EXPECT().ListCompanies().Return([]nmbrsdomain.Company{
		{ID: 99, Number: 1, Name: "Wakuli Webshop BV"},
		{ID: 101, Number: 2, Name: "Wakuli Retail BV"},
	}, nil)
	mockClient.EXPECT().ListEmployees(101).Return([]nmbrsdomain.Employee{
		{ID: 1, Name: "Anna Jansen"},
		{ID: 2, Name: "Tom de Vries"},
	}, nil)

	status := service.CheckConnection()
	assert.True(t, status.Connected)
	assert.Equal(t, "Wakuli Retail BV", status.CompanyName)
	assert.Equal(t, 2, status.EmployeeCount)
	assert.Empty(t, status.Error)
}

func TestCheckConnection_NotConfigured(t *testing.T) {
	service := New(&config.Config{}, payrollTestStores, nil)

	status := service.CheckConnection()
	assert.False(t, status.Connected)
	assert.Equal(t, "payroll credentials not configured", status.Error)
}

func TestCheckConnection_APIError(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(payrollTestConfig(), payrollTestStores, mockClient)

	mockClient.EXPECT().ListCompanies().Return(nil, errors.New("unauthorized"))

	status := service.CheckConnection()
	assert.False(t, status.Connected)
	assert.Equal(t, "unauthorized", status.Error)
}
