package nmbrs

import (
	"math"
	"sort"
	"strings"

	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/nmbrsclient"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/log"
	"github.com/wakuli/retail-analytics-api/pkg/utils"
)

const (
	fullTimeHoursPerWeek = 40.0
	avgWeeksPerMonth     = 4.33
	// Dutch employer burden on top of gross salary: social charges, pension,
	// holiday allowance.
	employerBurdenPct = 0.30
)

// Employee is the payroll snapshot used to build labor entries: one row per
// employee with store attribution and monthly employer cost.
type Employee struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Department          string  `json:"department"`
	CostCenter          string  `json:"cost_center"`
	StoreCode           string  `json:"store_code"`
	FTEFactor           float64 `json:"fte_factor"`
	GrossMonthly        float64 `json:"gross_monthly"`
	EmployerCostMonthly float64 `json:"employer_cost_monthly"`
}

// ConnectionStatus is the diagnostics result for the payroll connection.
type ConnectionStatus struct {
	Connected     bool   `json:"connected"`
	CompanyName   string `json:"company_name"`
	EmployeeCount int    `json:"employee_count"`
	Error         string `json:"error,omitempty"`
}

type NmbrsIntegrator interface {
	FetchEmployees() ([]Employee, error)
	BuildLaborEntries(revenue []domain.RevenueEntry) ([]domain.LaborEntry, error)
	CheckConnection() ConnectionStatus
}

type NmbrsService struct {
	cfg    *config.Config
	stores domain.Registry
	Client nmbrsclient.Client

	// department or cost center name to store code, built from the registry
	mapping map[string]string
}

func New(cfg *config.Config, stores domain.Registry, client nmbrsclient.Client) NmbrsIntegrator {
	mapping := make(map[string]string, 2*len(stores))
	for code, store := range stores {
		mapping[code] = code
		mapping[store.Name] = code
	}

	return &NmbrsService{
		cfg:     cfg,
		stores:  stores,
		Client:  client,
		mapping: mapping,
	}
}

// FetchEmployees retrieves all active employees with their department, cost
// center, contract hours and current salary, and attributes each to a store.
// Department and salary lookups that fail for a single employee degrade to
// defaults instead of failing the whole fetch.
func (s *NmbrsService) FetchEmployees() ([]Employee, error) {
	listed, err := s.Client.ListEmployees(s.cfg.Nmbrs.CompanyID)
	if err != nil {
		return nil, err
	}

	unmapped := 0
	employees := make([]Employee, 0, len(listed))

	for _, emp := range listed {
		department := ""
		if dept, err := s.Client.CurrentDepartment(emp.ID); err == nil && dept != nil {
			department = dept.Description
		}

		costCenter, _ := s.Client.CurrentCostCenter(emp.ID)

		fteFactor := 1.0
		if hours, err := s.Client.CurrentHoursPerWeek(emp.ID); err == nil && hours > 0 {
			fteFactor = utils.RoundWithTwoDecimalPlace(hours / fullTimeHoursPerWeek)
		}

		gross := 0.0
		if salary, err := s.Client.CurrentGrossSalary(emp.ID); err == nil {
			gross = salary
		}

		storeCode := s.resolveStore(department, costCenter)
		if storeCode == domain.OverheadCode {
			unmapped++
		}

		employees = append(employees, Employee{
			ID:                  emp.ID,
			Name:                emp.Name,
			Department:          department,
			CostCenter:          costCenter,
			StoreCode:           storeCode,
			FTEFactor:           fteFactor,
			GrossMonthly:        utils.RoundWithTwoDecimalPlace(gross),
			EmployerCostMonthly: utils.RoundWithTwoDecimalPlace(gross * (1 + employerBurdenPct)),
		})
	}

	log.L.WithFields(log.Fields{
		"employees": len(employees),
		"unmapped":  unmapped,
	}).Info("Fetched payroll employee snapshot")

	return employees, nil
}

// resolveStore maps a department or cost center to a store code. Exact
// matches win, then a case-insensitive substring match on the department
// name. Everything else is booked on overhead.
func (s *NmbrsService) resolveStore(department, costCenter string) string {
	if department != "" {
		if code, ok := s.mapping[department]; ok {
			return code
		}
	}

	if costCenter != "" {
		if code, ok := s.mapping[costCenter]; ok {
			return code
		}
	}

	if department != "" {
		deptLower := strings.ToLower(department)

		keys := make([]string, 0, len(s.mapping))
		for key := range s.mapping {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			keyLower := strings.ToLower(key)
			if strings.Contains(deptLower, keyLower) || strings.Contains(keyLower, deptLower) {
				return s.mapping[key]
			}
		}
	}

	return domain.OverheadCode
}

type storeStaffing struct {
	headcount int
	fte       float64
	cost      float64
}

// BuildLaborEntries combines the current payroll snapshot with monthly
// revenue to produce one labor entry per store and month. Nmbrs exposes the
// current state only, so headcount and salary are applied to every month in
// the revenue range. Revenue months for stores without mapped employees are
// skipped.
func (s *NmbrsService) BuildLaborEntries(revenue []domain.RevenueEntry) ([]domain.LaborEntry, error) {
	employees, err := s.FetchEmployees()
	if err != nil {
		return nil, err
	}

	staffing := make(map[string]*storeStaffing)
	for _, emp := range employees {
		agg, ok := staffing[emp.StoreCode]
		if !ok {
			agg = &storeStaffing{}
			staffing[emp.StoreCode] = agg
		}
		agg.headcount++
		agg.fte += emp.FTEFactor
		agg.cost += emp.EmployerCostMonthly
	}

	type periodKey struct {
		year      int
		month     string
		storeCode string
	}

	monthly := make(map[periodKey]float64)
	for _, entry := range revenue {
		key := periodKey{year: entry.Year, month: entry.Month, storeCode: entry.StoreCode}
		monthly[key] += entry.Revenue
	}

	keys := make([]periodKey, 0, len(monthly))
	for key := range monthly {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].month != keys[j].month {
			return keys[i].month < keys[j].month
		}
		return keys[i].storeCode < keys[j].storeCode
	})

	skipped := 0
	entries := make([]domain.LaborEntry, 0, len(keys))

	for _, key := range keys {
		agg, ok := staffing[key.storeCode]
		if !ok {
			skipped++
			continue
		}

		hours := agg.fte * fullTimeHoursPerWeek * avgWeeksPerMonth

		entries = append(entries, domain.LaborEntry{
			Year:            key.year,
			Month:           key.month,
			StoreCode:       key.storeCode,
			Revenue:         utils.RoundWithTwoDecimalPlace(monthly[key]),
			FTECount:        utils.RoundWithOneDecimalPlace(agg.fte),
			TotalLaborHours: math.Round(hours),
			LaborCost:       utils.RoundWithTwoDecimalPlace(agg.cost),
		})
	}

	log.L.WithFields(log.Fields{
		"entries":        len(entries),
		"stores_staffed": len(staffing),
		"skipped_months": skipped,
	}).Info("Built labor entries from payroll snapshot")

	return entries, nil
}

// CheckConnection calls the payroll API and reports how it is doing.
func (s *NmbrsService) CheckConnection() ConnectionStatus {
	status := ConnectionStatus{}

	if !s.cfg.Nmbrs.IsConfigured() {
		status.Error = "payroll credentials not configured"
		return status
	}

	companies, err := s.Client.ListCompanies()
	if err != nil {
		status.Error = err.Error()
		return status
	}

	status.Connected = true

	for _, company := range companies {
		if company.ID == s.cfg.Nmbrs.CompanyID {
			status.CompanyName = company.Name
			break
		}
	}
	if status.CompanyName == "" && len(companies) > 0 {
		status.CompanyName = companies[0].Name
	}

	if s.cfg.Nmbrs.CompanyID != 0 {
		if employees, err := s.Client.ListEmployees(s.cfg.Nmbrs.CompanyID); err == nil {
			status.EmployeeCount = len(employees)
		}
	}

	return status
}
