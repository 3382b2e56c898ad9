// Package nmbrsclient talks to the Nmbrs payroll SOAP API (v3). Only the
// handful of read calls the labor dataset needs are implemented.
package nmbrsclient

import (
	"net/http"
	"time"

	nmbrsdomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/domain"
	"github.com/wakuli/retail-analytics-api/internal/config"
)

type Client interface {
	ListCompanies() ([]nmbrsdomain.Company, error)
	ListEmployees(companyID int) ([]nmbrsdomain.Employee, error)
	CurrentDepartment(employeeID int) (*nmbrsdomain.Department, error)
	CurrentCostCenter(employeeID int) (string, error)
	CurrentHoursPerWeek(employeeID int) (float64, error)
	CurrentGrossSalary(employeeID int) (float64, error)
}

type NmbrsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &NmbrsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
