package nmbrsclient

import (
	"fmt"

	nmbrsdomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/domain"
)

type listEmployeesEnvelope struct {
	Body struct {
		Response struct {
			Result struct {
				Employees []struct {
					ID          int    `xml:"Id"`
					DisplayName string `xml:"DisplayName"`
				} `xml:"Employee"`
			} `xml:"List_GetByCompanyResult"`
		} `xml:"List_GetByCompanyResponse"`
	} `xml:"Body"`
}

type departmentEnvelope struct {
	Body struct {
		Response struct {
			Result struct {
				Code        int    `xml:"Code"`
				Description string `xml:"Description"`
			} `xml:"Department_GetCurrentResult"`
		} `xml:"Department_GetCurrentResponse"`
	} `xml:"Body"`
}

type costCenterEnvelope struct {
	Body struct {
		Response struct {
			Result struct {
				Items []struct {
					CostCenter struct {
						Code        string `xml:"Code"`
						Description string `xml:"Description"`
					} `xml:"CostCenter"`
				} `xml:"EmployeeCostCenter"`
			} `xml:"CostCenter_GetCurrentResult"`
		} `xml:"CostCenter_GetCurrentResponse"`
	} `xml:"Body"`
}

type scheduleEnvelope struct {
	Body struct {
		Response struct {
			Result struct {
				HoursPerWeek float64 `xml:"HoursPerWeek"`
			} `xml:"Schedule_GetCurrentResult"`
		} `xml:"Schedule_GetCurrentResponse"`
	} `xml:"Body"`
}

type salaryEnvelope struct {
	Body struct {
		Response struct {
			Result struct {
				Value float64 `xml:"Value"`
			} `xml:"Salary_GetCurrentResult"`
		} `xml:"Salary_GetCurrentResponse"`
	} `xml:"Body"`
}

// ListEmployees returns all active employees of one administration.
func (c *NmbrsClient) ListEmployees(companyID int) ([]nmbrsdomain.Employee, error) {
	ns := c.namespace(employeeService)
	body := fmt.Sprintf(
		`<List_GetByCompany xmlns="%s"><CompanyId>%d</CompanyId><active>active</active></List_GetByCompany>`,
		ns, companyID,
	)

	var envelope listEmployeesEnvelope
	if err := c.call(employeeService, "List_GetByCompany", body, &envelope); err != nil {
		return nil, err
	}

	employees := make([]nmbrsdomain.Employee, 0, len(envelope.Body.Response.Result.Employees))
	for _, employee := range envelope.Body.Response.Result.Employees {
		employees = append(employees, nmbrsdomain.Employee{
			ID:   employee.ID,
			Name: employee.DisplayName,
		})
	}

	return employees, nil
}

// CurrentDepartment returns the department an employee is booked on.
func (c *NmbrsClient) CurrentDepartment(employeeID int) (*nmbrsdomain.Department, error) {
	body := fmt.Sprintf(
		`<Department_GetCurrent xmlns="%s"><EmployeeId>%d</EmployeeId></Department_GetCurrent>`,
		c.namespace(employeeService), employeeID,
	)

	var envelope departmentEnvelope
	if err := c.call(employeeService, "Department_GetCurrent", body, &envelope); err != nil {
		return nil, err
	}

	return &nmbrsdomain.Department{
		Code:        envelope.Body.Response.Result.Code,
		Description: envelope.Body.Response.Result.Description,
	}, nil
}

// CurrentCostCenter returns the code of the employee's first cost center, or
// an empty string when none is assigned.
func (c *NmbrsClient) CurrentCostCenter(employeeID int) (string, error) {
	body := fmt.Sprintf(
		`<CostCenter_GetCurrent xmlns="%s"><EmployeeId>%d</EmployeeId></CostCenter_GetCurrent>`,
		c.namespace(employeeService), employeeID,
	)

	var envelope costCenterEnvelope
	if err := c.call(employeeService, "CostCenter_GetCurrent", body, &envelope); err != nil {
		return "", err
	}

	items := envelope.Body.Response.Result.Items
	if len(items) == 0 {
		return "", nil
	}

	if code := items[0].CostCenter.Code; code != "" {
		return code, nil
	}

	return items[0].CostCenter.Description, nil
}

// CurrentHoursPerWeek returns the contractual weekly hours of an employee.
func (c *NmbrsClient) CurrentHoursPerWeek(employeeID int) (float64, error) {
	body := fmt.Sprintf(
		`<Schedule_GetCurrent xmlns="%s"><EmployeeId>%d</EmployeeId></Schedule_GetCurrent>`,
		c.namespace(employeeService), employeeID,
	)

	var envelope scheduleEnvelope
	if err := c.call(employeeService, "Schedule_GetCurrent", body, &envelope); err != nil {
		return 0, err
	}

	return envelope.Body.Response.Result.HoursPerWeek, nil
}

// CurrentGrossSalary returns the employee's current gross monthly salary.
func (c *NmbrsClient) CurrentGrossSalary(employeeID int) (float64, error) {
	body := fmt.Sprintf(
		`<Salary_GetCurrent xmlns="%s"><EmployeeId>%d</EmployeeId></Salary_GetCurrent>`,
		c.namespace(employeeService), employeeID,
	)

	var envelope salaryEnvelope
	if err := c.call(employeeService, "Salary_GetCurrent", body, &envelope); err != nil {
		return 0, err
	}

	return envelope.Body.Response.Result.Value, nil
}
