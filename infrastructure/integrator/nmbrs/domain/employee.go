package domain

// Company is one administration the API credentials have access to.
type Company struct {
	ID     int
	Number int
	Name   string
}

// Employee is one entry from the company employee list. Department, cost
// center, schedule and salary are separate calls in the payroll API.
type Employee struct {
	ID   int
	Name string
}

// Department as returned by Department_GetCurrent.
type Department struct {
	Code        int
	Description string
}
