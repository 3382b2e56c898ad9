package nmbrsclient

import (
	nmbrsdomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/nmbrs/domain"
)

type listCompaniesEnvelope struct {
	Body struct {
		Response struct {
			Result struct {
				Companies []struct {
					ID     int    `xml:"ID"`
					Number int    `xml:"Number"`
					Name   string `xml:"Name"`
				} `xml:"Company"`
			} `xml:"List_GetAllResult"`
		} `xml:"List_GetAllResponse"`
	} `xml:"Body"`
}

// ListCompanies returns every administration the token has access to. Also
// doubles as the connection check.
func (c *NmbrsClient) ListCompanies() ([]nmbrsdomain.Company, error) {
	body := `<List_GetAll xmlns="` + c.namespace(companyService) + `" />`

	var envelope listCompaniesEnvelope
	if err := c.call(companyService, "List_GetAll", body, &envelope); err != nil {
		return nil, err
	}

	companies := make([]nmbrsdomain.Company, 0, len(envelope.Body.Response.Result.Companies))
	for _, company := range envelope.Body.Response.Result.Companies {
		companies = append(companies, nmbrsdomain.Company{
			ID:     company.ID,
			Number: company.Number,
			Name:   company.Name,
		})
	}

	return companies, nil
}
