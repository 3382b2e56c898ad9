package nmbrsclient

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

const (
	employeeService = "EmployeeService"
	companyService  = "CompanyService"
)

const envelopeTemplate = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Header>
    <AuthHeaderWithDomain xmlns="%s">
      <Username>%s</Username>
      <Token>%s</Token>
      <Domain>%s</Domain>
    </AuthHeaderWithDomain>
  </soap:Header>
  <soap:Body>%s</soap:Body>
</soap:Envelope>`

type soapFault struct {
	Body struct {
		Fault *struct {
			FaultString string `xml:"faultstring"`
		} `xml:"Fault"`
	} `xml:"Body"`
}

func (c *NmbrsClient) namespace(service string) string {
	return "https://api.nmbrs.nl/soap/v3/" + service
}

// call posts one SOAP action and unmarshals the full response envelope into
// out. The caller's struct selects the body it cares about by element name.
func (c *NmbrsClient) call(service, action, body string, out interface{}) error {
	ns := c.namespace(service)
	envelope := fmt.Sprintf(envelopeTemplate,
		ns,
		xmlEscape(c.Cfg.Nmbrs.Username),
		xmlEscape(c.Cfg.Nmbrs.Token),
		xmlEscape(c.Cfg.Nmbrs.Domain),
		body,
	)

	url := fmt.Sprintf("%s/%s.asmx", c.Cfg.Nmbrs.URL, service)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(envelope))
	if err != nil {
		return errors.Wrap(err, "failed to create payroll API request")
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", ns+"/"+action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "payroll API request failed for action %s", action)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read payroll API response")
	}

	var fault soapFault
	if err := xml.Unmarshal(data, &fault); err == nil && fault.Body.Fault != nil {
		return errors.Errorf("payroll API fault for action %s: %s", action, fault.Body.Fault.FaultString)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("payroll API returned status %d for action %s", resp.StatusCode, action)
	}

	if err := xml.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "failed to decode payroll API response for action %s", action)
	}

	return nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	// EscapeText only errors on writer failure, which bytes.Buffer never does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
