package domain

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Many2One is the ERP's relational field encoding: a [id, "display name"]
// pair, or false when the field is unset.
type Many2One struct {
	ID   int
	Name string
	Set  bool
}

func (m *Many2One) UnmarshalJSON(data []byte) error {
	var unset bool
	if err := json.Unmarshal(data, &unset); err == nil {
		m.Set = false
		return nil
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.Wrap(err, "decoding many2one field")
	}
	if len(pair) > 0 {
		if err := json.Unmarshal(pair[0], &m.ID); err != nil {
			return errors.Wrap(err, "decoding many2one id")
		}
	}
	if len(pair) > 1 {
		if err := json.Unmarshal(pair[1], &m.Name); err != nil {
			return errors.Wrap(err, "decoding many2one name")
		}
	}
	m.Set = true
	return nil
}

// AnalyticDistribution maps analytic account IDs (as strings, the wire
// format) to percentage shares. The field is false when empty.
type AnalyticDistribution map[string]float64

func (a *AnalyticDistribution) UnmarshalJSON(data []byte) error {
	var unset bool
	if err := json.Unmarshal(data, &unset); err == nil {
		*a = nil
		return nil
	}

	var dist map[string]float64
	if err := json.Unmarshal(data, &dist); err != nil {
		return errors.Wrap(err, "decoding analytic distribution")
	}
	*a = dist
	return nil
}

// OptionalString tolerates the ERP returning false for empty text fields.
type OptionalString string

func (s *OptionalString) UnmarshalJSON(data []byte) error {
	var unset bool
	if err := json.Unmarshal(data, &unset); err == nil {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return errors.Wrap(err, "decoding text field")
	}
	*s = OptionalString(str)
	return nil
}

// JournalLine is one posted account.move.line row.
type JournalLine struct {
	ID                   int                  `json:"id"`
	Date                 string               `json:"date"`
	Debit                float64              `json:"debit"`
	Credit               float64              `json:"credit"`
	Balance              float64              `json:"balance"`
	Name                 OptionalString       `json:"name"`
	Account              Many2One             `json:"account_id"`
	AnalyticDistribution AnalyticDistribution `json:"analytic_distribution"`
	Move                 Many2One             `json:"move_id"`
	MoveName             OptionalString       `json:"move_name"`
}

// AccountCode extracts the numeric account code from the account display
// name, which the ERP formats as "800000 Coffee Sales".
func (l JournalLine) AccountCode() string {
	if !l.Account.Set {
		return ""
	}
	for i := 0; i < len(l.Account.Name); i++ {
		if l.Account.Name[i] == ' ' {
			return l.Account.Name[:i]
		}
	}
	return l.Account.Name
}
