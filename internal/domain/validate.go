package domain

import (
	"time"

	"github.com/pkg/errors"
)

// ValidationError marks a malformed input record. It is raised once at the
// data-source boundary; records that pass validation are safe for every
// engine formula.
type ValidationError struct {
	Dataset string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Dataset + " record: " + e.Field + " " + e.Reason
}

func invalid(dataset, field, reason string) error {
	return errors.WithStack(&ValidationError{Dataset: dataset, Field: field, Reason: reason})
}

// IsValidationError reports whether err (or its cause) is a record validation
// failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validMonth(month string) bool {
	_, err := time.Parse(MonthLayout, month)
	return err == nil
}

// Validate checks every record collection in the dataset. The first malformed
// record fails the whole dataset; partially valid data never reaches the
// engine.
func (d *Dataset) Validate() error {
	for _, r := range d.Revenue {
		switch {
		case r.StoreCode == "":
			return invalid("revenue", "store_code", "is required")
		case !validMonth(r.Month):
			return invalid("revenue", "month", "must be formatted as YYYY-MM")
		case r.Revenue < 0:
			return invalid("revenue", "revenue", "must be non-negative")
		}
	}

	for _, c := range d.Costs {
		switch {
		case c.StoreCode == "":
			return invalid("cost", "store_code", "is required")
		case !validMonth(c.Month):
			return invalid("cost", "month", "must be formatted as YYYY-MM")
		case c.Category == "":
			return invalid("cost", "cost_category", "is required")
		case c.Amount < 0:
			return invalid("cost", "amount", "must be non-negative")
		}
	}

	for _, c := range d.Customers {
		switch {
		case c.StoreCode == "":
			return invalid("customer", "store_code", "is required")
		case !validMonth(c.Month):
			return invalid("customer", "month", "must be formatted as YYYY-MM")
		case c.UniqueCustomers < 0 || c.NewCustomers < 0 || c.TotalTransactions < 0:
			return invalid("customer", "counts", "must be non-negative")
		case c.NewCustomers > c.UniqueCustomers:
			return invalid("customer", "new_customers", "cannot exceed unique_customers")
		case c.RetentionRate < 0 || c.RetentionRate > 1:
			return invalid("customer", "retention_rate", "must be within [0, 1]")
		}
	}

	for _, l := range d.Labor {
		switch {
		case l.StoreCode == "":
			return invalid("labor", "store_code", "is required")
		case !validMonth(l.Month):
			return invalid("labor", "month", "must be formatted as YYYY-MM")
		case l.TotalLaborHours < 0 || l.LaborCost < 0 || l.FTECount < 0:
			return invalid("labor", "hours/cost/fte", "must be non-negative")
		}
	}

	for _, i := range d.Inventory {
		switch {
		case i.StoreCode == "":
			return invalid("inventory", "store_code", "is required")
		case !validMonth(i.Month):
			return invalid("inventory", "month", "must be formatted as YYYY-MM")
		case i.Sold < 0 || i.Waste < 0 || i.UnitCost < 0 || i.StockValue < 0:
			return invalid("inventory", "quantities", "must be non-negative")
		}
	}

	for _, inv := range d.Investments {
		switch {
		case inv.StoreCode == "":
			return invalid("investment", "store_code", "is required")
		case inv.Total < 0:
			return invalid("investment", "total_investment", "must be non-negative")
		}
	}

	for _, im := range d.Impact {
		switch {
		case !validMonth(im.Month):
			return invalid("impact", "month", "must be formatted as YYYY-MM")
		case im.KgCoffeeSourced < 0 || im.PremiumPaidEUR < 0 || im.CupsServed < 0:
			return invalid("impact", "quantities", "must be non-negative")
		case im.DirectTradePct < 0 || im.DirectTradePct > 1:
			return invalid("impact", "direct_trade_pct", "must be within [0, 1]")
		}
	}

	return nil
}
