package config

import (
	"strings"

	"github.com/wakuli/retail-analytics-api/internal/domain"
)

// Account map sections.
const (
	SectionRevenue = "revenue"
	SectionCOGS    = "cogs"
	SectionOpex    = "opex"
	SectionCapex   = "capex"
)

// Sign conventions for reading journal item balances.
const (
	SignCredit = "credit" // revenue accounts, balance = credit - debit
	SignDebit  = "debit"  // expense accounts, balance = debit - credit
	SignAbs    = "abs"    // asset accounts, absolute balance
)

// AccountEntry maps a set of ERP account code patterns to a reporting
// category. Patterns ending in "%" match by prefix, the ERP "=like" style.
type AccountEntry struct {
	Section  string
	Category string
	Codes    []string
	Label    string
	Sign     string
	Fixed    bool
}

// AccountMap is the single source of truth tying the ERP chart of accounts to
// reporting categories. Edit this to match the actual chart of accounts.
var AccountMap = []AccountEntry{
	{Section: SectionRevenue, Category: domain.CategoryCoffee, Codes: []string{"800000"}, Label: "Coffee Sales", Sign: SignCredit},
	{Section: SectionRevenue, Category: domain.CategoryFood, Codes: []string{"800100"}, Label: "Food Sales", Sign: SignCredit},
	{Section: SectionRevenue, Category: domain.CategoryMerchandise, Codes: []string{"800200"}, Label: "Merchandise Sales", Sign: SignCredit},
	{Section: SectionRevenue, Category: domain.CategorySubscription, Codes: []string{"800300"}, Label: "Subscription Revenue", Sign: SignCredit},
	{Section: SectionRevenue, Category: domain.CategoryCoffee, Codes: []string{"800400"}, Label: "Delivery Revenue", Sign: SignCredit},

	{Section: SectionCOGS, Category: domain.CostCOGSCoffee, Codes: []string{"400000"}, Label: "COGS - Coffee Beans", Sign: SignDebit},
	{Section: SectionCOGS, Category: domain.CostCOGSFood, Codes: []string{"400100"}, Label: "COGS - Food & Bakery", Sign: SignDebit},
	{Section: SectionCOGS, Category: domain.CostCOGSMerch, Codes: []string{"400200"}, Label: "COGS - Merchandise", Sign: SignDebit},
	{Section: SectionCOGS, Category: domain.CostCOGSPackaging, Codes: []string{"400300"}, Label: "COGS - Packaging", Sign: SignDebit},

	{Section: SectionOpex, Category: domain.CostLabor, Codes: []string{"410000"}, Label: "Labor Costs", Sign: SignDebit},
	{Section: SectionOpex, Category: domain.CostRent, Codes: []string{"420000"}, Label: "Rent & Occupancy", Sign: SignDebit, Fixed: true},
	{Section: SectionOpex, Category: domain.CostUtilities, Codes: []string{"430000"}, Label: "Utilities", Sign: SignDebit, Fixed: true},
	{Section: SectionOpex, Category: domain.CostMarketing, Codes: []string{"440000"}, Label: "Marketing & Advertising", Sign: SignDebit},
	{Section: SectionOpex, Category: domain.CostMaintenance, Codes: []string{"450000"}, Label: "Equipment Maintenance", Sign: SignDebit},
	{Section: SectionOpex, Category: domain.CostSupplies, Codes: []string{"460000"}, Label: "Supplies & Consumables", Sign: SignDebit},
	{Section: SectionOpex, Category: domain.CostInsurance, Codes: []string{"470000"}, Label: "Insurance & Licenses", Sign: SignDebit, Fixed: true},
	{Section: SectionOpex, Category: domain.CostDepreciation, Codes: []string{"480000"}, Label: "Depreciation & Amortization", Sign: SignDebit, Fixed: true},

	{Section: SectionCapex, Category: "capex_stores", Codes: []string{"037000"}, Label: "CAPEX Winkels (Store Renovations)", Sign: SignAbs},
	{Section: SectionCapex, Category: "wia", Codes: []string{"032000"}, Label: "WIA - Assets Under Construction", Sign: SignAbs},
	{Section: SectionCapex, Category: "business_inventory", Codes: []string{"031000"}, Label: "Bedrijfsinventaris (Business Inventory)", Sign: SignAbs},
	{Section: SectionCapex, Category: "coffee_machines", Codes: []string{"021000"}, Label: "Koffiemachines (Coffee Machines)", Sign: SignAbs},
	{Section: SectionCapex, Category: "renovations", Codes: []string{"013000"}, Label: "Verbouwingen (Renovations)", Sign: SignAbs},
}

// AccountCodes returns every account code pattern belonging to a section.
func AccountCodes(section string) []string {
	var codes []string
	for _, entry := range AccountMap {
		if entry.Section == section {
			codes = append(codes, entry.Codes...)
		}
	}
	return codes
}

// EntryForAccountCode resolves a raw ERP account code to its map entry. An
// exact pattern match wins; otherwise the longest matching prefix does.
// Returns false when no entry covers the code.
func EntryForAccountCode(rawCode string) (AccountEntry, bool) {
	var best AccountEntry
	bestLen := 0

	for _, entry := range AccountMap {
		for _, pattern := range entry.Codes {
			if rawCode == pattern {
				return entry, true
			}
			prefix := strings.TrimRight(pattern, "%")
			if prefix != "" && strings.HasPrefix(rawCode, prefix) && len(prefix) > bestLen {
				best = entry
				bestLen = len(prefix)
			}
		}
	}

	return best, bestLen > 0
}

// Amount reads a journal item balance under the entry's sign convention so
// revenue and expenses both come out positive.
func (e AccountEntry) Amount(debit, credit float64) float64 {
	switch e.Sign {
	case SignCredit:
		return credit - debit
	case SignDebit:
		return debit - credit
	default:
		balance := debit - credit
		if balance < 0 {
			return -balance
		}
		return balance
	}
}
