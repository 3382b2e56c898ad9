package domain

// Cost categories as mapped from the ERP chart of accounts.
const (
	CostCOGSCoffee    = "cogs_coffee"
	CostCOGSFood      = "cogs_food"
	CostCOGSMerch     = "cogs_merch"
	CostCOGSPackaging = "cogs_packaging"
	CostLabor         = "labor"
	CostRent          = "rent"
	CostUtilities     = "utilities"
	CostMarketing     = "marketing"
	CostMaintenance   = "maintenance"
	CostSupplies      = "supplies"
	CostInsurance     = "insurance"
	CostDepreciation  = "depreciation"
)

// COGSCategories are the direct product cost categories used for gross margin.
var COGSCategories = map[string]bool{
	CostCOGSCoffee:    true,
	CostCOGSFood:      true,
	CostCOGSMerch:     true,
	CostCOGSPackaging: true,
}

// FixedCostCategories separate fixed from variable costs in the break-even
// analysis.
var FixedCostCategories = map[string]bool{
	CostRent:         true,
	CostInsurance:    true,
	CostDepreciation: true,
}

// Revenue product categories.
const (
	CategoryCoffee       = "coffee"
	CategoryFood         = "food"
	CategoryMerchandise  = "merchandise"
	CategorySubscription = "subscription"
)
