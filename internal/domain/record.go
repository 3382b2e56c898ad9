package domain

import "time"

// Month is the canonical period format used across all datasets ("2006-01").
const MonthLayout = "2006-01"

// RevenueEntry is one revenue booking per store, month, product category and
// sales channel.
type RevenueEntry struct {
	Year      int     `json:"year"`
	Month     string  `json:"month"`
	StoreCode string  `json:"store_code"`
	Category  string  `json:"category"`
	Channel   string  `json:"channel,omitempty"`
	Revenue   float64 `json:"revenue"`
}

// CostEntry is one cost booking per store, month and cost category.
type CostEntry struct {
	Year      int     `json:"year"`
	Month     string  `json:"month"`
	StoreCode string  `json:"store_code"`
	Category  string  `json:"cost_category"`
	Label     string  `json:"cost_label"`
	Amount    float64 `json:"amount"`
}

// CustomerEntry aggregates customer traffic and behavior per store and month.
type CustomerEntry struct {
	Year                int     `json:"year"`
	Month               string  `json:"month"`
	StoreCode           string  `json:"store_code"`
	Revenue             float64 `json:"revenue"`
	TotalTransactions   int     `json:"total_transactions"`
	UniqueCustomers     int     `json:"unique_customers"`
	NewCustomers        int     `json:"new_customers"`
	ReturningCustomers  int     `json:"returning_customers"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
	RetentionRate       float64 `json:"retention_rate"`
}

// LaborEntry aggregates labor hours and cost per store and month.
type LaborEntry struct {
	Year            int     `json:"year"`
	Month           string  `json:"month"`
	StoreCode       string  `json:"store_code"`
	Revenue         float64 `json:"revenue"`
	FTECount        float64 `json:"fte_count"`
	TotalLaborHours float64 `json:"total_labor_hours"`
	LaborCost       float64 `json:"labor_cost"`
}

// InventoryEntry tracks stock movement per store, month and inventory item.
type InventoryEntry struct {
	Year         int     `json:"year"`
	Month        string  `json:"month"`
	StoreCode    string  `json:"store_code"`
	ItemName     string  `json:"item_name"`
	ItemCategory string  `json:"item_category"`
	UnitCost     float64 `json:"unit_cost"`
	OpeningStock int     `json:"opening_stock"`
	Purchased    int     `json:"purchased"`
	Sold         int     `json:"sold"`
	Waste        int     `json:"waste"`
	ClosingStock int     `json:"closing_stock"`
	StockValue   float64 `json:"stock_value"`
}

// InvestmentEntry is the initial buildout investment per store, used for ROI
// and break-even analysis.
type InvestmentEntry struct {
	StoreCode      string  `json:"store_code"`
	Opened         string  `json:"opened"`
	BuildoutCost   float64 `json:"buildout_cost"`
	EquipmentCost  float64 `json:"equipment_cost"`
	FurnitureCost  float64 `json:"furniture_cost"`
	WorkingCapital float64 `json:"working_capital"`
	Total          float64 `json:"total_investment"`
}

// ImpactEntry carries the chain-wide sourcing and sustainability figures per
// month.
type ImpactEntry struct {
	Year             int     `json:"year"`
	Month            string  `json:"month"`
	KgCoffeeSourced  float64 `json:"kg_coffee_sourced"`
	DirectTradePct   float64 `json:"direct_trade_pct"`
	FarmersSupported int     `json:"farmers_supported"`
	FarmerPremiumPct float64 `json:"farmer_premium_pct"`
	MarketPricePerKg float64 `json:"market_price_per_kg"`
	PaidPricePerKg   float64 `json:"paid_price_per_kg"`
	PremiumPaidEUR   float64 `json:"premium_paid_eur"`
	CompostablePct   float64 `json:"compostable_packaging_pct"`
	CO2PerCupGrams   float64 `json:"co2_per_cup_grams"`
	CupsServed       int     `json:"cups_served"`
}

// CapexEntry is a single CAPEX booking fetched from the ERP journal.
type CapexEntry struct {
	Date        time.Time `json:"date"`
	Year        int       `json:"year"`
	Month       string    `json:"month"`
	StoreCode   string    `json:"store_code"`
	AccountCode string    `json:"account_code"`
	Label       string    `json:"account_label"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
}

// Dataset bundles every record collection the KPI engine consumes. All
// collections are read-only inputs; the engine never mutates them.
type Dataset struct {
	Revenue     []RevenueEntry
	Costs       []CostEntry
	Customers   []CustomerEntry
	Labor       []LaborEntry
	Inventory   []InventoryEntry
	Investments []InvestmentEntry
	Impact      []ImpactEntry
	Capex       []CapexEntry
}
