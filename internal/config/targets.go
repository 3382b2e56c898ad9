package config

import "github.com/spf13/viper"

// Benchmark values compared against in the KPI reports. All overridable via
// environment so finance can tune them without a deploy.
func setTargetDefaults() {
	viper.SetDefault("GROSS_MARGIN_PCT", 0.68)
	viper.SetDefault("NET_MARGIN_PCT", 0.12)
	viper.SetDefault("LABOR_COST_PCT", 0.30)
	viper.SetDefault("RENT_COST_PCT", 0.12)
	viper.SetDefault("FOOD_COST_PCT", 0.30)
	viper.SetDefault("BEVERAGE_COST_PCT", 0.25)
	viper.SetDefault("AVG_TRANSACTION_VALUE", 6.50)
	viper.SetDefault("REVENUE_PER_SQM_MONTH", 650.0)
	viper.SetDefault("REVENUE_PER_LABOR_HOUR", 55.0)
	viper.SetDefault("CUSTOMER_RETENTION_PCT", 0.45)
	viper.SetDefault("INVENTORY_TURNOVER", 24.0)
	viper.SetDefault("BREAK_EVEN_MONTHS", 18.0)
	viper.SetDefault("CLV_CAC_RATIO", 3.0)
}
