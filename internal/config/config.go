package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/wakuli/retail-analytics-api/internal/domain"
)

type Config struct {
	App         App            `mapstructure:",squash"`
	Server      Server         `mapstructure:",squash"`
	Database    Database       `mapstructure:",squash"`
	Odoo        Odoo           `mapstructure:",squash"`
	Nmbrs       Nmbrs          `mapstructure:",squash"`
	Auth        Auth           `mapstructure:",squash"`
	ERPSync     ERPSync        `mapstructure:",squash"`
	PayrollSync PayrollSync    `mapstructure:",squash"`
	Targets     domain.Targets `mapstructure:",squash"`
	SecretKey   string         `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	// DataSource selects where KPI inputs come from: "demo" or "erp".
	DataSource string `mapstructure:"data_source"`
	// DemoYears is the year range the demo generator covers.
	DemoYearFrom int `mapstructure:"demo_year_from"`
	DemoYearTo   int `mapstructure:"demo_year_to"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Odoo struct {
	URL        string `mapstructure:"odoo_url"`
	DB         string `mapstructure:"odoo_db"`
	Username   string `mapstructure:"odoo_user"`
	Password   string `mapstructure:"odoo_password"`
	CompanyID  int    `mapstructure:"odoo_company_id"`
	MaxRecords int    `mapstructure:"odoo_max_records"`
}

type Nmbrs struct {
	URL       string `mapstructure:"nmbrs_url"`
	Username  string `mapstructure:"nmbrs_username"`
	Token     string `mapstructure:"nmbrs_token"`
	Domain    string `mapstructure:"nmbrs_domain"`
	CompanyID int    `mapstructure:"nmbrs_company_id"`
	Sandbox   bool   `mapstructure:"nmbrs_sandbox"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ERPSync struct {
	CronSchedule        string `mapstructure:"erp_sync_cron"`
	LookbackMonths      int    `mapstructure:"erp_sync_lookback_months"`
	RequestDelaySeconds int    `mapstructure:"erp_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"erp_sync_enabled"`
}

type PayrollSync struct {
	CronSchedule   string `mapstructure:"payroll_sync_cron"`
	LookbackMonths int    `mapstructure:"payroll_sync_lookback_months"`
	Enabled        bool   `mapstructure:"payroll_sync_enabled"`
}

// IsConfigured reports whether the ERP connection has credentials.
func (o Odoo) IsConfigured() bool {
	return o.Username != "" && o.Password != ""
}

// IsConfigured reports whether the payroll connection has credentials.
func (n Nmbrs) IsConfigured() bool {
	return n.Username != "" && n.Token != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail_analytics")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ODOO_URL", "https://wakuli.odoo.com")
	viper.SetDefault("ODOO_DB", "wakuli-production-10206791")
	viper.SetDefault("ODOO_USER", "")
	viper.SetDefault("ODOO_PASSWORD", "")
	viper.SetDefault("ODOO_COMPANY_ID", 2) // Wakuli Retail Holding
	viper.SetDefault("ODOO_MAX_RECORDS", 10000)

	viper.SetDefault("NMBRS_URL", "https://api.nmbrs.nl/soap/v3")
	viper.SetDefault("NMBRS_USERNAME", "")
	viper.SetDefault("NMBRS_TOKEN", "")
	viper.SetDefault("NMBRS_DOMAIN", "")
	viper.SetDefault("NMBRS_COMPANY_ID", 0)
	viper.SetDefault("NMBRS_SANDBOX", false)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("ERP_SYNC_CRON", "0 3 * * *") // every day at 3am
	viper.SetDefault("ERP_SYNC_LOOKBACK_MONTHS", 3)
	viper.SetDefault("ERP_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("ERP_SYNC_ENABLED", false)

	viper.SetDefault("PAYROLL_SYNC_CRON", "0 4 * * *") // every day at 4am
	viper.SetDefault("PAYROLL_SYNC_LOOKBACK_MONTHS", 2)
	viper.SetDefault("PAYROLL_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("DATA_SOURCE", "demo")
	viper.SetDefault("DEMO_YEAR_FROM", 2023)
	viper.SetDefault("DEMO_YEAR_TO", 2025)

	setTargetDefaults()
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file via godotenv, trying a few locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in known locations, relying on environment")
}
