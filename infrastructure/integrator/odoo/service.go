package odoo

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	odoodomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo/domain"
	"github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo/odooclient"
	"github.com/wakuli/retail-analytics-api/internal/config"
	"github.com/wakuli/retail-analytics-api/internal/domain"
	"github.com/wakuli/retail-analytics-api/pkg/log"
)

// Financials is everything the ERP journal yields for the KPI dataset:
// revenue and cost bookings mapped to reporting categories, plus raw CAPEX
// bookings.
type Financials struct {
	Revenue []domain.RevenueEntry
	Costs   []domain.CostEntry
	Capex   []domain.CapexEntry
}

type OdooIntegrator interface {
	FetchFinancials(years []int) (*Financials, error)
	CheckConnection() (bool, error)
}

type OdooService struct {
	cfg    *config.Config
	Client odooclient.Client
}

func New(cfg *config.Config, client odooclient.Client) OdooIntegrator {
	return &OdooService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchFinancials pulls posted journal items for every mapped account and
// converts them into dataset entries. Lines on unmapped accounts are skipped
// and counted, not failed on.
func (s *OdooService) FetchFinancials(years []int) (*Financials, error) {
	codes := make([]string, 0)
	for _, section := range []string{config.SectionRevenue, config.SectionCOGS, config.SectionOpex, config.SectionCapex} {
		codes = append(codes, config.AccountCodes(section)...)
	}

	lines, err := s.Client.SearchReadJournalItems(odooclient.JournalItemsParams{
		AccountCodes: codes,
		Years:        years,
		CompanyID:    s.cfg.Odoo.CompanyID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "fetching journal items")
	}

	financials := &Financials{}
	skipped := 0

	for _, line := range lines {
		entry, ok := config.EntryForAccountCode(line.AccountCode())
		if !ok {
			skipped++
			continue
		}

		year, month, parseErr := periodOf(line.Date)
		if parseErr != nil {
			skipped++
			continue
		}

		storeCode := storeForLine(line)

		switch entry.Section {
		case config.SectionRevenue:
			amount := entry.Amount(line.Debit, line.Credit)
			if amount <= 0 {
				continue
			}
			financials.Revenue = append(financials.Revenue, domain.RevenueEntry{
				Year:      year,
				Month:     month,
				StoreCode: storeCode,
				Category:  entry.Category,
				Revenue:   amount,
			})
		case config.SectionCapex:
			amount := entry.Amount(line.Debit, line.Credit)
			if amount <= 0 {
				continue
			}
			date, _ := time.Parse(time.DateOnly, line.Date)
			financials.Capex = append(financials.Capex, domain.CapexEntry{
				Date:        date,
				Year:        year,
				Month:       month,
				StoreCode:   storeCode,
				AccountCode: line.AccountCode(),
				Label:       entry.Label,
				Description: string(line.Name),
				Amount:      amount,
			})
		default:
			amount := entry.Amount(line.Debit, line.Credit)
			if amount <= 0 {
				continue
			}
			financials.Costs = append(financials.Costs, domain.CostEntry{
				Year:      year,
				Month:     month,
				StoreCode: storeCode,
				Category:  entry.Category,
				Label:     entry.Label,
				Amount:    amount,
			})
		}
	}

	log.L.WithFields(log.Fields{
		"lines":   len(lines),
		"revenue": len(financials.Revenue),
		"costs":   len(financials.Costs),
		"capex":   len(financials.Capex),
		"skipped": skipped,
	}).Info("Mapped ERP journal items")

	return financials, nil
}

// CheckConnection verifies the configured credentials against the ERP.
func (s *OdooService) CheckConnection() (bool, error) {
	if _, err := s.Client.Authenticate(); err != nil {
		return false, err
	}
	return true, nil
}

// storeForLine resolves a journal line to a store through its analytic
// distribution. Lines without a recognized analytic account land on the
// overhead pseudo-store.
func storeForLine(line odoodomain.JournalLine) string {
	for idStr := range line.AnalyticDistribution {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		if code := config.StoreForAnalyticID(id); code != domain.OverheadCode {
			return code
		}
	}
	return domain.OverheadCode
}

// periodOf splits an ERP date ("2006-01-02") into the dataset's year and
// month key.
func periodOf(date string) (int, string, error) {
	if len(date) < 7 {
		return 0, "", errors.Errorf("malformed date %q", date)
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, "", errors.Wrapf(err, "malformed date %q", date)
	}
	return year, date[:7], nil
}
