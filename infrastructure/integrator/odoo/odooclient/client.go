package odooclient

import (
	"net/http"
	"time"

	odoodomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo/domain"
	"github.com/wakuli/retail-analytics-api/internal/config"
)

type Client interface {
	Authenticate() (int, error)
	SearchReadJournalItems(params JournalItemsParams) ([]odoodomain.JournalLine, error)
}

type OdooClient struct {
	httpClient *http.Client
	config     *config.Config

	// uid is cached after the first successful authentication.
	uid int
}

func NewClient(cfg *config.Config) Client {
	return &OdooClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		config: cfg,
	}
}
