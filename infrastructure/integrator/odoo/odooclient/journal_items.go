package odooclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	odoodomain "github.com/wakuli/retail-analytics-api/infrastructure/integrator/odoo/domain"
)

// rpcRequest is a JSON-RPC 2.0 call envelope for /jsonrpc.
type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Message string `json:"message"`
	} `json:"data"`
}

func (e *rpcError) Error() string {
	if e.Data.Message != "" {
		return e.Data.Message
	}
	return e.Message
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

// JournalItemsParams select posted journal items by account code pattern,
// company and date range.
type JournalItemsParams struct {
	AccountCodes []string
	Years        []int
	CompanyID    int
	Limit        int
}

func (c *OdooClient) call(ctx context.Context, service, method string, args []any, result any) error {
	endpoint, err := url.Parse(c.config.Odoo.URL)
	if err != nil {
		return errors.Wrap(err, "parsing ERP base URL")
	}
	endpoint.Path = path.Join(endpoint.Path, "/jsonrpc")

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      time.Now().UnixNano(),
	})
	if err != nil {
		return errors.Wrap(err, "encoding RPC request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building RPC request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "executing RPC request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("RPC request failed with status %s", resp.Status)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "decoding RPC response")
	}
	if envelope.Error != nil {
		return errors.Wrap(envelope.Error, "RPC call rejected")
	}

	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return errors.Wrap(err, "decoding RPC result")
	}

	return nil
}

// Authenticate resolves the configured credentials to an ERP user ID. The ID
// is cached for subsequent calls.
func (c *OdooClient) Authenticate() (int, error) {
	if c.uid != 0 {
		return c.uid, nil
	}

	odoo := c.config.Odoo
	if !odoo.IsConfigured() {
		return 0, errors.New("ERP credentials are not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var uid int
	args := []any{odoo.DB, odoo.Username, odoo.Password, map[string]any{}}
	if err := c.call(ctx, "common", "authenticate", args, &uid); err != nil {
		return 0, err
	}
	if uid == 0 {
		return 0, errors.New("ERP rejected the configured credentials")
	}

	c.uid = uid
	return uid, nil
}

// SearchReadJournalItems fetches posted account.move.line rows matching the
// account code patterns and years.
func (c *OdooClient) SearchReadJournalItems(params JournalItemsParams) ([]odoodomain.JournalLine, error) {
	uid, err := c.Authenticate()
	if err != nil {
		return nil, err
	}

	odoo := c.config.Odoo

	domain := []any{
		[]any{"company_id", "=", params.CompanyID},
		[]any{"parent_state", "=", "posted"},
	}
	domain = append(domain, yearDomain(params.Years)...)
	domain = append(domain, accountDomain(params.AccountCodes)...)

	limit := params.Limit
	if limit <= 0 {
		limit = odoo.MaxRecords
	}

	fields := []string{
		"date", "debit", "credit", "balance", "name",
		"account_id", "analytic_distribution", "move_id", "move_name",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	var lines []odoodomain.JournalLine
	args := []any{
		odoo.DB, uid, odoo.Password,
		"account.move.line", "search_read",
		[]any{domain},
		map[string]any{"fields": fields, "limit": limit},
	}
	if err := c.call(ctx, "object", "execute_kw", args, &lines); err != nil {
		return nil, err
	}

	return lines, nil
}

// accountDomain builds the OR-chain of account code prefix conditions, in the
// ERP's polish-notation domain syntax.
func accountDomain(codes []string) []any {
	if len(codes) == 0 {
		return nil
	}

	domain := make([]any, 0, 2*len(codes))
	for i := 1; i < len(codes); i++ {
		domain = append(domain, "|")
	}
	for _, code := range codes {
		domain = append(domain, []any{"account_id.code", "=like", code + "%"})
	}
	return domain
}

// yearDomain builds the OR-chain of per-year date ranges.
func yearDomain(years []int) []any {
	if len(years) == 0 {
		return nil
	}

	if len(years) == 1 {
		return []any{
			[]any{"date", ">=", fmt.Sprintf("%d-01-01", years[0])},
			[]any{"date", "<=", fmt.Sprintf("%d-12-31", years[0])},
		}
	}

	domain := make([]any, 0, 3*len(years))
	for i := 1; i < len(years); i++ {
		domain = append(domain, "|")
	}
	for _, y := range years {
		domain = append(domain,
			"&",
			[]any{"date", ">=", fmt.Sprintf("%d-01-01", y)},
			[]any{"date", "<=", fmt.Sprintf("%d-12-31", y)},
		)
	}
	return domain
}
