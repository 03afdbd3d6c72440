package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

const ownerHeader = "X-User-ID"

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) do(owner, method, path string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, d.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set(ownerHeader, owner)
	}
	return d.client.Do(req)
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) ListFields(owner, context string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, fmt.Sprintf("/v1/fields/%s", context), nil)
}

func (d *APIDriver) ListAllFields(owner, context string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, fmt.Sprintf("/v1/fields/%s/all", context), nil)
}

func (d *APIDriver) CreateField(owner, context, label, kind string) (*http.Response, error) {
	return d.do(owner, http.MethodPost, fmt.Sprintf("/v1/fields/%s", context), map[string]any{
		"label": label,
		"kind":  kind,
	})
}

func (d *APIDriver) ReorderFields(owner, context string, orderedIDs []string) (*http.Response, error) {
	return d.do(owner, http.MethodPut, fmt.Sprintf("/v1/fields/%s/order", context), map[string]any{
		"ordered_ids": orderedIDs,
	})
}

func (d *APIDriver) RetireField(owner, context, id string) (*http.Response, error) {
	return d.do(owner, http.MethodDelete, fmt.Sprintf("/v1/fields/%s/%s", context, id), nil)
}

func (d *APIDriver) GetForm(owner, context string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, fmt.Sprintf("/v1/forms/%s", context), nil)
}

func (d *APIDriver) CreateRecord(owner, context string, submission map[string]any) (*http.Response, error) {
	return d.do(owner, http.MethodPost, fmt.Sprintf("/v1/records/%s", context), submission)
}

func (d *APIDriver) UpdateRecord(owner, context, id string, submission map[string]any) (*http.Response, error) {
	return d.do(owner, http.MethodPut, fmt.Sprintf("/v1/records/%s/%s", context, id), submission)
}

func (d *APIDriver) GetRecord(owner, context, id string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, fmt.Sprintf("/v1/records/%s/%s", context, id), nil)
}

func (d *APIDriver) ListRecords(owner, context string, query map[string]string) (*http.Response, error) {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	path := fmt.Sprintf("/v1/records/%s", context)
	if len(values) > 0 {
		path += "?" + values.Encode()
	}
	return d.do(owner, http.MethodGet, path, nil)
}

func (d *APIDriver) ListRenderedRecords(owner, context string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, fmt.Sprintf("/v1/records/%s/rendered", context), nil)
}

func (d *APIDriver) DeleteRecord(owner, context, id string) (*http.Response, error) {
	return d.do(owner, http.MethodDelete, fmt.Sprintf("/v1/records/%s/%s", context, id), nil)
}

func (d *APIDriver) ListCategories(owner string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, "/v1/categories", nil)
}

func (d *APIDriver) CreateCategory(owner, name string) (*http.Response, error) {
	return d.do(owner, http.MethodPost, "/v1/categories", map[string]any{"name": name})
}

func (d *APIDriver) ListBudgets(owner string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, "/v1/budgets", nil)
}

func (d *APIDriver) GetActiveBudget(owner string) (*http.Response, error) {
	return d.do(owner, http.MethodGet, "/v1/budgets/active", nil)
}

func (d *APIDriver) CreateBudget(owner, name, start, end string) (*http.Response, error) {
	return d.do(owner, http.MethodPost, "/v1/budgets", map[string]any{
		"name":       name,
		"start_date": start,
		"end_date":   end,
	})
}

func (d *APIDriver) ActivateBudget(owner, id string) (*http.Response, error) {
	return d.do(owner, http.MethodPut, fmt.Sprintf("/v1/budgets/%s/activate", id), nil)
}

func (d *APIDriver) DeleteBudget(owner, id string) (*http.Response, error) {
	return d.do(owner, http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", id), nil)
}

// DialLedgerFeed opens the record change feed for owner.
func (d *APIDriver) DialLedgerFeed(owner string) (*websocket.Conn, error) {
	wsURL := strings.Replace(d.baseURL, "http", "ws", 1) + "/ws/ledger?user_id=" + url.QueryEscape(owner)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	return conn, err
}
