package exchange

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type providerResponse struct {
	Result   string                     `json:"result"`
	BaseCode string                     `json:"base_code"`
	Rates    map[string]decimal.Decimal `json:"rates"`
}

// Provider is the client for the external rate API. The API quotes every
// currency against one base per call and flags success in the body, not
// only in the status code.
type Provider struct {
	url    string
	client *http.Client
}

func NewProvider(url string, timeout time.Duration) *Provider {
	return &Provider{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *Provider) FetchLatest(base string) (map[string]decimal.Decimal, error) {
	resp, err := p.client.Get(p.url + "/" + base)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange rate provider returned status %d", resp.StatusCode)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}

	if payload.Result != "success" {
		return nil, fmt.Errorf("exchange rate provider returned result %q", payload.Result)
	}

	return payload.Rates, nil
}
