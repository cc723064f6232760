package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// ExchangeConfig drives the rate cache: which currencies are tracked,
// which one acts as the pivot for cross-rate derivation, where quotes
// come from and when they are refreshed.
type ExchangeConfig struct {
	PivotCurrency       string   `yaml:"pivot_currency"`
	SupportedCurrencies []string `yaml:"supported_currencies"`
	ProviderURL         string   `yaml:"provider_url"`
	ProviderTimeout     int      `yaml:"provider_timeout"`
	RefreshAt           string   `yaml:"refresh_at"`
}

type LedgerConfig struct {
	DefaultCategory string `yaml:"default_category"`
}

type AppConfig struct {
	Exchange ExchangeConfig `yaml:"exchange"`
	Ledger   LedgerConfig   `yaml:"ledger"`
}

var App AppConfig

// LoadApp reads the application config file (APP_CONFIG, default
// config/app.yml). A missing file is not an error: defaults apply.
func LoadApp() error {
	App = defaultAppConfig()

	path := os.Getenv("APP_CONFIG")
	if len(path) == 0 {
		path = "config/app.yml"
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(content, &App); err != nil {
		return err
	}

	if len(App.Exchange.PivotCurrency) == 0 {
		App.Exchange.PivotCurrency = defaultAppConfig().Exchange.PivotCurrency
	}
	if len(App.Exchange.SupportedCurrencies) == 0 {
		App.Exchange.SupportedCurrencies = defaultAppConfig().Exchange.SupportedCurrencies
	}
	if len(App.Exchange.ProviderURL) == 0 {
		App.Exchange.ProviderURL = defaultAppConfig().Exchange.ProviderURL
	}
	if App.Exchange.ProviderTimeout <= 0 {
		App.Exchange.ProviderTimeout = defaultAppConfig().Exchange.ProviderTimeout
	}
	if len(App.Exchange.RefreshAt) == 0 {
		App.Exchange.RefreshAt = defaultAppConfig().Exchange.RefreshAt
	}
	if len(App.Ledger.DefaultCategory) == 0 {
		App.Ledger.DefaultCategory = defaultAppConfig().Ledger.DefaultCategory
	}

	return nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Exchange: ExchangeConfig{
			PivotCurrency:       "USD",
			SupportedCurrencies: []string{"USD", "DOP", "EUR"},
			ProviderURL:         "https://open.er-api.com/v6/latest",
			ProviderTimeout:     5,
			RefreshAt:           "06:00",
		},
		Ledger: LedgerConfig{
			DefaultCategory: "other",
		},
	}
}
