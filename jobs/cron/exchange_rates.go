package cron

import (
	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/exchange"
)

// ExchangeRatesJob refreshes the exchange-rate table. Failures are
// logged and swallowed: the cache keeps serving its last snapshot and
// the next scheduled run tries again.
type ExchangeRatesJob struct {
	Rates *exchange.Service
}

func (j *ExchangeRatesJob) Process() {
	if err := j.Rates.Refresh(); err != nil {
		config.Logger.Errorf("exchange rates refresh failed: %v", err)
		return
	}

	config.Logger.Infof("exchange rates refreshed, next run at %s", config.App.Exchange.RefreshAt)
}
