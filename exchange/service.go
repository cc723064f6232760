package exchange

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/models"
)

// Freshness is how old the durable snapshot may be before Init forces a
// refresh.
const Freshness = 24 * time.Hour

var ErrRateUnavailable = errors.New("exchange rate not found")

// Service is the in-memory mirror of the exchange_rates table. Reads
// never block on a refresh: a refresh builds a complete new table and
// swaps it in under the write lock, so readers see either the old table
// or the new one, never a mix.
type Service struct {
	db        *gorm.DB
	provider  *Provider
	pivot     string
	supported []string

	mu        sync.RWMutex
	table     map[Pair]decimal.Decimal
	updatedAt time.Time
}

type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

func NewService(db *gorm.DB) *Service {
	cfg := config.App.Exchange

	return &Service{
		db:        db,
		provider:  NewProvider(cfg.ProviderURL, time.Duration(cfg.ProviderTimeout)*time.Second),
		pivot:     cfg.PivotCurrency,
		supported: cfg.SupportedCurrencies,
		table:     make(map[Pair]decimal.Decimal),
	}
}

// Init loads the durable rate table and refreshes it when empty or
// stale. A failed refresh over a usable snapshot only logs a warning:
// stale rates beat no rates. With no snapshot at all the service cannot
// run and the error is fatal to the caller.
func (s *Service) Init() error {
	if err := s.reload(); err != nil {
		return err
	}

	if s.Size() > 0 && time.Since(s.UpdatedAt()) <= Freshness {
		config.Logger.Infof("exchange: using cached rates from %v", s.UpdatedAt())
		return nil
	}

	if err := s.Refresh(); err != nil {
		if s.Size() > 0 {
			config.Logger.Warnf("exchange: refresh failed, keeping rates from %v: %v", s.UpdatedAt(), err)
			return nil
		}
		return fmt.Errorf("exchange: no rates available: %w", err)
	}

	return nil
}

// Refresh fetches pivot quotes, derives the full pair table, rewrites
// the durable rows in one database transaction and then publishes the
// result to readers in one swap.
func (s *Service) Refresh() error {
	quotes, err := s.provider.FetchLatest(s.pivot)
	if err != nil {
		return err
	}

	table := DeriveTable(s.pivot, s.supported, quotes)
	now := time.Now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for pair, rate := range table {
			row := models.ExchangeRate{
				BaseCurrency:   pair.Base,
				TargetCurrency: pair.Target,
				Rate:           rate,
				UpdatedAt:      now,
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "base_currency"}, {Name: "target_currency"}},
				DoUpdates: clause.AssignmentColumns([]string{"rate", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("upsert rate %s->%s: %w", pair.Base, pair.Target, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if err := s.reload(); err != nil {
		return err
	}

	config.Logger.Infof("exchange: refreshed %d rates for pivot %s", len(table), s.pivot)
	return nil
}

// reload rebuilds the in-memory table from the durable rows.
func (s *Service) reload() error {
	var rows []models.ExchangeRate
	if err := s.db.Find(&rows).Error; err != nil {
		return fmt.Errorf("load exchange rates: %w", err)
	}

	table := make(map[Pair]decimal.Decimal, len(rows))
	var latest time.Time
	for _, row := range rows {
		table[Pair{row.BaseCurrency, row.TargetCurrency}] = row.Rate
		if row.UpdatedAt.After(latest) {
			latest = row.UpdatedAt
		}
	}

	s.mu.Lock()
	s.table = table
	s.updatedAt = latest
	s.mu.Unlock()

	return nil
}

// Rate returns the stored rate for a directed pair. Same-currency pairs
// are always 1, even with an empty table.
func (s *Service) Rate(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rate, ok := s.table[Pair{from, to}]
	return rate, ok
}

func (s *Service) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	rate, ok := s.Rate(from, to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s->%s", ErrRateUnavailable, from, to)
	}

	return amount.Mul(rate), nil
}

// GetAllRates returns every tracked rate keyed with the given base.
func (s *Service) GetAllRates(base string) RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rates := make(map[string]decimal.Decimal)
	for pair, rate := range s.table {
		if pair.Base == base {
			rates[pair.Target] = rate
		}
	}

	return RateTable{
		Base:      base,
		Rates:     rates,
		UpdatedAt: s.updatedAt,
	}
}

func (s *Service) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.table)
}

func (s *Service) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}
