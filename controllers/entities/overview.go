package entities

import (
	"github.com/shopspring/decimal"
)

type OverviewEntity struct {
	Currency          string                     `json:"currency"`
	TotalAssets       decimal.Decimal            `json:"total_assets"`
	TotalLiabilities  decimal.Decimal            `json:"total_liabilities"`
	NetWorth          decimal.Decimal            `json:"net_worth"`
	AssetsByType      map[string]decimal.Decimal `json:"assets_by_type"`
	LiabilitiesByType map[string]decimal.Decimal `json:"liabilities_by_type"`
}
