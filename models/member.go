package models

import (
	"database/sql"
	"time"

	"github.com/monetra/monetra/config"
)

type Member struct {
	ID                int64          `json:"id" gorm:"primaryKey"`
	UID               string         `json:"uid" gorm:"uniqueIndex"`
	Email             string         `json:"email"`
	Role              string         `json:"role"`
	State             string         `json:"state"`
	Username          sql.NullString `json:"username"`
	PreferredCurrency string         `json:"preferred_currency" gorm:"default:USD"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (m *Member) Accounts() []Account {
	var accounts []Account

	config.DataBase.Where(&Account{MemberID: m.ID}).Order("id asc").Find(&accounts)

	return accounts
}

func (m *Member) GetAccount(id int64) *Account {
	var account Account

	result := config.DataBase.Where("id = ? AND member_id = ?", id, m.ID).First(&account)
	if result.Error != nil {
		return nil
	}

	return &account
}
