package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/controllers/auth"
	"github.com/monetra/monetra/controllers/entities"
	"github.com/monetra/monetra/controllers/helpers"
	"github.com/monetra/monetra/models"
)

func GetAccounts(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	return c.Status(200).JSON(CurrentUser.Accounts())
}

func GetAccount(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.account.invalid_id"},
		})
	}

	account := CurrentUser.GetAccount(id)
	if account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"ledger.account.not_found"},
		})
	}

	return c.Status(200).JSON(account)
}

func CreateAccount(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errors := new(helpers.Errors)
	payload := new(helpers.CreateAccountParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	account := payload.BuildAccount(CurrentUser, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	if err := config.DataBase.Create(account).Error; err != nil {
		config.Logger.Errorf("account create failed: %v", err)
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(account)
}

func UpdateAccount(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.account.invalid_id"},
		})
	}

	account := CurrentUser.GetAccount(id)
	if account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"ledger.account.not_found"},
		})
	}

	payload := new(helpers.UpdateAccountParams)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	payload.ApplyTo(account)

	if err := config.DataBase.Save(account).Error; err != nil {
		config.Logger.Errorf("account update failed: %v", err)
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(account)
}

// DeleteAccount removes the account and cascades to its transaction
// rows, the only way transactions ever leave the ledger.
func DeleteAccount(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.account.invalid_id"},
		})
	}

	account := CurrentUser.GetAccount(id)
	if account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"ledger.account.not_found"},
		})
	}

	err = config.DataBase.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", account.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Account{}, account.ID).Error
	})
	if err != nil {
		config.Logger.Errorf("account delete failed: %v", err)
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.SendStatus(204)
}

// GetOverview totals the member's accounts in their preferred currency,
// assets and liabilities separately.
func GetOverview(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	currency := CurrentUser.PreferredCurrency
	if len(currency) == 0 {
		currency = config.App.Exchange.PivotCurrency
	}

	overview := &entities.OverviewEntity{
		Currency:          currency,
		AssetsByType:      make(map[string]decimal.Decimal),
		LiabilitiesByType: make(map[string]decimal.Decimal),
	}

	for _, account := range CurrentUser.Accounts() {
		amount, err := Rates.Convert(account.ActiveBalance(), account.Currency, currency)
		if err != nil {
			status, code := helpers.LedgerErrorCode(err)
			return c.Status(status).JSON(helpers.Errors{Errors: []string{code}})
		}

		kind := string(account.Type)
		if account.IsAsset() {
			overview.TotalAssets = overview.TotalAssets.Add(amount)
			overview.AssetsByType[kind] = overview.AssetsByType[kind].Add(amount)
		} else {
			overview.TotalLiabilities = overview.TotalLiabilities.Add(amount)
			overview.LiabilitiesByType[kind] = overview.LiabilitiesByType[kind].Add(amount)
		}
	}

	overview.NetWorth = overview.TotalAssets.Sub(overview.TotalLiabilities)

	return c.Status(200).JSON(overview)
}
