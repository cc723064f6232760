package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/controllers/auth"
	"github.com/monetra/monetra/controllers/entities"
	"github.com/monetra/monetra/controllers/helpers"
	"github.com/monetra/monetra/models"
)

func CreateTransaction(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	accountID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.account.invalid_id"},
		})
	}

	errors := new(helpers.Errors)
	payload := new(helpers.CreateTransactionParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	entry, err := Ledger.Apply(CurrentUser.ID, accountID, payload.Type, payload.Amount, payload.Description, payload.Category)
	if err != nil {
		status, code := helpers.LedgerErrorCode(err)
		return c.Status(status).JSON(helpers.Errors{Errors: []string{code}})
	}

	return c.Status(201).JSON(entities.TransactionToEntity(entry))
}

func CreateTransfer(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errors := new(helpers.Errors)
	payload := new(helpers.TransferParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(payload, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	result, err := Ledger.Transfer(CurrentUser.ID, payload.FromAccountID, payload.ToAccountID, payload.Amount, payload.Description)
	if err != nil {
		status, code := helpers.LedgerErrorCode(err)
		return c.Status(status).JSON(helpers.Errors{Errors: []string{code}})
	}

	return c.Status(201).JSON(entities.TransferToEntity(result))
}

func GetAccountTransactions(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	accountID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"ledger.account.invalid_id"},
		})
	}

	account := CurrentUser.GetAccount(accountID)
	if account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"ledger.account.not_found"},
		})
	}

	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int64
	config.DataBase.Model(&models.Transaction{}).Where("account_id = ?", account.ID).Count(&total)

	var transactions []models.Transaction
	config.DataBase.Where("account_id = ?", account.ID).
		Order("created_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&transactions)

	transaction_entities := make([]*entities.TransactionEntity, 0)
	for i := range transactions {
		transaction_entities = append(transaction_entities, entities.TransactionToEntity(&transactions[i]))
	}

	return c.Status(200).JSON(fiber.Map{
		"transactions": transaction_entities,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

func RecentTransactions(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var transactions []models.Transaction
	config.DataBase.
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.member_id = ?", CurrentUser.ID).
		Order("transactions.created_at desc").
		Limit(limit).
		Find(&transactions)

	transaction_entities := make([]*entities.TransactionEntity, 0)
	for i := range transactions {
		transaction_entities = append(transaction_entities, entities.TransactionToEntity(&transactions[i]))
	}

	return c.Status(200).JSON(transaction_entities)
}
