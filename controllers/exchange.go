package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/controllers/helpers"
)

func GetRates(c *fiber.Ctx) error {
	base := c.Query("base")
	if len(base) == 0 {
		base = config.App.Exchange.PivotCurrency
	}

	return c.Status(200).JSON(Rates.GetAllRates(base))
}

func ConvertAmount(c *fiber.Ctx) error {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil || !amount.IsPositive() {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"exchange.convert.non_positive_amount"},
		})
	}

	from := c.Query("from")
	to := c.Query("to")
	if len(from) == 0 || len(to) == 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"exchange.convert.missing_currency"},
		})
	}

	converted, err := Rates.Convert(amount, from, to)
	if err != nil {
		status, code := helpers.LedgerErrorCode(err)
		return c.Status(status).JSON(helpers.Errors{Errors: []string{code}})
	}

	return c.Status(200).JSON(fiber.Map{
		"amount":    converted,
		"from":      from,
		"to":        to,
		"rate_date": Rates.UpdatedAt(),
	})
}
