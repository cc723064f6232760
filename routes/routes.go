package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/monetra/monetra/controllers"
	"github.com/monetra/monetra/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/exchange/rates", controllers.GetRates)

	api := app.Group("/api/v2", middlewares.Authenticate)

	api.Get("/accounts", controllers.GetAccounts)
	api.Post("/accounts", controllers.CreateAccount)
	api.Get("/accounts/:id", controllers.GetAccount)
	api.Put("/accounts/:id", controllers.UpdateAccount)
	api.Delete("/accounts/:id", controllers.DeleteAccount)

	api.Get("/accounts/:id/transactions", controllers.GetAccountTransactions)
	api.Post("/accounts/:id/transactions", controllers.CreateTransaction)

	api.Post("/transfers", controllers.CreateTransfer)
	api.Get("/transactions/recent", controllers.RecentTransactions)

	api.Get("/exchange/convert", controllers.ConvertAmount)
	api.Get("/overview", controllers.GetOverview)

	return app
}
