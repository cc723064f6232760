package main

import (
	"fmt"
	"os"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/controllers"
	"github.com/monetra/monetra/exchange"
	"github.com/monetra/monetra/ledger"
	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/routes"
	"github.com/monetra/monetra/types"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.AutoMigrate(config.DataBase); err != nil {
		config.Logger.Fatalf("migration failed: %v", err)
	}

	rates := exchange.NewService(config.DataBase)
	if err := rates.Init(); err != nil {
		config.Logger.Fatalf("exchange init failed: %v", err)
	}

	controllers.Rates = rates
	controllers.Ledger = ledger.NewEngine(
		config.DataBase,
		rates,
		types.TransactionCategory(config.App.Ledger.DefaultCategory),
	)

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r := routes.SetupRouter()
	if err := r.Listen(":" + port); err != nil {
		config.Logger.Fatalf("server stopped: %v", err)
	}
}
