package main

import (
	"fmt"
	"os"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/exchange"
	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/workers/daemons"
)

func CreateWorker(id string, rates *exchange.Service) daemons.Worker {
	switch id {
	case "cron_job":
		return daemons.NewCronJob(rates)
	default:
		return nil
	}
}

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

	ARVG := os.Args[1:]

	for _, id := range ARVG {
		fmt.Println("Start monetra-daemon: " + id)
		worker := CreateWorker(id, rates)

		if worker == nil {
			config.Logger.Fatalf("unknown worker: %s", id)
		}

		worker.Start()
	}
}
