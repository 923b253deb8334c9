package main

import (
	"log"
	"os"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/config"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/controllers"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/routes"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/services"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"
)

func main() {
	config.InitDB()
	config.InitRedis()
	utils.InitMailer()

	hub := services.NewRealtimeHub()
	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}

	var flags services.FlagStore
	if os.Getenv("REDIS_ADDR") != "" {
		flags = services.NewRedisFlagStore(config.Redis)
	} else {
		flags = services.NewMemoryFlagStore()
	}

	bus := services.NewAlertBus(config.DB, hub, pushSvc)
	ledgerSvc := services.NewLedgerService(services.NewGormLedgerStore(config.DB), flags, bus)

	controllers.Init(controllers.Deps{
		Foods:    services.NewFoodService(config.DB),
		Recipes:  services.NewRecipeService(config.DB),
		FoodLogs: services.NewFoodLogService(config.DB),
		Ledger:   ledgerSvc,
		Hub:      hub,
		Push:     pushSvc,
	})

	r := routes.SetupRouter()
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
