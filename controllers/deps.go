// controllers/deps.go
package controllers

import (
	"github.com/andrewcsmith09/MacrosAndMore-sub000/services"
)

// Shared service instances, wired once at startup.
var (
	foodSvc    *services.FoodService
	recipeSvc  *services.RecipeService
	foodLogSvc *services.FoodLogService
	ledgerSvc  *services.LedgerService
	hub        *services.RealtimeHub
	pushSvc    *services.PushService
)

type Deps struct {
	Foods    *services.FoodService
	Recipes  *services.RecipeService
	FoodLogs *services.FoodLogService
	Ledger   *services.LedgerService
	Hub      *services.RealtimeHub
	Push     *services.PushService
}

func Init(d Deps) {
	foodSvc = d.Foods
	recipeSvc = d.Recipes
	foodLogSvc = d.FoodLogs
	ledgerSvc = d.Ledger
	hub = d.Hub
	pushSvc = d.Push
}
