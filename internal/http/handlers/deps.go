package handlers

import (
	"shopconnect/internal/config"
	"shopconnect/internal/repos"
	"shopconnect/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	API *APIHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	orderRepo := repos.NewOrderRepo(db)
	customerRepo := repos.NewCustomerRepo(db)
	catalogRepo := repos.NewCatalogRepo(db)
	shopRepo := repos.NewShopRepo(db)
	settingsRepo := repos.NewSettingsRepo(db)

	settingsSvc := services.NewSettingsService(settingsRepo)
	connectSvc := services.NewConnectService(cfg.ShopID, orderRepo, customerRepo, catalogRepo, shopRepo, settingsSvc)

	return &Deps{
		API: NewAPIHandler(connectSvc, settingsSvc, cfg.ShopID),
	}
}
