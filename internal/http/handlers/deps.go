package handlers

import (
	"carwo/internal/config"
	"carwo/internal/repos"
	"carwo/internal/services"
	"carwo/internal/storage"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PageHandler    *PageHandler
	ProductHandler *ProductHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	orderSvc := services.NewOrderService(cfg.WhatsAppPhone)
	adminSvc := services.NewAdminService(catRepo, prodRepo)
	media := storage.NewDiskStore(cfg.MediaDir)

	return &Deps{
		PageHandler:    &PageHandler{Catalog: catalogSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc, Order: orderSvc},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Admin: adminSvc, Media: media, Auth: auth},
	}
}
