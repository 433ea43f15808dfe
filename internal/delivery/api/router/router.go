// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"livesales/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlatformHandler  *handler.PlatformHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	AnalyticsHandler *handler.AnalyticsHandler
	AccountHandler   *handler.AccountHandler
	BackupHandler    *handler.BackupHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	platformHandler  *handler.PlatformHandler
	catalogHandler   *handler.CatalogHandler
	orderHandler     *handler.OrderHandler
	analyticsHandler *handler.AnalyticsHandler
	accountHandler   *handler.AccountHandler
	backupHandler    *handler.BackupHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		platformHandler:  params.PlatformHandler,
		catalogHandler:   params.CatalogHandler,
		orderHandler:     params.OrderHandler,
		analyticsHandler: params.AnalyticsHandler,
		accountHandler:   params.AccountHandler,
		backupHandler:    params.BackupHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	platformsGroup := apiV1.Group("/platforms")
	{
		platformsGroup.GET("", r.platformHandler.ListPlatforms)
		platformsGroup.POST("", r.platformHandler.CreatePlatform)
		platformsGroup.DELETE("/:id", r.platformHandler.DeletePlatform)
	}

	catalogsGroup := apiV1.Group("/catalogs")
	{
		catalogsGroup.GET("", r.catalogHandler.ListCatalogs)
		catalogsGroup.POST("", r.catalogHandler.CreateCatalog)
		catalogsGroup.GET("/:id", r.catalogHandler.GetCatalog)
		catalogsGroup.PUT("/:id", r.catalogHandler.RenameCatalog)
		catalogsGroup.DELETE("/:id", r.catalogHandler.DeleteCatalog)
		catalogsGroup.POST("/:id/slots", r.catalogHandler.AddSlot)
		catalogsGroup.PUT("/:id/products/:productId", r.catalogHandler.UpdateProduct)
		catalogsGroup.DELETE("/:id/products/:productId", r.catalogHandler.RemoveSlot)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("/lookup", r.catalogHandler.LookupProduct)
		productsGroup.GET("/stock-alerts", r.catalogHandler.StockAlerts)
		productsGroup.GET("/:id/label", r.catalogHandler.ProductLabel)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/export", r.orderHandler.ExportOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	analyticsGroup := apiV1.Group("/analytics")
	{
		analyticsGroup.GET("/dashboard", r.analyticsHandler.Dashboard)
		analyticsGroup.GET("/platforms", r.analyticsHandler.PlatformBreakdown)
		analyticsGroup.GET("/products", r.analyticsHandler.TopProducts)
		analyticsGroup.GET("/daily", r.analyticsHandler.DailySeries)
		analyticsGroup.GET("/sources", r.analyticsHandler.SourceBreakdown)
		analyticsGroup.GET("/best-day", r.analyticsHandler.BestDay)
	}

	accountGroup := apiV1.Group("/account")
	{
		accountGroup.GET("", r.accountHandler.GetAccount)
		accountGroup.POST("/upgrade", r.accountHandler.UpgradeToPro)
		accountGroup.PUT("/currency", r.accountHandler.SetCurrency)
		accountGroup.POST("/reset", r.accountHandler.ResetAllData)
	}

	backupGroup := apiV1.Group("/backup")
	{
		backupGroup.GET("", r.backupHandler.ExportBackup)
		backupGroup.POST("/restore", r.backupHandler.RestoreBackup)
		backupGroup.GET("/snapshots", r.backupHandler.ListSnapshots)
		backupGroup.POST("/snapshots", r.backupHandler.SaveSnapshot)
		backupGroup.POST("/snapshots/:name/restore", r.backupHandler.RestoreSnapshot)
		backupGroup.DELETE("/snapshots/:name", r.backupHandler.DeleteSnapshot)
	}
}
