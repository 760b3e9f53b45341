package routes

import (
	"aura-api/controllers"
	"aura-api/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {

	r.POST("/api/login", controllers.Login)

	// Label-printer client (desktop agent) connects here
	r.GET("/ws/printer", controllers.PrinterSocket)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	register := api.Group("/cash-register")
	{
		register.POST("/open", controllers.OpenRegister)
		register.POST("/close", controllers.CloseRegister)
		register.GET("/current", controllers.GetCurrentRegister)
	}

	sales := api.Group("/sales")
	{
		sales.POST("/", controllers.CreateSale)
		sales.GET("/", controllers.GetSales)
		sales.GET("/:id", controllers.GetSaleByID)
		sales.POST("/:id/cancel", controllers.CancelSale)
		sales.POST("/:id/fiscal/issue", controllers.IssueFiscalDocument)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("/", controllers.GetInventory)
		inventory.GET("/low-stock", controllers.GetLowStock)
		inventory.GET("/export", middlewares.RoleMiddleware("admin"), controllers.ExportInventory)
		inventory.GET("/:id", controllers.GetInventoryByID)
		inventory.GET("/:id/movements", controllers.GetInventoryMovements)
		inventory.GET("/:id/restocks", controllers.GetInventoryRestocks)
		inventory.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpsertInventory)
		inventory.POST("/bulk", middlewares.RoleMiddleware("admin"), controllers.BulkCreateInventory)
		inventory.POST("/:id/restock", middlewares.RoleMiddleware("admin", "cashier"), controllers.RestockInventory)
		inventory.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteInventory)
	}

	transactions := api.Group("/transactions")
	{
		transactions.GET("/", controllers.GetTransactions)
		transactions.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateTransaction)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/summary", controllers.GetReportSummary)
		reports.GET("/dashboard", controllers.GetDashboard)
	}

	queue := api.Group("/queue")
	{
		queue.GET("/:unit", controllers.GetQueueState)
		queue.POST("/:unit/tickets", controllers.IssueTicket)
		queue.POST("/:unit/next", controllers.NextInQueue)
		queue.POST("/:unit/prev", controllers.PrevInQueue)
		queue.PUT("/:unit", middlewares.RoleMiddleware("admin"), controllers.SetQueue)
	}

	api.POST("/print-label", controllers.PrintLabel)

	users := api.Group("/users")
	users.Use(middlewares.RoleMiddleware("admin"))
	{
		users.GET("/", controllers.GetUsers)
	}
}
