package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, cfg *config.Config) {
	db := utils.GetDB()
	orderService := services.NewOrderService(db, services.NewMercadoPago(cfg))
	orderController := controllers.NewOrderController(db, orderService)

	orders := r.Group("/orders", middleware.JWTAuthMiddleware())
	{
		orders.POST("", orderController.Create)
		orders.GET("/my", orderController.ListMine)
		orders.GET("/:orderNumber", orderController.Get)
		orders.PUT("/:orderNumber/status", middleware.RequireRole("admin"), orderController.UpdateStatus)
	}
}
