package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(r *gin.Engine) {
	cartController := controllers.NewCartController(utils.GetDB())

	cart := r.Group("/cart", middleware.JWTAuthMiddleware())
	{
		cart.GET("/:userId", cartController.Get)
		cart.POST("/:userId", cartController.AddItem)
		cart.DELETE("/:userId", cartController.Clear)
		cart.DELETE("/:userId/:productId", cartController.RemoveItem)
	}
}
