package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

func SetupQuoteRoutes(r *gin.Engine, cfg *config.Config) {
	quoteController := controllers.NewQuoteController(utils.GetDB(), cfg)

	r.POST("/quotes", quoteController.Create)

	admin := r.Group("/quotes", middleware.JWTAuthMiddleware(), middleware.RequireRole("admin", "editor"))
	{
		admin.GET("", quoteController.List)
		admin.PUT("/:id/status", quoteController.UpdateStatus)
	}
}
