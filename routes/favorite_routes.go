package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

func SetupFavoriteRoutes(r *gin.Engine) {
	favoriteController := controllers.NewFavoriteController(utils.GetDB())

	favorites := r.Group("/favorites", middleware.JWTAuthMiddleware())
	{
		favorites.POST("/:userId", favoriteController.Add)
		favorites.GET("/:userId", favoriteController.List)
		favorites.DELETE("/:userId/:itemId", favoriteController.Remove)
	}
}
