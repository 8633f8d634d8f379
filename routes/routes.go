package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin.Engine with every route registered. The
// database handle comes from utils.GetDB so tests can swap in sqlite
// before calling this.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://ravello.com.ar", "https://www.ravello.com.ar"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	db := utils.GetDB()

	userController := controllers.NewUserController(db)
	r.POST("/auth/register", userController.Register)
	r.POST("/auth/login", userController.Login)
	r.POST("/auth/logout", middleware.JWTAuthMiddleware(), userController.Logout)

	SetupCatalogRoutes(r, cfg)
	SetupCartRoutes(r)
	SetupFavoriteRoutes(r)
	SetupQuoteRoutes(r, cfg)
	SetupOrderRoutes(r, cfg)
	SetupPaymentRoutes(r)

	return r
}
