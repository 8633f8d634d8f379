package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes wires the public catalog plus the admin surface
// (package CRUD and image uploads).
func SetupCatalogRoutes(r *gin.Engine, cfg *config.Config) {
	db := utils.GetDB()
	packageController := controllers.NewPackageController(db)

	r.GET("/packages", packageController.List)
	r.GET("/packages/:id", packageController.Get)

	admin := r.Group("/packages", middleware.JWTAuthMiddleware(), middleware.RequireRole("admin", "editor"))
	{
		admin.POST("", packageController.Create)
		admin.PUT("/:id", packageController.Update)
		admin.DELETE("/:id", packageController.Delete)
	}

	// Uploads are optional: without storage credentials the endpoint
	// reports a configuration error instead of panicking at boot.
	var storage *services.Storage
	if cfg.StorageEndpoint != "" {
		s, err := services.NewStorage(cfg)
		if err != nil {
			utils.LogError(err, "SetupCatalogRoutes storage")
		} else {
			storage = s
		}
	}
	uploadController := controllers.NewUploadController(storage)
	r.POST("/uploads", middleware.JWTAuthMiddleware(), middleware.RequireRole("admin", "editor"), uploadController.Upload)
}
