package routes

import (
	"github.com/FT-Key/Ravello-web-sub001/controllers"
	"github.com/FT-Key/Ravello-web-sub001/middleware"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(r *gin.Engine) {
	paymentController := controllers.NewPaymentController(utils.GetDB())

	// Status callback stays unauthenticated: the gateway does not sign
	// these calls today
	r.POST("/payments/update-status", paymentController.UpdateStatus)

	payments := r.Group("/payments", middleware.JWTAuthMiddleware())
	{
		payments.GET("/:id", paymentController.Get)
		payments.GET("", middleware.RequireRole("admin"), paymentController.List)
	}
}
