package controllers

import (
	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a tagged domain error to its HTTP status. Internal
// causes are logged, only the message reaches the client.
func respondError(c *gin.Context, err error, context string) {
	kind := services.KindOf(err)
	if kind == services.KindInternal {
		utils.LogError(err, context)
	}
	c.JSON(services.HTTPStatus(kind), gin.H{"success": false, "error": err.Error()})
}
