package controllers

import (
	"net/http"

	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
)

// UploadController pushes catalog images to object storage.
type UploadController struct {
	storage *services.Storage
}

func NewUploadController(storage *services.Storage) *UploadController {
	return &UploadController{storage: storage}
}

// Upload accepts one multipart file and returns its public URL.
// POST /uploads
func (uc *UploadController) Upload(c *gin.Context) {
	if uc.storage == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "Upload open")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := uc.storage.Upload(c.Request.Context(), file, fileHeader.Filename, contentType, fileHeader.Size)
	if err != nil {
		utils.LogError(err, "Upload put")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"url": url}})
}
