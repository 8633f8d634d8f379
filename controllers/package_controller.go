package controllers

import (
	"net/http"
	"strconv"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PackageController serves the public catalog and the admin CRUD surface.
type PackageController struct {
	db *gorm.DB
}

func NewPackageController(db *gorm.DB) *PackageController {
	return &PackageController{db: db}
}

// List returns available packages with optional filters and pagination.
// GET /packages?destination=&category=&available=&page=1&limit=20
func (pc *PackageController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := pc.db.Model(&models.Package{})

	if destination := c.Query("destination"); destination != "" {
		query = query.Where("destination = ?", destination)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available != "" {
		query = query.Where("available = ?", available == "true")
	}

	var total int64
	query.Count(&total)

	var packages []models.Package
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&packages).Error; err != nil {
		utils.LogError(err, "ListPackages")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list packages"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.PackageListResponse{
		Packages:   packages,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}})
}

// Get returns one package by id.
// GET /packages/:id
func (pc *PackageController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Package not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pkg})
}

// Create adds a catalog package (admin).
// POST /packages
func (pc *PackageController) Create(c *gin.Context) {
	var req models.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	pkg := models.Package{
		Name:        req.Name,
		Description: req.Description,
		Destination: req.Destination,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Available:   true,
	}
	if req.Available != nil {
		pkg.Available = *req.Available
	}

	if err := pc.db.Create(&pkg).Error; err != nil {
		utils.LogError(err, "CreatePackage")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create package"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": pkg})
}

// Update edits the mutable fields of a package (admin).
// PUT /packages/:id
func (pc *PackageController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var req models.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Package not found"})
		return
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Destination = req.Destination
	pkg.Category = req.Category
	pkg.Price = req.Price
	pkg.ImageURL = req.ImageURL
	if req.Available != nil {
		pkg.Available = *req.Available
	}

	if err := pc.db.Save(&pkg).Error; err != nil {
		utils.LogError(err, "UpdatePackage")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update package"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": pkg})
}

// Delete soft-deletes a package (admin).
// DELETE /packages/:id
func (pc *PackageController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var pkg models.Package
	if err := pc.db.First(&pkg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Package not found"})
		return
	}

	if err := pc.db.Delete(&pkg).Error; err != nil {
		utils.LogError(err, "DeletePackage")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete package"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": pkg.ID}})
}
