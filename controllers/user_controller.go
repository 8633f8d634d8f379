package controllers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController handles registration, login and logout.
type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// Register creates a customer account and returns a token.
// POST /auth/register
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	uc.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError(err, "Register hash")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    email,
		Password: hash,
		Role:     "customer",
	}
	if err := uc.db.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "23505") {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Email already registered"})
			return
		}
		utils.LogError(err, "Register create")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		utils.LogError(err, "Register token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "token": token, "user": user})
}

// Login verifies credentials and returns a token. An unknown email and a
// wrong password answer with the same message so accounts cannot be
// enumerated.
// POST /auth/login
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if ok, msg := utils.CanAttemptLogin(utils.GetRedis(), email); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": msg})
		return
	}
	utils.MarkLoginAttempt(utils.GetRedis(), email)

	var user models.User
	err := uc.db.Where("email = ?", email).First(&user).Error
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, services.Unauthorized("invalid credentials"), "Login")
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		utils.LogError(err, "Login token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": user})
}

// Logout blacklists the presented token until it would have expired.
// POST /auth/logout
func (uc *UserController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")

	rdb := utils.GetRedis()
	if rdb == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
		return
	}

	ttl := 72 * time.Hour
	if claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET")); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
				ttl = until
			}
		}
	}
	rdb.Set(utils.RedisCtx(), "blacklist:"+token, "1", ttl)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
