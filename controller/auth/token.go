package auth

import (
	"errors"
	"net/http"

	"todoapp/middleware"
	"todoapp/model"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RefreshTokenController(router *gin.Engine, db *gorm.DB) {
	router.POST("/api/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshAccessToken(c, db)
	})
}

func RefreshAccessToken(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	var record model.TokenRecord
	if err := db.First(&record, "user_id = ?", userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is not recognized"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to look up refresh token"})
		return
	}

	if record.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has been revoked"})
		return
	}

	if err := services.CompareRefreshToken(record.RefreshToken, refreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is not recognized"})
		return
	}

	user, err := services.GetUserByID(db, userId)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{"accessToken": accessToken},
	})
}
