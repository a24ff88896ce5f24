package auth

import (
	"net/http"

	"todoapp/middleware"
	"todoapp/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SignOutController(router *gin.Engine, db *gorm.DB) {
	router.POST("/api/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Signout(c, db)
	})
}

func Signout(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	if err := db.Model(&model.TokenRecord{}).
		Where("user_id = ?", userId).
		Update("revoked", true).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to revoke refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
