package notification

import (
	"errors"
	"net/http"

	"todoapp/middleware"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NotificationController(router *gin.Engine, db *gorm.DB) {
	router.GET("/api/notifications", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Getnotifications(c, db)
	})
	router.PUT("/api/notifications/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Marknotificationread(c, db)
	})
	router.DELETE("/api/notifications", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Clearnotifications(c, db)
	})
}

func Getnotifications(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	notifications, err := services.GetNotificationsByUser(db, userId)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func Marknotificationread(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	notificationId := c.Param("id")

	if err := services.MarkNotificationRead(db, userId, notificationId); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func Clearnotifications(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	if err := services.ClearNotifications(db, userId); err != nil {
		c.JSON(500, gin.H{"error": "Failed to clear notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
