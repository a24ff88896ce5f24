package notification

import (
	"net/http"
	"time"

	"todoapp/middleware"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CheckRemindersController(router *gin.Engine, db *gorm.DB) {
	router.POST("/api/check-reminders", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Checkreminders(c, db)
	})
}

// Checkreminders is polled by the client; nothing fires unless someone polls.
func Checkreminders(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	delivered, err := services.CheckDueReminders(db, userId, time.Now())
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to check reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": delivered})
}
