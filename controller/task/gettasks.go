package task

import (
	"net/http"

	"todoapp/middleware"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetTasksController(router *gin.Engine, db *gorm.DB) {
	router.GET("/api/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Gettasks(c, db)
	})
}

func Gettasks(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	tasks, err := services.GetTasksByUser(db, userId)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
