package task

import (
	"errors"
	"net/http"

	"todoapp/middleware"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/api/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Deletetask(c, db)
	})
}

func Deletetask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	if err := services.DeleteTask(db, userId, taskId); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
