package task

import (
	"errors"
	"log"
	"net/http"
	"time"

	"todoapp/dto"
	"todoapp/middleware"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateTaskController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/api/tasks/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Updatetask(c, db)
	})
}

func Updatetask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	var taskReq dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := parseDueDate(taskReq.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate format"})
		return
	}

	task, err := services.GetTaskByID(db, userId, taskId)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to find task"})
		return
	}

	task.Title = taskReq.Title
	task.Description = taskReq.Description
	task.DueDate = dueDate
	task.Reminder = taskReq.Reminder
	if taskReq.Priority != "" {
		task.Priority = taskReq.Priority
	}

	// CompletedAt tracks the completed flag: stamped on the false->true
	// transition, cleared when completion is reverted, untouched otherwise.
	if taskReq.Completed && !task.Completed {
		now := time.Now()
		task.CompletedAt = &now
	} else if !taskReq.Completed && task.Completed {
		task.CompletedAt = nil
	}
	task.Completed = taskReq.Completed

	if err := db.Save(task).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to update task"})
		return
	}

	if err := services.ScheduleReminder(db, task); err != nil {
		log.Printf("Failed to schedule reminder for task %s: %v", task.TaskID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}
