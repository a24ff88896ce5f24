package task

import (
	"log"
	"net/http"
	"time"

	"todoapp/dto"
	"todoapp/middleware"
	"todoapp/model"
	"todoapp/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateTaskController(router *gin.Engine, db *gorm.DB) {
	router.POST("/api/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Createtask(c, db)
	})
}

func Createtask(c *gin.Context, db *gorm.DB) {
	userId := c.MustGet("userId").(string)

	var taskReq dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&taskReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	dueDate, err := parseDueDate(taskReq.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dueDate format"})
		return
	}

	priority := taskReq.Priority
	if priority == "" {
		priority = "medium"
	}

	newtask := model.Task{
		TaskID:      uuid.New().String(),
		Title:       taskReq.Title,
		Description: taskReq.Description,
		DueDate:     dueDate,
		Priority:    priority,
		Reminder:    taskReq.Reminder,
		CreatedAt:   time.Now(),
		UserID:      userId,
	}

	if err := db.Create(&newtask).Error; err != nil {
		c.JSON(500, gin.H{"error": "Failed to create task"})
		return
	}

	// Best effort: a scheduling failure must not fail the task write.
	if err := services.ScheduleReminder(db, &newtask); err != nil {
		log.Printf("Failed to schedule reminder for task %s: %v", newtask.TaskID, err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    newtask,
	})
}

func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
