package services

import (
	"errors"
	"fmt"

	"todoapp/model"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// GetTaskByID looks a task up by id, scoped to its owner. A task that
// belongs to another user is reported as not found.
func GetTaskByID(db *gorm.DB, userID string, taskID string) (*model.Task, error) {
	var task model.Task
	if err := db.First(&task, "task_id = ? AND user_id = ?", taskID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

func GetTasksByUser(db *gorm.DB, userID string) ([]model.Task, error) {
	var tasks []model.Task
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func DeleteTask(db *gorm.DB, userID string, taskID string) error {
	result := db.Delete(&model.Task{}, "task_id = ? AND user_id = ?", taskID, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
