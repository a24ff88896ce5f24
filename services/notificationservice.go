package services

import (
	"errors"
	"fmt"

	"todoapp/model"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

func GetNotificationsByUser(db *gorm.DB, userID string) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := db.Where("user_id = ?", userID).Order("timestamp desc").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func MarkNotificationRead(db *gorm.DB, userID string, notificationID string) error {
	result := db.Model(&model.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func ClearNotifications(db *gorm.DB, userID string) error {
	if err := db.Delete(&model.Notification{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
