package services

import (
	"fmt"
	"time"

	"todoapp/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLead is how long before a task's due date its reminder fires.
const ReminderLead = 20 * time.Minute

// ScheduleReminder ensures a pending reminder notification exists for the
// task, firing at due date minus ReminderLead. A no-op when the task has no
// due date, the reminder flag is off, or the fire time is not strictly in
// the future (a reminder whose window has passed is dropped, not
// back-filled).
//
// Rescheduling replaces the task's pending reminder instead of appending a
// second one; reminders that were already delivered are left alone.
func ScheduleReminder(db *gorm.DB, task *model.Task) error {
	if !task.Reminder || task.DueDate == nil {
		return nil
	}

	fireTime := task.DueDate.Add(-ReminderLead)
	if !fireTime.After(time.Now()) {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ? AND sent = ?", task.TaskID, false).
			Delete(&model.Notification{}).Error; err != nil {
			return fmt.Errorf("failed to replace pending reminder: %w", err)
		}

		reminder := model.Notification{
			NotificationID: uuid.New().String(),
			TaskID:         task.TaskID,
			Title:          "Task Reminder",
			Message:        fmt.Sprintf("%q is due in 20 minutes!", task.Title),
			Timestamp:      time.Now(),
			ScheduledTime:  &fireTime,
			UserID:         task.UserID,
		}
		if err := tx.Create(&reminder).Error; err != nil {
			return fmt.Errorf("failed to create reminder: %w", err)
		}
		return nil
	})
}

// CheckDueReminders finds the user's reminders whose scheduled time has
// passed and delivers each at most once. The sent flag is flipped with a
// guarded update, so of two concurrent calls racing on the same row only
// one gets it back.
func CheckDueReminders(db *gorm.DB, userID string, now time.Time) ([]model.Notification, error) {
	var due []model.Notification
	if err := db.Where("user_id = ? AND scheduled_time <= ? AND sent = ?", userID, now, false).
		Find(&due).Error; err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}

	delivered := make([]model.Notification, 0, len(due))
	for i := range due {
		result := db.Model(&model.Notification{}).
			Where("notification_id = ? AND sent = ?", due[i].NotificationID, false).
			Updates(map[string]interface{}{"sent": true, "timestamp": now})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to mark reminder sent: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Another dispatch call won this row.
			continue
		}
		due[i].Sent = true
		due[i].Timestamp = now
		delivered = append(delivered, due[i])
	}
	return delivered, nil
}
