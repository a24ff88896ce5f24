package services

import (
	"testing"
	"time"

	"todoapp/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNotificationsByUser_MostRecentFirst(t *testing.T) {
	db := setupTestDB(t)

	older := model.Notification{
		NotificationID: uuid.New().String(),
		Title:          "Task Reminder",
		Message:        "older",
		Timestamp:      time.Now().Add(-time.Hour),
		UserID:         "user-1",
	}
	newer := model.Notification{
		NotificationID: uuid.New().String(),
		Title:          "Task Reminder",
		Message:        "newer",
		Timestamp:      time.Now(),
		UserID:         "user-1",
	}
	foreign := model.Notification{
		NotificationID: uuid.New().String(),
		Title:          "Task Reminder",
		Message:        "foreign",
		Timestamp:      time.Now(),
		UserID:         "user-2",
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&foreign).Error)

	notifications, err := GetNotificationsByUser(db, "user-1")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "newer", notifications[0].Message)
	assert.Equal(t, "older", notifications[1].Message)
}

func TestMarkNotificationRead(t *testing.T) {
	db := setupTestDB(t)

	n := model.Notification{
		NotificationID: uuid.New().String(),
		Title:          "Task Reminder",
		Message:        "m",
		Timestamp:      time.Now(),
		UserID:         "user-1",
	}
	require.NoError(t, db.Create(&n).Error)

	assert.ErrorIs(t, MarkNotificationRead(db, "user-2", n.NotificationID), ErrNotificationNotFound)

	require.NoError(t, MarkNotificationRead(db, "user-1", n.NotificationID))

	var stored model.Notification
	require.NoError(t, db.First(&stored, "notification_id = ?", n.NotificationID).Error)
	assert.True(t, stored.Read)
}

func TestClearNotifications_OnlyOwnRows(t *testing.T) {
	db := setupTestDB(t)

	mine := model.Notification{NotificationID: uuid.New().String(), Title: "t", Message: "m", Timestamp: time.Now(), UserID: "user-1"}
	theirs := model.Notification{NotificationID: uuid.New().String(), Title: "t", Message: "m", Timestamp: time.Now(), UserID: "user-2"}
	require.NoError(t, db.Create(&mine).Error)
	require.NoError(t, db.Create(&theirs).Error)

	require.NoError(t, ClearNotifications(db, "user-1"))

	remaining, err := GetNotificationsByUser(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	others, err := GetNotificationsByUser(db, "user-2")
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
