package notification

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todoapp/model"
	"todoapp/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gin-gonic/gin"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Notification{},
		&model.TokenRecord{},
	))
	return db
}

func setupRouter(t *testing.T, db *gorm.DB) (*gin.Engine, string) {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NotificationController(router, db)
	CheckRemindersController(router, db)

	token, err := services.CreateAccessToken("user-1", "user-1@example.com")
	require.NoError(t, err)
	return router, token
}

func do(t *testing.T, router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, &bytes.Buffer{})
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedReminder(t *testing.T, db *gorm.DB, userID string, scheduled time.Time) model.Notification {
	t.Helper()
	n := model.Notification{
		NotificationID: uuid.New().String(),
		TaskID:         uuid.New().String(),
		Title:          "Task Reminder",
		Message:        `"Pay rent" is due in 20 minutes!`,
		Timestamp:      time.Now().Add(-time.Hour),
		ScheduledTime:  &scheduled,
		UserID:         userID,
	}
	require.NoError(t, db.Create(&n).Error)
	return n
}

type feedResponse struct {
	Notifications []model.Notification `json:"notifications"`
}

func TestCheckreminders_RequiresAuthentication(t *testing.T) {
	db := setupTestDB(t)
	router, _ := setupRouter(t, db)

	w := do(t, router, http.MethodPost, "/api/check-reminders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckreminders_DeliversDueReminderOnce(t *testing.T) {
	db := setupTestDB(t)
	router, token := setupRouter(t, db)
	seeded := seedReminder(t, db, "user-1", time.Now().Add(-time.Minute))

	w := do(t, router, http.MethodPost, "/api/check-reminders", token)
	require.Equal(t, http.StatusOK, w.Code)

	var first feedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	require.Len(t, first.Notifications, 1)
	assert.Equal(t, seeded.NotificationID, first.Notifications[0].NotificationID)
	assert.Equal(t, `"Pay rent" is due in 20 minutes!`, first.Notifications[0].Message)
	assert.Equal(t, "user-1", first.Notifications[0].UserID)

	// The second poll right after must come back empty.
	w = do(t, router, http.MethodPost, "/api/check-reminders", token)
	require.Equal(t, http.StatusOK, w.Code)

	var second feedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Empty(t, second.Notifications)
}

func TestCheckreminders_LeavesFutureReminders(t *testing.T) {
	db := setupTestDB(t)
	router, token := setupRouter(t, db)
	seedReminder(t, db, "user-1", time.Now().Add(time.Hour))

	w := do(t, router, http.MethodPost, "/api/check-reminders", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp feedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Notifications)
}

func TestNotificationFeed(t *testing.T) {
	db := setupTestDB(t)
	router, token := setupRouter(t, db)

	delivered := seedReminder(t, db, "user-1", time.Now().Add(-time.Minute))
	require.NoError(t, db.Model(&model.Notification{}).
		Where("notification_id = ?", delivered.NotificationID).
		Updates(map[string]interface{}{"sent": true, "timestamp": time.Now()}).Error)

	w := do(t, router, http.MethodGet, "/api/notifications", token)
	require.Equal(t, http.StatusOK, w.Code)

	var feed feedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed.Notifications, 1)
	assert.False(t, feed.Notifications[0].Read)

	w = do(t, router, http.MethodPut, "/api/notifications/"+delivered.NotificationID, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPut, "/api/notifications/"+uuid.New().String(), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodDelete, "/api/notifications", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/api/notifications", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Empty(t, feed.Notifications)
}
