package model

import "time"

// Notification is an entry in the user's notification feed. A non-nil
// ScheduledTime marks it as a reminder: it stays invisible to dispatch
// until the scheduled time has passed, and Sent flips exactly once when
// it is delivered.
type Notification struct {
	NotificationID string     `gorm:"primaryKey;size:36" json:"id"`
	TaskID         string     `gorm:"size:36;index" json:"-"`
	Title          string     `gorm:"size:200;not null" json:"title"`
	Message        string     `gorm:"type:text;not null" json:"message"`
	Timestamp      time.Time  `json:"timestamp"`
	ScheduledTime  *time.Time `json:"scheduledTime"`
	Read           bool       `json:"read"`
	Sent           bool       `json:"-"`
	UserID         string     `gorm:"size:36;index;not null" json:"userId"`
}

func (Notification) TableName() string {
	return "notifications"
}
