package model

import "time"

type Task struct {
	TaskID      string     `gorm:"primaryKey;size:36" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `gorm:"size:20;default:medium" json:"priority"` // low, medium, high
	Reminder    bool       `json:"reminder"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
	UserID      string     `gorm:"size:36;index;not null" json:"userId"`
}

func (Task) TableName() string {
	return "tasks"
}
