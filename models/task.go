package models

import (
	"time"
)

// Task status choices.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index" json:"user_id"`
	Title       string    `gorm:"type:varchar(200)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	DueDate     time.Time `gorm:"type:date" json:"dueDate"`
	Status      string    `gorm:"type:varchar(10);default:pending" json:"status"`
	CreatedAt   time.Time `json:"createdAt"` // set once, never updated
}

// ToggleStatus flips pending to completed; any other status falls back
// to pending rather than strictly inverting, so future statuses reset
// cleanly.
func (t *Task) ToggleStatus() {
	if t.Status == TaskStatusPending {
		t.Status = TaskStatusCompleted
	} else {
		t.Status = TaskStatusPending
	}
}
