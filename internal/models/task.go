package models

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "NEW"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// ParseTaskStatus parses a status string case-insensitively. Both the full and
// partial update paths go through this single parser.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch status := TaskStatus(strings.ToUpper(s)); status {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

type Task struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	CreationDate time.Time  `gorm:"type:date" json:"creation_date"`
	Status       TaskStatus `gorm:"type:varchar(20);not null;default:'NEW'" json:"status"`
	UserID       *uint64    `json:"user_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
