package repository

import (
	"github.com/taskboard/task-user-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves a window of tasks ordered by ID ascending
	List(offset, limit int) ([]models.Task, error)

	// FindByUserID retrieves all tasks assigned to a user
	FindByUserID(userID uint64) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// List retrieves a window of users ordered by ID ascending
	List(offset, limit int) ([]models.User, error)
}
