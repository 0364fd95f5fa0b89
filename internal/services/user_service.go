package services

import (
	"errors"
	"fmt"

	"github.com/taskboard/task-user-api/internal/models"
	"github.com/taskboard/task-user-api/internal/repository"
	"gorm.io/gorm"
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, taskRepo repository.TaskRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name string
}

// CreateUser creates a new user
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	user := &models.User{
		Name: input.Name,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with id %d: %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListUsers returns one page of users ordered by ID ascending
func (s *UserService) ListUsers(page, size int) ([]models.User, error) {
	users, err := s.userRepo.List(page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// ListUserTasks returns all tasks assigned to a user
func (s *UserService) ListUserTasks(userID uint64) ([]models.Task, error) {
	if _, err := s.GetUser(userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user tasks: %w", err)
	}

	return tasks, nil
}
