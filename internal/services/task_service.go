package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskboard/task-user-api/internal/models"
	"github.com/taskboard/task-user-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrTitleEmpty       = errors.New("title cannot be empty")
	ErrDescriptionEmpty = errors.New("description cannot be empty")
	ErrStatusEmpty      = errors.New("status cannot be empty")
	ErrInvalidStatus    = errors.New("wrong status, choose one from the list: NEW, IN_PROGRESS, COMPLETED, CANCELLED")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	UserID      *uint64
}

// UpdateTaskInput represents input for updating a task. The same shape serves
// both full and partial updates; which fields are mandatory depends on the mode.
type UpdateTaskInput struct {
	Title       string
	Description string
	Status      string
	UserID      *uint64
}

// CreateTask creates a new task. The creation date is fixed to today and the
// status starts at NEW regardless of input. If a user is referenced, it must
// exist before anything is written.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.UserID != nil {
		if err := s.ensureUserExists(*input.UserID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:        input.Title,
		Description:  input.Description,
		CreationDate: today(),
		Status:       models.TaskStatusNew,
		UserID:       input.UserID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task with id %d: %w", taskID, ErrTaskNotFound)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// ListTasks returns one page of tasks ordered by ID ascending
func (s *TaskService) ListTasks(page, size int) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask replaces every governed field of an existing task from the input.
// Title, description and status are all required; the user assignment is
// overwritten wholesale, including being cleared when input.UserID is nil.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	if err := s.applyFullUpdate(task, input); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// PartialUpdateTask merges only the present, non-blank fields of the input into
// an existing task. A nil or blank field leaves the existing value untouched; a
// nil UserID never clears an assignment.
func (s *TaskService) PartialUpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	if err := s.applyPartialUpdate(task, input); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task by ID
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.GetTask(taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// AssignTask assigns an existing task to an existing user. Both records are
// verified independently before the assignment is written.
func (s *TaskService) AssignTask(taskID, userID uint64) (*models.Task, error) {
	if err := s.ensureUserExists(userID); err != nil {
		return nil, err
	}

	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	task.UserID = &userID

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}

	return task, nil
}

// applyFullUpdate validates a full-update payload and overwrites the task's
// governed fields from it.
func (s *TaskService) applyFullUpdate(task *models.Task, input UpdateTaskInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleEmpty
	}
	if strings.TrimSpace(input.Description) == "" {
		return ErrDescriptionEmpty
	}
	if strings.TrimSpace(input.Status) == "" {
		return ErrStatusEmpty
	}

	status, err := models.ParseTaskStatus(input.Status)
	if err != nil {
		return ErrInvalidStatus
	}

	if input.UserID != nil {
		if err := s.ensureUserExists(*input.UserID); err != nil {
			return err
		}
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = status
	task.UserID = input.UserID

	return nil
}

// applyPartialUpdate merges the non-blank fields of a partial-update payload
// into the task. A present status must still parse.
func (s *TaskService) applyPartialUpdate(task *models.Task, input UpdateTaskInput) error {
	if strings.TrimSpace(input.Title) != "" {
		task.Title = input.Title
	}
	if strings.TrimSpace(input.Description) != "" {
		task.Description = input.Description
	}
	if strings.TrimSpace(input.Status) != "" {
		status, err := models.ParseTaskStatus(input.Status)
		if err != nil {
			return ErrInvalidStatus
		}
		task.Status = status
	}
	if input.UserID != nil {
		if err := s.ensureUserExists(*input.UserID); err != nil {
			return err
		}
		task.UserID = input.UserID
	}

	return nil
}

// ensureUserExists verifies that a referenced user exists. One point lookup
// per validation, no caching.
func (s *TaskService) ensureUserExists(userID uint64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user with id %d: %w", userID, ErrUserNotFound)
		}
		return fmt.Errorf("failed to find user: %w", err)
	}
	return nil
}

// today returns the current date with the time component zeroed
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
