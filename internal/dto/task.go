package dto

import (
	"github.com/taskboard/task-user-api/internal/models"
)

const dateLayout = "2006-01-02"

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID           uint64            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	CreationDate string            `json:"creationDate"`
	Status       models.TaskStatus `json:"status"`
	UserID       *uint64           `json:"userId"`
}

// TaskSummaryResponse represents a task in list responses (minimal data)
type TaskSummaryResponse struct {
	ID           uint64            `json:"id"`
	Title        string            `json:"title"`
	CreationDate string            `json:"creationDate"`
	Status       models.TaskStatus `json:"status"`
}

// ToTaskResponse converts a Task model to TaskResponse
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		CreationDate: task.CreationDate.Format(dateLayout),
		Status:       task.Status,
		UserID:       task.UserID,
	}
}

// ToTaskSummaryResponse converts a Task model to TaskSummaryResponse
func ToTaskSummaryResponse(task models.Task) TaskSummaryResponse {
	return TaskSummaryResponse{
		ID:           task.ID,
		Title:        task.Title,
		CreationDate: task.CreationDate.Format(dateLayout),
		Status:       task.Status,
	}
}

// ToTaskResponseList converts a slice of tasks to TaskResponse values
func ToTaskResponseList(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

// ToTaskSummaryList converts a slice of tasks to TaskSummaryResponse values
func ToTaskSummaryList(tasks []models.Task) []TaskSummaryResponse {
	summaries := make([]TaskSummaryResponse, len(tasks))
	for i, task := range tasks {
		summaries[i] = ToTaskSummaryResponse(task)
	}
	return summaries
}
