package dto

import (
	"github.com/taskboard/task-user-api/internal/models"
)

// UserResponse represents a user in API responses
type UserResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ToUserResponse converts a User model to UserResponse
func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:   user.ID,
		Name: user.Name,
	}
}

// ToUserResponseList converts a slice of users to UserResponse values
func ToUserResponseList(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
