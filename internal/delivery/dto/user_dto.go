package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateUserRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2"`
	Mobile     string `json:"mobile" validate:"omitempty,min=10,max=20"`
	Gender     string `json:"gender" validate:"omitempty,oneof=M F O"`
	BirthDate  string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	BirthTime  string `json:"birth_time" validate:"omitempty"` // Format: HH:MM
	Occupation string `json:"occupation" validate:"omitempty"`
	IsActive   *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Mobile     string    `json:"mobile"`
	Gender     string    `json:"gender,omitempty"`
	BirthDate  string    `json:"birth_date,omitempty"`
	BirthTime  string    `json:"birth_time,omitempty"`
	Occupation string    `json:"occupation,omitempty"`
	IsActive   *bool     `json:"is_active"`
	IsDeleted  bool      `json:"is_deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Data        []UserResponse `json:"data"`
	TotalCount  int64          `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	TotalPages  int            `json:"total_pages"`
}
