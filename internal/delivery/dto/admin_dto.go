package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	PhoneNo  string `json:"phone_no" validate:"required,min=10,max=20"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   int    `json:"role_id" validate:"required,gt=0"`
}

type UpdateAdminRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	PhoneNo  string `json:"phone_no" validate:"omitempty,min=10,max=20"`
	Password string `json:"password" validate:"omitempty,min=6"`
	RoleID   int    `json:"role_id" validate:"omitempty,gt=0"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	PhoneNo   string    `json:"phone_no"`
	RoleID    int       `json:"role_id"`
	RoleName  string    `json:"role_name,omitempty"`
	IsActive  *bool     `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminListResponse struct {
	Data        []AdminResponse `json:"data"`
	TotalCount  int64           `json:"total_count"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
}
