package dto

// Request DTOs

type CreatePermissionRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"omitempty"`
}

type UpdatePermissionRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type PermissionResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type PermissionListResponse struct {
	Permissions []PermissionResponse `json:"permissions"`
	Total       int                  `json:"total"`
}
