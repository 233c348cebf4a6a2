package dto

// Request DTOs

type CreateRoleRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Description   string `json:"description" validate:"omitempty"`
	PermissionIDs []int  `json:"permission_ids" validate:"omitempty,dive,gt=0"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2"`
	Description string `json:"description" validate:"omitempty"`
	// PermissionIDs, when present, replaces the role's full permission
	// set. Nil leaves the set untouched.
	PermissionIDs *[]int `json:"permission_ids" validate:"omitempty,dive,gt=0"`
}

type AssignPermissionsRequest struct {
	PermissionIDs []int `json:"permission_ids" validate:"required,min=1,dive,gt=0"`
}

// Response DTOs

type RoleResponse struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Permissions []PermissionResponse `json:"permissions"`
}

type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
	Total int            `json:"total"`
}
