package converter

import (
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
)

// PermissionToResponse converts a Permission entity to its DTO
func PermissionToResponse(permission *entity.Permission) *dto.PermissionResponse {
	if permission == nil {
		return nil
	}

	return &dto.PermissionResponse{
		ID:          permission.ID,
		Name:        permission.Name,
		Description: permission.Description,
	}
}

// PermissionsToResponses converts a slice of Permission entities
func PermissionsToResponses(permissions []entity.Permission) []dto.PermissionResponse {
	responses := make([]dto.PermissionResponse, len(permissions))
	for i, permission := range permissions {
		responses[i] = dto.PermissionResponse{
			ID:          permission.ID,
			Name:        permission.Name,
			Description: permission.Description,
		}
	}
	return responses
}

// RoleToResponse converts a Role entity with its flattened permission list
func RoleToResponse(role *entity.Role) *dto.RoleResponse {
	if role == nil {
		return nil
	}

	return &dto.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: PermissionsToResponses(role.Permissions),
	}
}

// RolesToResponses converts a slice of Role entities
func RolesToResponses(roles []entity.Role) []dto.RoleResponse {
	responses := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *RoleToResponse(&roles[i])
	}
	return responses
}
