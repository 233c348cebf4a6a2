package converter

import (
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
)

// AdminToResponse converts an Admin entity to AdminResponse DTO
func AdminToResponse(admin *entity.Admin) *dto.AdminResponse {
	if admin == nil {
		return nil
	}

	return &dto.AdminResponse{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		PhoneNo:   admin.PhoneNo,
		RoleID:    admin.RoleID,
		RoleName:  admin.Role.Name,
		IsActive:  admin.IsActive,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// AdminsToResponses converts a slice of Admin entities
func AdminsToResponses(admins []entity.Admin) []dto.AdminResponse {
	responses := make([]dto.AdminResponse, len(admins))
	for i := range admins {
		responses[i] = *AdminToResponse(&admins[i])
	}
	return responses
}
