package converter

import (
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Mobile:     user.Mobile,
		Gender:     user.Gender,
		BirthTime:  user.BirthTime,
		Occupation: user.Occupation,
		IsActive:   user.IsActive,
		IsDeleted:  user.IsDeleted,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	if user.BirthDate != nil {
		response.BirthDate = user.BirthDate.Format("2006-01-02")
	}

	return response
}

// UsersToResponses converts a slice of User entities
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
