package converter

import (
	"astro-admin-api/internal/delivery/dto"
	"astro-admin-api/internal/domain/entity"
)

// AstrologerToResponse converts an Astrologer entity with its loaded
// children to AstrologerResponse DTO
func AstrologerToResponse(astrologer *entity.Astrologer) *dto.AstrologerResponse {
	if astrologer == nil {
		return nil
	}

	response := &dto.AstrologerResponse{
		ID:             astrologer.ID,
		Name:           astrologer.Name,
		Email:          astrologer.Email,
		ContactNo:      astrologer.ContactNo,
		Gender:         astrologer.Gender,
		Languages:      astrologer.Languages,
		Skills:         astrologer.Skills,
		Experience:     astrologer.Experience,
		Price:          astrologer.Price,
		Rating:         astrologer.Rating,
		About:          astrologer.About,
		ProfilePic:     astrologer.ProfilePic,
		ApprovalStatus: string(astrologer.ApprovalStatus),
		AdminRemarks:   astrologer.AdminRemarks,
		ApprovedByID:   astrologer.ApprovedByID,
		CreatedAt:      astrologer.CreatedAt,
		UpdatedAt:      astrologer.UpdatedAt,
	}

	if astrologer.DateOfBirth != nil {
		response.DateOfBirth = astrologer.DateOfBirth.Format("2006-01-02")
	}

	for _, address := range astrologer.Addresses {
		response.Addresses = append(response.Addresses, dto.AddressResponse{
			ID:      address.ID,
			Line1:   address.Line1,
			Line2:   address.Line2,
			City:    address.City,
			State:   address.State,
			Pincode: address.Pincode,
		})
	}

	for _, platform := range astrologer.ExperiencePlatforms {
		response.ExperiencePlatforms = append(response.ExperiencePlatforms, dto.ExperiencePlatformResponse{
			ID:           platform.ID,
			PlatformName: platform.PlatformName,
			Years:        platform.Years,
		})
	}

	for i := range astrologer.Interviews {
		response.Interviews = append(response.Interviews, *InterviewToResponse(&astrologer.Interviews[i]))
	}

	for i := range astrologer.Documents {
		response.Documents = append(response.Documents, *DocumentToResponse(&astrologer.Documents[i]))
	}

	for i := range astrologer.RejectionHistory {
		response.RejectionHistory = append(response.RejectionHistory, *RejectionHistoryToResponse(&astrologer.RejectionHistory[i]))
	}

	return response
}

// AstrologersToResponses converts a slice of Astrologer entities
func AstrologersToResponses(astrologers []entity.Astrologer) []dto.AstrologerResponse {
	responses := make([]dto.AstrologerResponse, len(astrologers))
	for i := range astrologers {
		responses[i] = *AstrologerToResponse(&astrologers[i])
	}
	return responses
}

// InterviewToResponse converts an Interview entity to its DTO
func InterviewToResponse(interview *entity.Interview) *dto.InterviewResponse {
	if interview == nil {
		return nil
	}

	return &dto.InterviewResponse{
		ID:              interview.ID,
		AstrologerID:    interview.AstrologerID,
		RoundNumber:     interview.RoundNumber,
		InterviewerName: interview.InterviewerName,
		ScheduledAt:     interview.ScheduledAt,
		Status:          string(interview.Status),
		Remarks:         interview.Remarks,
	}
}

// DocumentToResponse converts an AstrologerDocument entity to its DTO
func DocumentToResponse(document *entity.AstrologerDocument) *dto.DocumentResponse {
	if document == nil {
		return nil
	}

	return &dto.DocumentResponse{
		ID:           document.ID,
		AstrologerID: document.AstrologerID,
		DocumentType: document.DocumentType,
		DocumentURL:  document.DocumentURL,
		Status:       string(document.Status),
		VerifiedBy:   document.VerifiedBy,
		VerifiedAt:   document.VerifiedAt,
		Remarks:      document.Remarks,
	}
}

// RejectionHistoryToResponse converts a rejection history entry to its DTO
func RejectionHistoryToResponse(history *entity.AstrologerRejectionHistory) *dto.RejectionHistoryResponse {
	if history == nil {
		return nil
	}

	return &dto.RejectionHistoryResponse{
		ID:           history.ID,
		AstrologerID: history.AstrologerID,
		Stage:        string(history.Stage),
		Reason:       history.Reason,
		RejectedBy:   history.RejectedBy,
		CreatedAt:    history.CreatedAt,
	}
}
