package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Line1   string `json:"line1" validate:"required"`
	Line2   string `json:"line2" validate:"omitempty"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"omitempty"`
	Pincode string `json:"pincode" validate:"omitempty,min=4,max=10"`
}

type ExperiencePlatformRequest struct {
	PlatformName string  `json:"platform_name" validate:"required"`
	Years        float64 `json:"years" validate:"omitempty,gte=0"`
}

type CreateAstrologerRequest struct {
	Name                string                      `json:"name" validate:"required,min=2"`
	Email               string                      `json:"email" validate:"required,email"`
	ContactNo           string                      `json:"contact_no" validate:"omitempty,min=10,max=20"`
	Gender              string                      `json:"gender" validate:"omitempty,oneof=M F O"`
	DateOfBirth         string                      `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	Languages           []string                    `json:"languages" validate:"omitempty"`
	Skills              []string                    `json:"skills" validate:"omitempty"`
	Experience          float64                     `json:"experience" validate:"omitempty,gte=0"`
	Price               float64                     `json:"price" validate:"omitempty,gte=0"`
	About               string                      `json:"about" validate:"omitempty"`
	ProfilePic          string                      `json:"profile_pic" validate:"omitempty,url"`
	Addresses           []AddressRequest            `json:"addresses" validate:"omitempty,dive"`
	ExperiencePlatforms []ExperiencePlatformRequest `json:"experience_platforms" validate:"omitempty,dive"`
}

type UpdateAstrologerRequest struct {
	Name         string   `json:"name" validate:"omitempty,min=2"`
	ContactNo    string   `json:"contact_no" validate:"omitempty,min=10,max=20"`
	Gender       string   `json:"gender" validate:"omitempty,oneof=M F O"`
	Languages    []string `json:"languages" validate:"omitempty"`
	Skills       []string `json:"skills" validate:"omitempty"`
	Experience   *float64 `json:"experience" validate:"omitempty,gte=0"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	About        string   `json:"about" validate:"omitempty"`
	ProfilePic   string   `json:"profile_pic" validate:"omitempty,url"`
	AdminRemarks string   `json:"admin_remarks" validate:"omitempty"`
}

// ListAstrologersQuery carries parsed query parameters for listings.
type ListAstrologersQuery struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Response DTOs

type AddressResponse struct {
	ID      int    `json:"id"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type ExperiencePlatformResponse struct {
	ID           int     `json:"id"`
	PlatformName string  `json:"platform_name"`
	Years        float64 `json:"years"`
}

type AstrologerResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	Name                string                       `json:"name"`
	Email               string                       `json:"email"`
	ContactNo           string                       `json:"contact_no,omitempty"`
	Gender              string                       `json:"gender,omitempty"`
	DateOfBirth         string                       `json:"date_of_birth,omitempty"`
	Languages           []string                     `json:"languages"`
	Skills              []string                     `json:"skills"`
	Experience          float64                      `json:"experience"`
	Price               float64                      `json:"price"`
	Rating              float64                      `json:"rating"`
	About               string                       `json:"about,omitempty"`
	ProfilePic          string                       `json:"profile_pic,omitempty"`
	ApprovalStatus      string                       `json:"approval_status"`
	AdminRemarks        string                       `json:"admin_remarks,omitempty"`
	ApprovedByID        *uuid.UUID                   `json:"approved_by_id,omitempty"`
	Addresses           []AddressResponse            `json:"addresses,omitempty"`
	ExperiencePlatforms []ExperiencePlatformResponse `json:"experience_platforms,omitempty"`
	Interviews          []InterviewResponse          `json:"interviews,omitempty"`
	Documents           []DocumentResponse           `json:"documents,omitempty"`
	RejectionHistory    []RejectionHistoryResponse   `json:"rejection_history,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
}

type AstrologerListResponse struct {
	Data        []AstrologerResponse `json:"data"`
	TotalCount  int64                `json:"total_count"`
	CurrentPage int                  `json:"current_page"`
	TotalPages  int                  `json:"total_pages"`
}
