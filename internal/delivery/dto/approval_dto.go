package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ScheduleInterviewRequest struct {
	RoundNumber     int    `json:"round_number" validate:"required,gt=0"`
	InterviewerName string `json:"interviewer_name" validate:"required,min=2"`
	ScheduledAt     string `json:"scheduled_at" validate:"required"` // Format: RFC3339
}

type AddDocumentRequest struct {
	DocumentType string `json:"document_type" validate:"required,min=2"`
	DocumentURL  string `json:"document_url" validate:"required,url"`
}

type VerifyDocumentRequest struct {
	Status  string `json:"status" validate:"required,oneof=PENDING VERIFIED REJECTED"`
	Remarks string `json:"remarks" validate:"omitempty"`
}

type RejectAstrologerRequest struct {
	Stage  string `json:"stage" validate:"required,oneof=PROFILE INTERVIEW DOCUMENT"`
	Reason string `json:"reason" validate:"required,min=2"`
}

type ApproveAstrologerRequest struct {
	Remarks string `json:"remarks" validate:"omitempty"`
}

// Response DTOs

type InterviewResponse struct {
	ID              int       `json:"id"`
	AstrologerID    uuid.UUID `json:"astrologer_id"`
	RoundNumber     int       `json:"round_number"`
	InterviewerName string    `json:"interviewer_name"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Status          string    `json:"status"`
	Remarks         string    `json:"remarks,omitempty"`
}

type DocumentResponse struct {
	ID           int        `json:"id"`
	AstrologerID uuid.UUID  `json:"astrologer_id"`
	DocumentType string     `json:"document_type"`
	DocumentURL  string     `json:"document_url"`
	Status       string     `json:"status"`
	VerifiedBy   *uuid.UUID `json:"verified_by,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	Remarks      string     `json:"remarks,omitempty"`
}

type RejectionHistoryResponse struct {
	ID           int       `json:"id"`
	AstrologerID uuid.UUID `json:"astrologer_id"`
	Stage        string    `json:"stage"`
	Reason       string    `json:"reason"`
	RejectedBy   uuid.UUID `json:"rejected_by"`
	CreatedAt    time.Time `json:"created_at"`
}
