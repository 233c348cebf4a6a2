package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus is the verification state of a single document
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusVerified DocumentStatus = "VERIFIED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// AstrologerDocument represents an uploaded verification document.
// DocumentType is unique per astrologer.
type AstrologerDocument struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	AstrologerID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_astrologer_document_type" json:"astrologer_id"`
	DocumentType string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_astrologer_document_type" json:"document_type"`
	DocumentURL  string         `gorm:"type:text;not null" json:"document_url"`
	Status       DocumentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	VerifiedBy   *uuid.UUID     `gorm:"type:uuid" json:"verified_by,omitempty"`
	VerifiedAt   *time.Time     `json:"verified_at,omitempty"`
	Remarks      string         `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AstrologerDocument) TableName() string {
	return "astrologer_documents"
}
