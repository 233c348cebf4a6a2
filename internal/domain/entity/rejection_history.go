package entity

import (
	"time"

	"github.com/google/uuid"
)

// RejectionStage is the workflow stage a rejection happened at
type RejectionStage string

const (
	RejectionStageProfile   RejectionStage = "PROFILE"
	RejectionStageInterview RejectionStage = "INTERVIEW"
	RejectionStageDocument  RejectionStage = "DOCUMENT"
)

// AstrologerRejectionHistory is the append-only audit trail of rejection
// events. Rows are never updated or deleted.
type AstrologerRejectionHistory struct {
	ID           int            `gorm:"primaryKey;autoIncrement" json:"id"`
	AstrologerID uuid.UUID      `gorm:"type:uuid;not null;index" json:"astrologer_id"`
	Stage        RejectionStage `gorm:"type:varchar(20);not null" json:"stage"`
	Reason       string         `gorm:"type:text;not null" json:"reason"`
	RejectedBy   uuid.UUID      `gorm:"type:uuid;not null" json:"rejected_by"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (AstrologerRejectionHistory) TableName() string {
	return "astrologer_rejection_histories"
}
