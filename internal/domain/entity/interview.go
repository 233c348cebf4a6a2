package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterviewStatus is the outcome of a single interview round
type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "SCHEDULED"
	InterviewStatusPassed      InterviewStatus = "PASSED"
	InterviewStatusFailed      InterviewStatus = "FAILED"
	InterviewStatusRescheduled InterviewStatus = "RESCHEDULED"
)

// Interview represents one interview round for an astrologer.
// RoundNumber is unique per astrologer.
type Interview struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	AstrologerID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_astrologer_round" json:"astrologer_id"`
	RoundNumber     int             `gorm:"not null;uniqueIndex:idx_astrologer_round" json:"round_number"`
	InterviewerName string          `gorm:"type:varchar(255);not null" json:"interviewer_name"`
	ScheduledAt     time.Time       `gorm:"not null" json:"scheduled_at"`
	Status          InterviewStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED'" json:"status"`
	Remarks         string          `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Interview) TableName() string {
	return "interviews"
}
