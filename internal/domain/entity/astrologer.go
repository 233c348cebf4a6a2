package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the onboarding state of an astrologer. Only the
// approval usecase writes it.
type ApprovalStatus string

const (
	ApprovalStatusPending              ApprovalStatus = "PENDING"
	ApprovalStatusInterview            ApprovalStatus = "INTERVIEW"
	ApprovalStatusDocumentVerification ApprovalStatus = "DOCUMENT_VERIFICATION"
	ApprovalStatusApproved             ApprovalStatus = "APPROVED"
	ApprovalStatusRejected             ApprovalStatus = "REJECTED"
)

// Astrologer represents a service-provider profile subject to the
// approval workflow
type Astrologer struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	ContactNo      string         `gorm:"type:varchar(20)" json:"contact_no"`
	Gender         string         `gorm:"type:varchar(10)" json:"gender"`
	DateOfBirth    *time.Time     `json:"date_of_birth,omitempty"`
	Languages      []string       `gorm:"serializer:json" json:"languages"`
	Skills         []string       `gorm:"serializer:json" json:"skills"`
	Experience     float64        `gorm:"not null;default:0" json:"experience"`
	Price          float64        `gorm:"not null;default:0" json:"price"`
	Rating         float64        `gorm:"not null;default:0" json:"rating"`
	About          string         `gorm:"type:text" json:"about,omitempty"`
	ProfilePic     string         `gorm:"type:text" json:"profile_pic,omitempty"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(30);not null;default:'PENDING';index" json:"approval_status"`
	AdminRemarks   string         `gorm:"type:text" json:"admin_remarks,omitempty"`
	ApprovedByID   *uuid.UUID     `gorm:"type:uuid" json:"approved_by_id,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships - all children are removed with the astrologer
	Addresses           []AstrologerAddress          `gorm:"foreignKey:AstrologerID" json:"addresses,omitempty"`
	ExperiencePlatforms []ExperiencePlatform         `gorm:"foreignKey:AstrologerID" json:"experience_platforms,omitempty"`
	Interviews          []Interview                  `gorm:"foreignKey:AstrologerID" json:"interviews,omitempty"`
	Documents           []AstrologerDocument         `gorm:"foreignKey:AstrologerID" json:"documents,omitempty"`
	RejectionHistory    []AstrologerRejectionHistory `gorm:"foreignKey:AstrologerID" json:"rejection_history,omitempty"`
}

func (Astrologer) TableName() string {
	return "astrologers"
}

// AstrologerAddress is a postal address owned by an astrologer
type AstrologerAddress struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AstrologerID uuid.UUID `gorm:"type:uuid;not null;index" json:"astrologer_id"`
	Line1        string    `gorm:"type:varchar(255);not null" json:"line1"`
	Line2        string    `gorm:"type:varchar(255)" json:"line2,omitempty"`
	City         string    `gorm:"type:varchar(100);not null" json:"city"`
	State        string    `gorm:"type:varchar(100)" json:"state"`
	Pincode      string    `gorm:"type:varchar(10)" json:"pincode"`
}

func (AstrologerAddress) TableName() string {
	return "astrologer_addresses"
}

// ExperiencePlatform records prior work on another astrology platform
type ExperiencePlatform struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AstrologerID uuid.UUID `gorm:"type:uuid;not null;index" json:"astrologer_id"`
	PlatformName string    `gorm:"type:varchar(100);not null" json:"platform_name"`
	Years        float64   `gorm:"not null;default:0" json:"years"`
}

func (ExperiencePlatform) TableName() string {
	return "experience_platforms"
}
