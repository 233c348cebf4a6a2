package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents an internal staff identity bound to exactly one role
type Admin struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNo   string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone_no"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (Admin) TableName() string {
	return "admins"
}
