package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an end customer, distinct from admins and astrologers.
// Users are soft-deleted only: IsDeleted is set and the row stays.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Mobile     string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"mobile"`
	Gender     string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	BirthTime  string     `gorm:"type:varchar(10)" json:"birth_time,omitempty"`
	Occupation string     `gorm:"type:varchar(100)" json:"occupation,omitempty"`
	IsActive   *bool      `gorm:"not null;default:true;index" json:"is_active"`
	IsDeleted  bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
