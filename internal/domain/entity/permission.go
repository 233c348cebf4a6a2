package entity

// Permission represents a named capability bundled into roles.
// Permissions are administrative metadata; authorization itself is
// decided on role names only.
type Permission struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Roles []Role `gorm:"many2many:role_permissions" json:"roles,omitempty"`
}

func (Permission) TableName() string {
	return "permissions"
}
