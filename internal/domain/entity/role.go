package entity

// Role represents a named bundle of permissions held by admins
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions,omitempty"`
	Admins      []Admin      `gorm:"foreignKey:RoleID" json:"admins,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// RolePermission is the join record between roles and permissions
type RolePermission struct {
	ID           int `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID       int `gorm:"not null;uniqueIndex:idx_role_permission" json:"role_id"`
	PermissionID int `gorm:"not null;uniqueIndex:idx_role_permission" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// Role name constants. Names are stored trimmed and upper-cased.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleManager    = "MANAGER"
	RoleAdmin      = "ADMIN"
)
