package auth

import (
	"strings"
	"time"
)

// Role determines the actor's team and base capabilities.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleSalesRep     Role = "sales_rep"
	RoleDesigner     Role = "designer"
	RoleManufacturer Role = "manufacturer"
)

// User is a staff account. Permissions beyond the role's defaults are stored
// as an explicit grant list; admins implicitly hold every permission.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name" json:"name"`
	Phone        string    `gorm:"column:phone" json:"phone,omitempty"`
	Role         Role      `gorm:"column:role" json:"role"`
	Permissions  string    `gorm:"column:permissions" json:"-"` // comma-separated grants
	Active       bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// PermissionList splits the stored grant string.
func (u *User) PermissionList() []string {
	if u.Permissions == "" {
		return nil
	}
	parts := strings.Split(u.Permissions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SetPermissionList stores the grant list back into the column form.
func (u *User) SetPermissionList(perms []string) {
	u.Permissions = strings.Join(perms, ",")
}
