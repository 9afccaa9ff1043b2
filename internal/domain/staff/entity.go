package staff

import "time"

// Department groups staff by team
type Department string

const (
	DeptSales         Department = "sales"
	DeptDesign        Department = "design"
	DeptManufacturing Department = "manufacturing"
	DeptOperations    Department = "operations"
)

func IsValidDepartment(d Department) bool {
	switch d {
	case DeptSales, DeptDesign, DeptManufacturing, DeptOperations:
		return true
	}
	return false
}

// Member is a staff profile. UserID links the profile to a login account
// when the member has one; warehouse or seasonal staff may not.
type Member struct {
	ID         int64      `gorm:"column:id;primaryKey" json:"id"`
	UserID     *int64     `gorm:"column:user_id" json:"user_id,omitempty"`
	Name       string     `gorm:"column:name" json:"name"`
	Title      string     `gorm:"column:title" json:"title,omitempty"`
	Department Department `gorm:"column:department" json:"department"`
	Email      string     `gorm:"column:email" json:"email,omitempty"`
	Phone      string     `gorm:"column:phone" json:"phone,omitempty"`
	Active     bool       `gorm:"column:active;default:true" json:"active"`
	CreatedAt  time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Member) TableName() string { return "staff_members" }
