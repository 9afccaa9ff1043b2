package auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role" validate:"required,oneof=admin sales_rep designer manufacturer"`
	Permissions []string `json:"permissions"`
}

type UserPublic struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone,omitempty"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

func toPublic(u *User) UserPublic {
	return UserPublic{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		Role:        string(u.Role),
		Permissions: u.PermissionList(),
	}
}
