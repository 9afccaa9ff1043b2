package organization

type CreateRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

type UpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	Notes        *string `json:"notes"`
}
