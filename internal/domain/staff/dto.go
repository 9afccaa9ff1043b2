package staff

type CreateRequest struct {
	UserID     *int64 `json:"user_id"`
	Name       string `json:"name" validate:"required"`
	Title      string `json:"title"`
	Department string `json:"department" validate:"required,oneof=sales design manufacturing operations"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
}

type UpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	Title      *string `json:"title"`
	Department *string `json:"department" validate:"omitempty,oneof=sales design manufacturing operations"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Phone      *string `json:"phone"`
	Active     *bool   `json:"active"`
}
