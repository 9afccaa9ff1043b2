package camp

import "time"

type CreateCampRequest struct {
	Name      string    `json:"name" validate:"required"`
	Location  string    `json:"location"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Capacity  int       `json:"capacity" validate:"gte=0"`
	Notes     string    `json:"notes"`
}

type UpdateCampRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1"`
	Location  *string    `json:"location"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Capacity  *int       `json:"capacity" validate:"omitempty,gte=0"`
	Notes     *string    `json:"notes"`
}

type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Size  int    `json:"size" validate:"omitempty,gte=1"`
	Notes string `json:"notes"`
}

// CampWithCounts is the list view: camp plus occupancy.
type CampWithCounts struct {
	Camp
	Registered int `json:"registered"`
}
