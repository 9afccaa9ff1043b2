package order

import "time"

type CreateOrderRequest struct {
	CustomerName   string     `json:"customer_name" validate:"required"`
	CustomerEmail  string     `json:"customer_email" validate:"required,email"`
	TotalAmount    float64    `json:"total_amount" validate:"gte=0"`
	Items          []LineItem `json:"items"`
	OrganizationID *int64     `json:"organization_id"`
	DueDate        *time.Time `json:"due_date"`
	PriorityLevel  int        `json:"priority_level" validate:"gte=0,lte=3"`
}

type UpdateOrderRequest struct {
	CustomerName   *string     `json:"customer_name" validate:"omitempty,min=1"`
	CustomerEmail  *string     `json:"customer_email" validate:"omitempty,email"`
	TotalAmount    *float64    `json:"total_amount" validate:"omitempty,gte=0"`
	Items          *[]LineItem `json:"items"`
	OrganizationID *int64      `json:"organization_id"`
	DueDate        *time.Time  `json:"due_date"`
	PriorityLevel  *int        `json:"priority_level" validate:"omitempty,gte=0,lte=3"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=pending processing paid shipped delivered cancelled refunded"`
}

// AssignRequest assigns a team member to the order. Role names the slot.
type AssignRequest struct {
	Role   string `json:"role" validate:"required,oneof=designer sales_rep manufacturer"`
	UserID int64  `json:"user_id" validate:"required"`
}

type ListFilter struct {
	Status         *Status
	OrganizationID *int64
	AssignedTo     *int64
	Search         string
	Limit          int
	Offset         int
}

type ListResponse struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
}
