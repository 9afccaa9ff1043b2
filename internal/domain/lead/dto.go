package lead

// CreateLeadRequest represents admin/API lead entry
type CreateLeadRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	Source         string `json:"source"`
	Value          string `json:"value"`
	Notes          string `json:"notes"`
	OrganizationID *int64 `json:"organization_id"`
}

// UpdateLeadRequest updates contact and commercial fields; lifecycle fields
// move only through the dedicated claim/convert/status endpoints.
type UpdateLeadRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Source         *string `json:"source"`
	Value          *string `json:"value"`
	Notes          *string `json:"notes"`
	OrganizationID *int64  `json:"organization_id"`
}

// UpdateStatusRequest moves a lead between active pipeline statuses
type UpdateStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=new contacted qualified proposal negotiation"`
	Notes  string `json:"notes"`
}

// MarkLostRequest closes a lead outside conversion
type MarkLostRequest struct {
	Status Status `json:"status" validate:"required,oneof=lost closed"`
	Reason string `json:"reason"`
}

// ListFilter narrows the lead list
type ListFilter struct {
	Status     *Status
	SalesRepID *int64
	Unclaimed  bool
	Search     string
	Limit      int
	Offset     int
}

// ListResponse represents a paginated list
type ListResponse struct {
	Leads []Lead `json:"leads"`
	Total int64  `json:"total"`
}

// ConvertResponse returns the order produced by a conversion
type ConvertResponse struct {
	Lead           *Lead  `json:"lead"`
	OrderID        int64  `json:"order_id"`
	OrderReference string `json:"order_reference"`
}
