package order

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Status represents order fulfilment status. Per product decision the status
// graph is intentionally open: any declared value may replace any other.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusPaid       Status = "paid"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// IsValidStatus reports whether s is one of the declared enum values.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusPaid, StatusShipped,
		StatusDelivered, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// LineItem is one apparel line on an order. Sizes maps size label to
// quantity, e.g. {"M": 10, "L": 4}.
type LineItem struct {
	Name      string         `json:"name"`
	SKU       string         `json:"sku,omitempty"`
	Sizes     map[string]int `json:"sizes,omitempty"`
	UnitPrice float64        `json:"unit_price"`
}

// Order is a confirmed piece of business, created directly or from a
// converted lead. Reference is the human-facing id; ID is internal.
type Order struct {
	ID        int64  `gorm:"column:id;primaryKey" json:"id"`
	Reference string `gorm:"column:reference;uniqueIndex" json:"reference"`

	CustomerName  string  `gorm:"column:customer_name" json:"customer_name"`
	CustomerEmail string  `gorm:"column:customer_email" json:"customer_email"`
	TotalAmount   float64 `gorm:"column:total_amount" json:"total_amount"`
	Status        Status  `gorm:"column:status;default:'pending'" json:"status"`

	// Items holds the serialized line items; parse via ParseItems.
	Items datatypes.JSON `gorm:"column:items" json:"items,omitempty"`

	AssignedDesignerID     *int64 `gorm:"column:assigned_designer_id" json:"assigned_designer_id,omitempty"`
	AssignedSalesRepID     *int64 `gorm:"column:assigned_sales_rep_id" json:"assigned_sales_rep_id,omitempty"`
	AssignedManufacturerID *int64 `gorm:"column:assigned_manufacturer_id" json:"assigned_manufacturer_id,omitempty"`

	OrganizationID *int64     `gorm:"column:organization_id" json:"organization_id,omitempty"`
	DueDate        *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	PriorityLevel  int        `gorm:"column:priority_level;default:0" json:"priority_level"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// ParseItems decodes the stored line-item blob, failing fast on shape
// mismatches instead of passing untyped data along.
func (o *Order) ParseItems() ([]LineItem, error) {
	if len(o.Items) == 0 {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(o.Items, &items); err != nil {
		return nil, fmt.Errorf("order %d: malformed items blob: %w", o.ID, err)
	}
	return items, nil
}

// SetItems serializes line items into the stored blob.
func (o *Order) SetItems(items []LineItem) error {
	if items == nil {
		o.Items = nil
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = datatypes.JSON(raw)
	return nil
}
