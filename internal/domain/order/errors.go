package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("unknown order status")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnknownAssignee  = errors.New("unknown assignee role")
)
