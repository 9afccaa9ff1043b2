package permissions

// Capability names consulted before destructive or restricted actions.
const (
	DeleteOrders  = "DELETE_ORDERS"
	DeleteLeads   = "DELETE_LEADS"
	ManageStaff   = "MANAGE_STAFF"
	ManageCamps   = "MANAGE_CAMPS"
	AssignOrders  = "ASSIGN_ORDERS"
	ViewAllOrders = "VIEW_ALL_ORDERS"
)

// Has reports whether an actor with the given role and explicit permission
// grants holds the required capability. Admins hold every capability.
func Has(role string, perms []string, required string) bool {
	if role == "admin" {
		return true
	}
	for _, p := range perms {
		if p == required {
			return true
		}
	}
	return false
}
