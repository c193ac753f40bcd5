package auth

// Capability names carried in the identity payload issued by the user
// service. Permission checks compare against these instead of role names.
const (
	CapManageOrders   = "orders:manage"
	CapManageProducts = "products:manage"
	CapManagePayments = "payments:manage"
)

// Identity is the resolved caller, as returned by the user service's
// get-user-info endpoint and propagated to every sibling service.
type Identity struct {
	ID           uint64   `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PhoneNumber  string   `json:"phone_number"`
	Role         Role     `json:"role"`
	Capabilities []string `json:"capabilities"`
}

type Role struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func (i *Identity) Can(capability string) bool {
	if i == nil {
		return false
	}
	for _, c := range i.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// CapabilitiesForRole maps a role name to its capability set. The set is
// computed once at token-resolution time so downstream services never
// compare role strings.
func CapabilitiesForRole(role string) []string {
	switch role {
	case "ADMIN":
		return []string{CapManageOrders, CapManageProducts, CapManagePayments}
	default:
		return nil
	}
}
