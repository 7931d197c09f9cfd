package domain

import "slices"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleOperations Role = "operations"
	RoleAccounts   Role = "accounts"
	RoleTransport  Role = "transport"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOperations, RoleAccounts, RoleTransport:
		return true
	}
	return false
}

// Resource names one entity store (and the dashboard tab showing it).
type Resource string

const (
	ResourceLR        Resource = "lr"
	ResourceChallan   Resource = "challan"
	ResourceVehicles  Resource = "vehicles"
	ResourceDrivers   Resource = "drivers"
	ResourceRoutes    Resource = "routes"
	ResourceInvoice   Resource = "invoice"
	ResourceCustomers Resource = "customers"
	ResourcePayments  Resource = "payments"
)

// Resources in tab order.
var Resources = []Resource{
	ResourceLR,
	ResourceChallan,
	ResourceVehicles,
	ResourceDrivers,
	ResourceRoutes,
	ResourceInvoice,
	ResourceCustomers,
	ResourcePayments,
}

type Action string

const (
	ActionView          Action = "view"
	ActionCreate        Action = "create"
	ActionChangeStatus  Action = "change_status"
	ActionRecordPayment Action = "record_payment"
)

// AccessPolicy maps each resource to the roles allowed to use it.
// Mutating actions share the view grant; admin is always allowed.
type AccessPolicy struct {
	grants map[Resource][]Role
}

func NewAccessPolicy(grants map[Resource][]Role) AccessPolicy {
	g := make(map[Resource][]Role, len(grants))
	for res, roles := range grants {
		g[res] = slices.Clone(roles)
	}
	return AccessPolicy{grants: g}
}

// DefaultAccessPolicy is the dashboard's tab table. transport has no grants.
func DefaultAccessPolicy() AccessPolicy {
	return NewAccessPolicy(map[Resource][]Role{
		ResourceLR:        {RoleAdmin, RoleOperations, RoleAccounts},
		ResourceChallan:   {RoleAdmin, RoleOperations},
		ResourceVehicles:  {RoleAdmin, RoleOperations},
		ResourceDrivers:   {RoleAdmin, RoleOperations},
		ResourceRoutes:    {RoleAdmin, RoleOperations},
		ResourceInvoice:   {RoleAdmin, RoleAccounts},
		ResourceCustomers: {RoleAdmin, RoleAccounts},
		ResourcePayments:  {RoleAdmin, RoleAccounts},
	})
}

func (p AccessPolicy) IsAllowed(role Role, res Resource) bool {
	if role == RoleAdmin && slices.Contains(Resources, res) {
		return true
	}
	return slices.Contains(p.grants[res], role)
}

func (p AccessPolicy) Can(role Role, res Resource, action Action) bool {
	switch action {
	case ActionView, ActionCreate, ActionChangeStatus, ActionRecordPayment:
		return p.IsAllowed(role, res)
	}
	return false
}

// ResourcesFor lists the resources a role can open, in tab order.
func (p AccessPolicy) ResourcesFor(role Role) []Resource {
	out := []Resource{}
	for _, res := range Resources {
		if p.IsAllowed(role, res) {
			out = append(out, res)
		}
	}
	return out
}
