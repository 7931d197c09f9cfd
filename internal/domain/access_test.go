package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessPolicyAdminSeesEverything(t *testing.T) {
	p := DefaultAccessPolicy()
	for _, res := range Resources {
		assert.Truef(t, p.IsAllowed(RoleAdmin, res), "admin on %s", res)
		assert.Truef(t, p.Can(RoleAdmin, res, ActionChangeStatus), "admin change status on %s", res)
	}
}

func TestAccessPolicyTransportHasNoResources(t *testing.T) {
	p := DefaultAccessPolicy()
	assert.False(t, p.IsAllowed(RoleTransport, ResourceLR))
	assert.Empty(t, p.ResourcesFor(RoleTransport))
}

func TestAccessPolicyTable(t *testing.T) {
	p := DefaultAccessPolicy()

	assert.Equal(t,
		[]Resource{ResourceLR, ResourceChallan, ResourceVehicles, ResourceDrivers, ResourceRoutes},
		p.ResourcesFor(RoleOperations))
	assert.Equal(t,
		[]Resource{ResourceLR, ResourceInvoice, ResourceCustomers, ResourcePayments},
		p.ResourcesFor(RoleAccounts))

	assert.False(t, p.Can(RoleOperations, ResourceInvoice, ActionCreate))
	assert.True(t, p.Can(RoleAccounts, ResourcePayments, ActionRecordPayment))
	assert.False(t, p.Can(RoleAccounts, ResourceChallan, ActionView))
}

func TestAccessPolicyTotal(t *testing.T) {
	p := DefaultAccessPolicy()
	roles := []Role{RoleAdmin, RoleOperations, RoleAccounts, RoleTransport}
	for _, role := range roles {
		for _, res := range Resources {
			assert.NotPanics(t, func() { p.IsAllowed(role, res) })
		}
	}

	assert.False(t, p.IsAllowed(Role("guest"), ResourceLR))
	assert.False(t, p.IsAllowed(RoleAdmin, Resource("unknown")))
	assert.False(t, p.Can(RoleAdmin, ResourceLR, Action("delete")))
}
