package access

import "vestlock/internal/sdk"

const (
	pendingAdminKey = "pending_admin"
	handoverFromKey = "pending_admin_from"
)

// BeginHandover sets pending_admin to nominee and records incumbent as the
// admin being transferred away from, the first of the §4.C two-step admin
// handover. The caller's admin authority is checked by the entry point
// before this runs.
func (c *Controller) BeginHandover(incumbent, nominee sdk.Address) {
	c.state.Set(pendingAdminKey, nominee.String())
	c.state.Set(handoverFromKey, incumbent.String())
}

// CancelHandover clears pending_admin, revocable by the incumbent at any
// time before acceptance.
func (c *Controller) CancelHandover() {
	c.state.Delete(pendingAdminKey)
	c.state.Delete(handoverFromKey)
}

// PendingAdmin returns the current nominee, or the zero address if no
// handover is in progress.
func (c *Controller) PendingAdmin() sdk.Address {
	ptr := c.state.Get(pendingAdminKey)
	if ptr == nil {
		return sdk.ZeroAddress
	}
	return sdk.Address(*ptr)
}

// pendingFrom returns the incumbent recorded by BeginHandover, or the zero
// address if no handover is in progress.
func (c *Controller) pendingFrom() sdk.Address {
	ptr := c.state.Get(handoverFromKey)
	if ptr == nil {
		return sdk.ZeroAddress
	}
	return sdk.Address(*ptr)
}

// AcceptHandover completes the handover: only the current nominee may call
// this. §4.C describes acceptance as atomically *transferring* the admin
// role, so this both grants RoleAdmin to caller and revokes it from the
// incumbent BeginHandover recorded, leaving exactly one admin afterward
// rather than an additive second holder. A zero-delay timelock is
// explicitly acceptable, so no further waiting is enforced here.
func (c *Controller) AcceptHandover(caller sdk.Address) error {
	pending := c.PendingAdmin()
	if pending.IsZero() || pending != caller {
		return errNotNominee
	}
	incumbent := c.pendingFrom()
	c.Grant(RoleAdmin, caller)
	if !incumbent.IsZero() && incumbent != caller {
		c.Revoke(RoleAdmin, incumbent)
	}
	c.state.Delete(pendingAdminKey)
	c.state.Delete(handoverFromKey)
	return nil
}
