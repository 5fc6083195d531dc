// Package access implements the §4.C safety envelope: roles, the
// two-step admin handover, the pause flag, and the reentrancy guard. It is
// grounded on the teacher's isContractOwner/requireInitialized style in
// contract/state_contract.go, generalised from a single owner field to a
// small role table since this spec names two distinct roles.
package access

import (
	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"
)

// Role is one of the two capabilities §4.C names. Admin implies every
// ScheduleCreator capability; it is checked separately rather than modelled
// as a third combined bit, matching the spec's "Admin (superset)" wording.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleScheduleCreator Role = "schedule_creator"
)

func roleKey(role Role, addr sdk.Address) string {
	return "role:" + string(role) + ":" + addr.String()
}

// Controller owns the role table, pause flag, and admin handover state, all
// backed by the host's key/value State — the same collaborator the vesting
// engine's Store uses, kept as a separate instance here because access
// control has its own key namespace and lifecycle independent of schedules.
type Controller struct {
	state sdk.State
}

func NewController(state sdk.State) *Controller {
	return &Controller{state: state}
}

// Grant gives addr role. Only ever called after the caller's authority has
// already been checked by the entry point.
func (c *Controller) Grant(role Role, addr sdk.Address) {
	c.state.Set(roleKey(role, addr), "1")
}

// Revoke removes role from addr.
func (c *Controller) Revoke(role Role, addr sdk.Address) {
	c.state.Delete(roleKey(role, addr))
}

// Has reports whether addr currently holds role.
func (c *Controller) Has(role Role, addr sdk.Address) bool {
	ptr := c.state.Get(roleKey(role, addr))
	return ptr != nil && *ptr != ""
}

// IsAdmin reports whether addr holds RoleAdmin.
func (c *Controller) IsAdmin(addr sdk.Address) bool {
	return c.Has(RoleAdmin, addr)
}

// CanCreate reports whether addr may call the direct-create operation:
// ScheduleCreator, or Admin by virtue of its superset authority.
func (c *Controller) CanCreate(addr sdk.Address) bool {
	return c.Has(RoleScheduleCreator, addr) || c.IsAdmin(addr)
}

// RequireAdmin reverts with Unauthorized unless addr holds RoleAdmin.
func (c *Controller) RequireAdmin(addr sdk.Address) error {
	if !c.IsAdmin(addr) {
		return vlerror.New(vlerror.Unauthorized, "caller is not admin")
	}
	return nil
}

// RequireCreator reverts with Unauthorized unless addr may create
// schedules directly.
func (c *Controller) RequireCreator(addr sdk.Address) error {
	if !c.CanCreate(addr) {
		return vlerror.New(vlerror.Unauthorized, "caller may not create schedules")
	}
	return nil
}
