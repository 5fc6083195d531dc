package access

import "vestlock/internal/vlerror"

const pausedKey = "paused"

// SetPaused toggles the pause flag. Admin-only is checked by the entry
// point.
func (c *Controller) SetPaused(paused bool) {
	if paused {
		c.state.Set(pausedKey, "1")
	} else {
		c.state.Delete(pausedKey)
	}
}

// Paused reports the current pause flag.
func (c *Controller) Paused() bool {
	ptr := c.state.Get(pausedKey)
	return ptr != nil && *ptr != ""
}

// RequireNotPaused reverts with Paused if the contract is paused. Called
// only from the create-schedule paths (direct create, Merkle claim) per
// §4.C: "pausing must never strand already-committed principal," so
// release, revoke, and withdraw never call this.
func (c *Controller) RequireNotPaused() error {
	if c.Paused() {
		return vlerror.New(vlerror.Paused, "contract is paused")
	}
	return nil
}
