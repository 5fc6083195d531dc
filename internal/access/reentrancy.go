package access

import "vestlock/internal/vlerror"

const reentrancyKey = "reentrancy_guard"

// Enter sets the reentrancy flag, reverting with ReentrantCall if it is
// already set. Every entry point that transfers underlying tokens or
// native currency out calls this first and Exit via defer, so the guard
// spans the entire call including the outbound transfer, per §4.C.
func (c *Controller) Enter() error {
	ptr := c.state.Get(reentrancyKey)
	if ptr != nil && *ptr != "" {
		return vlerror.New(vlerror.ReentrantCall, "reentrant call detected")
	}
	c.state.Set(reentrancyKey, "1")
	return nil
}

// Exit clears the reentrancy flag. Called via defer immediately after a
// successful Enter so the flag is cleared on every exit path, including
// early returns on precondition failure.
func (c *Controller) Exit() {
	c.state.Delete(reentrancyKey)
}
