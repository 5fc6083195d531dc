package access

import "vestlock/internal/vlerror"

// errNotNominee is the §7 AdminTransferFailed tag: a handover nominee
// mismatch is its own externally-distinguishable failure, distinct from the
// general Unauthorized used everywhere else access control rejects a
// caller.
var errNotNominee = vlerror.New(vlerror.AdminTransferFailed, "caller is not the pending admin")
