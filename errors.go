package main

import (
	"errors"

	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"
)

// fail converts a non-nil internal error into sdk.Revert at the
// go:wasmexport boundary — the only place a *vlerror.Error is translated
// into the host's two-argument revert call, per §10.2. A non-*vlerror.Error
// (a host or adapter failure, such as a failed outbound token or native
// transfer from internal/sdk) falls back to sdk.Abort so the transition
// still unwinds rather than returning a half-successful result.
func fail(err error) *string {
	var verr *vlerror.Error
	if errors.As(err, &verr) {
		sdk.Revert(verr.Error(), string(verr.Kind))
		return nil
	}
	sdk.Abort(err.Error())
	return nil
}
