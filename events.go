package main

import (
	"fmt"

	"vestlock/internal/sdk"
)

// emitInit logs the one-time initialization line.
func emitInit(admin, underlyingToken string) {
	sdk.Log(fmt.Sprintf("init|admin:%s|token:%s", admin, underlyingToken))
}

// emitRootRotate logs the rootrotate|... tag from SPEC_FULL §10.1.
func emitRootRotate(oldRoot, newRoot string) {
	sdk.Log(fmt.Sprintf("rootrotate|old:%s|new:%s", oldRoot, newRoot))
}

// emitPause logs the pause|... tag.
func emitPause(v bool) {
	sdk.Log(fmt.Sprintf("pause|v:%t", v))
}

// emitRole logs the role|... tag.
func emitRole(grantee, role string, v bool) {
	sdk.Log(fmt.Sprintf("role|grantee:%s|role:%s|v:%t", grantee, role, v))
}

// emitHandover logs the handover|... tag.
func emitHandover(stage, from, to string) {
	sdk.Log(fmt.Sprintf("handover|stage:%s|from:%s|to:%s", stage, from, to))
}

// emitConfig logs a cost/receiver mutation, the purchasable variant's
// remaining Admin-gated config fields (§4.H).
func emitConfig(field, value string) {
	sdk.Log(fmt.Sprintf("config|field:%s|v:%s", field, value))
}
