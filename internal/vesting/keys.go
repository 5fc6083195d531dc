package vesting

import "vestlock/internal/keccak"

// Storage key prefixes, string-tagged the way the teacher's byte-prefixed
// keys.go partitions projects/proposals/members — string prefixes are used
// here instead of single bytes purely because this engine's key space is
// far smaller (no per-project fan-out), so readability wins over the extra
// byte of compactness.
const (
	prefixSchedule    = "sch:"
	prefixCounter     = "ctr:"
	prefixCommittedBy = "cby:"
	committedTotalKey = "agg:total"
)

func scheduleKey(id keccak.Hash) string {
	return prefixSchedule + id.String()
}

func counterKey(beneficiary string) string {
	return prefixCounter + beneficiary
}

func committedByKey(beneficiary string) string {
	return prefixCommittedBy + beneficiary
}
