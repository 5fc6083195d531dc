// Package vlerror carries the one error vocabulary shared by every
// subsystem (§7 of the spec): a single Error type tagged with a short,
// externally-distinguishable Kind, the Go-idiomatic counterpart of the
// teacher's two-argument sdk.Revert(msg, symbol) call.
package vlerror

// Kind enumerates every distinct, externally-distinguishable error tag.
type Kind string

const (
	DecimalsError                Kind = "DecimalsError"
	InsufficientTokensInContract Kind = "InsufficientTokensInContract"
	InsufficientReleasableTokens Kind = "InsufficientReleasableTokens"
	InvalidSchedule              Kind = "InvalidSchedule"
	InvalidDuration              Kind = "InvalidDuration"
	InvalidAmount                Kind = "InvalidAmount"
	InvalidSlicePeriod           Kind = "InvalidSlicePeriod"
	InvalidStart                 Kind = "InvalidStart"
	DurationShorterThanCliff     Kind = "DurationShorterThanCliff"
	NotRevokable                 Kind = "NotRevokable"
	Unauthorized                 Kind = "Unauthorized"
	ScheduleWasRevoked           Kind = "ScheduleWasRevoked"
	NotSupported                 Kind = "NotSupported"
	InvalidAddress               Kind = "InvalidAddress"
	InvalidProof                 Kind = "InvalidProof"
	AlreadyClaimed               Kind = "AlreadyClaimed"
	Paused                       Kind = "Paused"
	ReentrantCall                Kind = "ReentrantCall"
	AdminTransferFailed          Kind = "AdminTransferFailed"
)

// Error is the single error type every precondition failure in the engine
// returns. Exactly one Kind names the first violated precondition; nothing
// wraps or aggregates multiple kinds, matching §7's "reverts with exactly
// one error kind."
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Msg
}

// New builds an *Error for the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Is lets errors.Is(err, vlerror.New(kind, "")) match on Kind alone,
// ignoring Msg, so callers and tests can assert on the kind without caring
// about wording.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
