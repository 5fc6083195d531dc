package vesting

import (
	"encoding/json"
	"math/big"
	"strconv"

	"vestlock/internal/keccak"
	"vestlock/internal/sdk"
	"vestlock/internal/vlerror"
)

// record is the on-disk shape of a Schedule, JSON-encoded the way the
// teacher persists Project/Proposal/VoteRecord — only the amounts get the
// decimal-string treatment big.Int needs to round-trip exactly.
type record struct {
	Start         int64       `json:"start"`
	CliffAbsolute int64       `json:"cliff_absolute"`
	Duration      int64       `json:"duration"`
	SliceSeconds  uint8       `json:"slice_seconds"`
	AmountTotal   string      `json:"amount_total"`
	Released      string      `json:"released"`
	Status        Status      `json:"status"`
	Beneficiary   sdk.Address `json:"beneficiary"`
	Revokable     bool        `json:"revokable"`
}

// Store is the schedule-store layer from §3/§4.D: keyed schedule records,
// the per-beneficiary counter, and the committed-principal aggregates, all
// backed by the host's key/value State.
type Store struct {
	state sdk.State
}

func NewStore(state sdk.State) *Store {
	return &Store{state: state}
}

// Save persists s under its schedule id.
func (st *Store) Save(id keccak.Hash, s *Schedule) {
	r := record{
		Start:         s.Start,
		CliffAbsolute: s.CliffAbsolute,
		Duration:      s.Duration,
		SliceSeconds:  s.SliceSeconds,
		AmountTotal:   encodeAmount(s.AmountTotal),
		Released:      encodeAmount(s.Released),
		Status:        s.Status,
		Beneficiary:   s.Beneficiary,
		Revokable:     s.Revokable,
	}
	b, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	st.state.Set(scheduleKey(id), string(b))
}

// Load returns the schedule stored under id, or the zero sentinel
// (Exists() == false) if none exists.
func (st *Store) Load(id keccak.Hash) (*Schedule, error) {
	ptr := st.state.Get(scheduleKey(id))
	if ptr == nil || *ptr == "" {
		return &Schedule{}, nil
	}
	var r record
	if err := json.Unmarshal([]byte(*ptr), &r); err != nil {
		return nil, vlerror.New(vlerror.InvalidSchedule, "corrupt stored schedule "+id.String())
	}
	amountTotal, err := decodeAmount(r.AmountTotal)
	if err != nil {
		return nil, err
	}
	released, err := decodeAmount(r.Released)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		Start:         r.Start,
		CliffAbsolute: r.CliffAbsolute,
		Duration:      r.Duration,
		SliceSeconds:  r.SliceSeconds,
		AmountTotal:   amountTotal,
		Released:      released,
		Status:        r.Status,
		Beneficiary:   r.Beneficiary,
		Revokable:     r.Revokable,
	}, nil
}

// Counter returns the beneficiary's current schedule count.
func (st *Store) Counter(beneficiary string) uint64 {
	ptr := st.state.Get(counterKey(beneficiary))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func (st *Store) setCounter(beneficiary string, n uint64) {
	st.state.Set(counterKey(beneficiary), strconv.FormatUint(n, 10))
}

// NextIndex returns the index to use for a new schedule for beneficiary and
// advances the counter, matching §3's "index := counter[beneficiary];
// counter[beneficiary] += 1."
func (st *Store) NextIndex(beneficiary string) uint64 {
	idx := st.Counter(beneficiary)
	st.setCounter(beneficiary, idx+1)
	return idx
}

func (st *Store) readAmount(key string) *big.Int {
	ptr := st.state.Get(key)
	if ptr == nil || *ptr == "" {
		return zero()
	}
	x, ok := new(big.Int).SetString(*ptr, 10)
	if !ok {
		return zero()
	}
	return x
}

func (st *Store) writeAmount(key string, x *big.Int) {
	st.state.Set(key, x.String())
}

// CommittedTotal returns the aggregate committed principal, §3's
// committed_total, across all beneficiaries.
func (st *Store) CommittedTotal() *big.Int {
	return st.readAmount(committedTotalKey)
}

// AddCommittedTotal applies delta (positive or negative) to committed_total.
func (st *Store) AddCommittedTotal(delta *big.Int) {
	st.writeAmount(committedTotalKey, add(st.CommittedTotal(), delta))
}

// CommittedBy returns committed_by[beneficiary], the beneficiary's virtual
// balance.
func (st *Store) CommittedBy(beneficiary string) *big.Int {
	return st.readAmount(committedByKey(beneficiary))
}

// AddCommittedBy applies delta (positive or negative) to
// committed_by[beneficiary].
func (st *Store) AddCommittedBy(beneficiary string, delta *big.Int) {
	st.writeAmount(committedByKey(beneficiary), add(st.CommittedBy(beneficiary), delta))
}

// claimed:<fingerprint> holds "1" once a claim fingerprint has been
// consumed through the Merkle gate (§3's claim registry).
func claimedKey(fp keccak.Hash) string {
	return "claimed:" + fp.String()
}

// IsClaimed reports whether fp has already been installed via the Merkle
// gate.
func (st *Store) IsClaimed(fp keccak.Hash) bool {
	ptr := st.state.Get(claimedKey(fp))
	return ptr != nil && *ptr != ""
}

// MarkClaimed records fp as consumed.
func (st *Store) MarkClaimed(fp keccak.Hash) {
	st.state.Set(claimedKey(fp), "1")
}
