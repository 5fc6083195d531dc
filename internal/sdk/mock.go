package sdk

import "math/big"

// MockState is an in-memory State used by tests and the local debug harness,
// adapted from the teacher's MockState: same Set/Get/Delete shape, but
// without the teacher's eager JSON-file persistence, since tests here never
// need to survive process restarts.
type MockState struct {
	db map[string]string
}

func NewMockState() *MockState {
	return &MockState{db: make(map[string]string)}
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
}

// MockToken is an in-memory TokenAdapter standing in for the external
// fungible-token ledger, the local equivalent of the teacher's dual
// RealSDK/MockSDK split.
type MockToken struct {
	Balances  map[Address]*big.Int
	decimals  uint8
	ShouldErr bool
	self      Address
}

func NewMockToken(decimals uint8) *MockToken {
	return &MockToken{Balances: make(map[Address]*big.Int), decimals: decimals}
}

func (t *MockToken) balanceOf(a Address) *big.Int {
	if b, ok := t.Balances[a]; ok {
		return b
	}
	return new(big.Int)
}

func (t *MockToken) BalanceOf(self Address) (*big.Int, error) {
	return new(big.Int).Set(t.balanceOf(self)), nil
}

// Transfer moves amount out of the contract's own holdings (the address
// last passed to Fund) to to, mirroring the real host's token.transfer,
// which always moves funds out of the calling contract's own vault.
func (t *MockToken) Transfer(to Address, amount *big.Int) error {
	if t.ShouldErr {
		return errTokenTransferFailed
	}
	t.Balances[t.self] = new(big.Int).Sub(t.balanceOf(t.self), amount)
	t.Balances[to] = new(big.Int).Add(t.balanceOf(to), amount)
	return nil
}

func (t *MockToken) Decimals() (uint8, error) {
	return t.decimals, nil
}

// Fund seeds the contract's own held balance for tests, standing in for an
// administrator having pre-loaded the adapter with principal.
func (t *MockToken) Fund(self Address, amount *big.Int) {
	t.self = self
	t.Balances[self] = new(big.Int).Add(t.balanceOf(self), amount)
}

// MockNative is an in-memory NativeSink for the purchasable-claim variant.
type MockNative struct {
	Received  map[Address]*big.Int
	ShouldErr bool
}

func NewMockNative() *MockNative {
	return &MockNative{Received: make(map[Address]*big.Int)}
}

func (n *MockNative) Transfer(to Address, amount *big.Int) error {
	if n.ShouldErr {
		return errNativeTransferFailed
	}
	if b, ok := n.Received[to]; ok {
		n.Received[to] = new(big.Int).Add(b, amount)
	} else {
		n.Received[to] = new(big.Int).Set(amount)
	}
	return nil
}

// MockEnv is a settable Env source for tests, mirroring the teacher's
// MockENV (fixed sender/timestamp unless overridden per call).
type MockEnv struct {
	env Env
}

func NewMockEnv(contractID string, sender Address, timestamp int64) *MockEnv {
	return &MockEnv{env: Env{ContractID: contractID, TxID: "0", Sender: sender, Timestamp: timestamp}}
}

func (m *MockEnv) Set(sender Address, timestamp int64, txID string) {
	m.env.Sender = sender
	m.env.Timestamp = timestamp
	m.env.TxID = txID
}

func (m *MockEnv) GetEnv() Env { return m.env }

// MockLog captures emitted log lines instead of writing to a host console,
// so tests can assert on the notification stream from §6.
type MockLog struct {
	Lines []string
}

func (l *MockLog) Log(s string) { l.Lines = append(l.Lines, s) }
