package vesting

import "fmt"

// emitCreate logs the create|... tag from SPEC_FULL §10.1.
func (e *Engine) emitCreate(id, beneficiary string, index uint64, amount string) {
	e.log.Log(fmt.Sprintf("create|id:%s|b:%s|idx:%d|amt:%s", id, beneficiary, index, amount))
}

// emitRelease logs the release|... tag.
func (e *Engine) emitRelease(id, amount string) {
	e.log.Log(fmt.Sprintf("release|id:%s|amt:%s", id, amount))
}

// emitRevoke logs the revoke|... tag.
func (e *Engine) emitRevoke(id, unreleased string) {
	e.log.Log(fmt.Sprintf("revoke|id:%s|unreleased:%s", id, unreleased))
}

// emitClaim logs the claim|... tag.
func (e *Engine) emitClaim(id, beneficiary, amount, fingerprint string) {
	e.log.Log(fmt.Sprintf("claim|id:%s|b:%s|amt:%s|fp:%s", id, beneficiary, amount, fingerprint))
}

// emitVTransfer logs the vtransfer|... pseudo-transfer tag: from is the
// zero address on create (mint), to is the zero address on release/revoke
// (burn), matching §6's observable side-channels.
func (e *Engine) emitVTransfer(from, to, amount string) {
	e.log.Log(fmt.Sprintf("vtransfer|from:%s|to:%s|amt:%s", from, to, amount))
}

// emitWithdraw logs a withdraw line. §10.1 does not name a dedicated tag
// for withdraw since it moves no committed principal; this reuses the
// vtransfer shape with no counterpart zero-address convention so indexers
// can still see free-pool movement.
func (e *Engine) emitWithdraw(recipient, amount string) {
	e.log.Log(fmt.Sprintf("withdraw|to:%s|amt:%s", recipient, amount))
}

// emitPurchase logs the native-currency payment forwarded in the
// purchasable claim variant.
func (e *Engine) emitPurchase(id, beneficiary, price string) {
	e.log.Log(fmt.Sprintf("purchase|id:%s|b:%s|price:%s", id, beneficiary, price))
}
