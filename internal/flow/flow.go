// Package flow tracks which multi-turn conversation step each user is in.
// The register is a single slot per user, not a stack: beginning a new
// flow supersedes whatever was pending.
package flow

import "sync"

// Kind identifies which single-slot input the next free-text message
// satisfies.
type Kind int

const (
	// None means no flow is pending.
	None Kind = iota
	// AwaitingMintAmount awaits the USDC amount to enter the vault.
	AwaitingMintAmount
	// AwaitingConversionAmount awaits the USDi amount to convert back.
	AwaitingConversionAmount
	// AwaitingWithdrawalAmount awaits the USDC amount to withdraw.
	AwaitingWithdrawalAmount
	// AwaitingWithdrawalAddress awaits the destination address; the
	// accepted amount rides along in the state.
	AwaitingWithdrawalAddress
	// AwaitingSeedPhrase awaits the 24-word recovery phrase.
	AwaitingSeedPhrase
	// AwaitingResetConfirmation awaits an explicit yes/no.
	AwaitingResetConfirmation
)

func (k Kind) String() string {
	switch k {
	case AwaitingMintAmount:
		return "awaiting_mint_amount"
	case AwaitingConversionAmount:
		return "awaiting_conversion_amount"
	case AwaitingWithdrawalAmount:
		return "awaiting_withdrawal_amount"
	case AwaitingWithdrawalAddress:
		return "awaiting_withdrawal_address"
	case AwaitingSeedPhrase:
		return "awaiting_seed_phrase"
	case AwaitingResetConfirmation:
		return "awaiting_reset_confirmation"
	default:
		return "none"
	}
}

// State is the pending slot for one user.
type State struct {
	Kind Kind
	// Amount is set only while Kind is AwaitingWithdrawalAddress.
	Amount float64
}

// transitions is the allowed in-flow successor table. Begin is not listed:
// starting any flow from any state is an explicit supersede transition.
var transitions = map[Kind]Kind{
	AwaitingWithdrawalAmount: AwaitingWithdrawalAddress,
}

// Tracker holds the per-user flow registers.
type Tracker struct {
	mu sync.Mutex
	m  map[string]State
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{m: make(map[string]State)}
}

// Pending returns the user's current slot.
func (t *Tracker) Pending(userID string) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.m[userID]
}

// Begin starts a flow, superseding any pending one.
func (t *Tracker) Begin(userID string, kind Kind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[userID] = State{Kind: kind}
}

// Advance moves a flow to its next step. It reports false when the
// pending slot does not allow that step, leaving the slot unchanged.
func (t *Tracker) Advance(userID string, to State) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	current := t.m[userID]
	if transitions[current.Kind] != to.Kind {
		return false
	}
	t.m[userID] = to
	return true
}

// Clear returns the slot to None.
func (t *Tracker) Clear(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.m, userID)
}
