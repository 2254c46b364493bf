// Package engine exposes the flow entry operations of the custodial
// transaction engine: one operation per conversational flow, taking
// already-validated arguments and returning success payloads or typed
// failures. It never parses user text or renders UI.
package engine

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"

	"yieldvault/internal/flow"
	"yieldvault/internal/model"
	"yieldvault/internal/pipeline"
	"yieldvault/internal/store"
	"yieldvault/internal/swap"
	"yieldvault/internal/transcript"
)

// minGasSOL is the SOL reserve required before any spend path will build
// a transaction.
const minGasSOL = 0.01

// Submitter drives a built instruction sequence through the transaction
// pipeline.
type Submitter interface {
	Execute(ctx context.Context, instructions []solana.Instruction, signer solana.PrivateKey) pipeline.Outcome
}

// Engine wires the wallet catalog, instruction builders, transaction
// pipeline, flow registers and transcript journal together.
type Engine struct {
	store   *store.FileStore
	checker swap.AccountChecker
	submit  Submitter
	flows   *flow.Tracker
	journal *transcript.Store
	log     zerolog.Logger

	locks sync.Map // userID -> *sync.Mutex
}

// New creates the engine.
func New(st *store.FileStore, checker swap.AccountChecker, submit Submitter, journal *transcript.Store, log zerolog.Logger) *Engine {
	return &Engine{
		store:   st,
		checker: checker,
		submit:  submit,
		flows:   flow.NewTracker(),
		journal: journal,
		log:     log,
	}
}

// lockUser serializes all mutating operations for one user so two rapid
// requests cannot interleave catalog writes or double-spend a pending
// flow. Distinct users proceed in parallel.
func (e *Engine) lockUser(userID string) func() {
	v, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Pending exposes the user's current flow slot.
func (e *Engine) Pending(userID string) flow.State {
	return e.flows.Pending(userID)
}

// record journals a transcript line; journal failures are logged, never
// surfaced to the caller.
func (e *Engine) record(userID, from, content string) {
	if e.journal == nil {
		return
	}
	if err := e.journal.Append(userID, from, content); err != nil {
		e.log.Warn().Err(err).Str("user_id", userID).Msg("failed to journal message")
	}
}

// ensureGasReserve rejects spend attempts from wallets that cannot cover
// transaction fees.
func (e *Engine) ensureGasReserve(ctx context.Context, userID string) error {
	sol, err := e.store.CheckBalance(ctx, userID, model.AssetSOL)
	if err != nil {
		return err
	}
	if sol < minGasSOL {
		return model.ErrInsufficientGasReserve
	}
	return nil
}

// outcomeResponse maps a pipeline outcome to the API payload. A hard
// failure comes back as the error; the ambiguous timeout comes back as an
// explicit status the caller must relay, not as success or failure.
func (e *Engine) outcomeResponse(userID string, out pipeline.Outcome) (model.SubmitResponse, error) {
	switch out.Status {
	case pipeline.StatusConfirmed:
		e.record(userID, "engine", "transaction confirmed: "+out.Signature.String())
		return model.SubmitResponse{Status: out.Status.String(), Signature: out.Signature.String()}, nil
	case pipeline.StatusTimedOutLikelySucceeded:
		e.record(userID, "engine", "confirmation timed out: "+out.Signature.String())
		return model.SubmitResponse{Status: out.Status.String(), Signature: out.Signature.String()}, nil
	default:
		e.record(userID, "engine", "transaction failed")
		err := out.Err
		if err == nil {
			err = model.ErrTransactionFailed
		}
		return model.SubmitResponse{}, err
	}
}
