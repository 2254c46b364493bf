// Package pipeline drives a transaction through its full lifecycle:
// blockhash staging, assembly, signing, broadcast, and confirmation with
// a timeout fallback to a one-shot status check.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"

	"yieldvault/internal/model"
)

// ChainClient is the slice of the network boundary the pipeline depends on.
type ChainClient interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, uint64, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	SignatureStatus(ctx context.Context, sig solana.Signature) (*rpc.SignatureStatusesResult, error)
}

// Status tags the confirmation outcome. It is deliberately not a boolean:
// the network can confirm out-of-band after a client-side timeout.
type Status int

const (
	// StatusConfirmed means the network confirmed the transaction.
	StatusConfirmed Status = iota
	// StatusTimedOutLikelySucceeded means confirmation did not arrive in
	// time but the status check reported no error. The caller must report
	// this ambiguity rather than asserting success or failure.
	StatusTimedOutLikelySucceeded
	// StatusFailed means the transaction did not take effect.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusTimedOutLikelySucceeded:
		return "timeout_likely_succeeded"
	default:
		return "failed"
	}
}

// Outcome is the terminal result of one submission attempt. No automatic
// resubmission or fee-bump retry exists; every failure is surfaced.
type Outcome struct {
	Status    Status
	Signature solana.Signature
	Err       error
}

const (
	defaultConfirmTimeout = 30 * time.Second
	defaultPollInterval   = 2 * time.Second
)

// Pipeline submits and confirms transactions. Timeout and poll interval
// are fields so tests can shrink them.
type Pipeline struct {
	chain          ChainClient
	log            zerolog.Logger
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
}

// New creates a pipeline with the production timeout values.
func New(chain ChainClient, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		chain:          chain,
		log:            log,
		ConfirmTimeout: defaultConfirmTimeout,
		PollInterval:   defaultPollInterval,
	}
}

// Execute stages a blockhash, assembles the instructions into a single
// transaction, signs it with the payer's key, submits it, and waits for
// confirmation. The transaction carries exactly one signature; a
// partially signed transaction is never submitted.
func (p *Pipeline) Execute(ctx context.Context, instructions []solana.Instruction, signer solana.PrivateKey) Outcome {
	payer := signer.PublicKey()

	blockhash, lastValidHeight, err := p.chain.LatestBlockhash(ctx)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to stage blockhash: %w", err)}
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to assemble transaction: %w", err)}
	}

	signatures, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if payer.Equals(key) {
			return &signer
		}
		return nil
	})
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to sign transaction: %w", err)}
	}
	if len(signatures) != 1 {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("expected exactly one signature, got %d", len(signatures))}
	}

	sig, err := p.chain.SendTransaction(ctx, tx)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("%w: %v", model.ErrTransactionFailed, err)}
	}

	p.log.Info().
		Str("signature", sig.String()).
		Uint64("last_valid_height", lastValidHeight).
		Msg("transaction submitted")

	return p.confirm(ctx, sig)
}

// confirm races confirmation polling against the timeout. Whichever
// resolves first decides the branch; on timeout a single status check
// settles between failure and likely success.
func (p *Pipeline) confirm(ctx context.Context, sig solana.Signature) Outcome {
	waitCtx, cancel := context.WithTimeout(ctx, p.ConfirmTimeout)
	defer cancel()

	ticker := time.NewTicker(p.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-waitCtx.Done():
			return p.resolveAfterTimeout(ctx, sig)
		case <-ticker.C:
			status, err := p.chain.SignatureStatus(waitCtx, sig)
			if err != nil || status == nil {
				continue
			}
			if status.Err != nil {
				return Outcome{Status: StatusFailed, Signature: sig, Err: model.ErrTransactionFailed}
			}
			if confirmed(status.ConfirmationStatus) {
				p.log.Info().Str("signature", sig.String()).Msg("transaction confirmed")
				return Outcome{Status: StatusConfirmed, Signature: sig}
			}
		}
	}
}

// resolveAfterTimeout takes exactly one extra look at the signature
// status before settling the ambiguous outcome.
func (p *Pipeline) resolveAfterTimeout(ctx context.Context, sig solana.Signature) Outcome {
	status, err := p.chain.SignatureStatus(ctx, sig)
	if err == nil && status != nil {
		if status.Err != nil {
			return Outcome{Status: StatusFailed, Signature: sig, Err: model.ErrTransactionFailed}
		}
		if confirmed(status.ConfirmationStatus) {
			p.log.Info().Str("signature", sig.String()).Msg("transaction confirmed through status check")
			return Outcome{Status: StatusConfirmed, Signature: sig}
		}
	}

	p.log.Warn().Str("signature", sig.String()).Msg("confirmation timed out, status check inconclusive")
	return Outcome{Status: StatusTimedOutLikelySucceeded, Signature: sig, Err: model.ErrConfirmationTimeout}
}

func confirmed(status rpc.ConfirmationStatusType) bool {
	return status == rpc.ConfirmationStatusConfirmed || status == rpc.ConfirmationStatusFinalized
}
