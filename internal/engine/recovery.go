package engine

import (
	"context"
	"time"

	"yieldvault/internal/flow"
	"yieldvault/internal/keys"
	"yieldvault/internal/model"
)

// BackupSeedPhrase exports the wallet's recovery phrase. This is a
// one-time event per wallet lifetime: the phrase is erased from storage
// the moment it is handed out.
func (e *Engine) BackupSeedPhrase(userID string) (model.BackupResponse, error) {
	unlock := e.lockUser(userID)
	defer unlock()

	rec, ok := e.store.GetWallet(userID)
	if !ok {
		return model.BackupResponse{}, model.ErrWalletNotFound
	}
	if rec.SeedPhraseBackedUp || rec.SeedPhrase == "" {
		return model.BackupResponse{}, model.ErrSeedAlreadyBackedUp
	}

	phrase := rec.SeedPhrase
	if err := e.store.MarkSeedPhraseBackedUp(userID); err != nil {
		return model.BackupResponse{}, err
	}

	e.record(userID, "engine", "seed phrase exported")
	return model.BackupResponse{SeedPhrase: phrase}, nil
}

// BeginRecover opens the recovery flow; the next phrase submission will
// replace the user's wallet wholesale.
func (e *Engine) BeginRecover(userID string) model.PromptResponse {
	e.record(userID, "user", "recovery flow started")
	e.flows.Begin(userID, flow.AwaitingSeedPhrase)
	return model.PromptResponse{Pending: flow.AwaitingSeedPhrase.String()}
}

// SubmitRecoverPhrase satisfies a pending recovery flow. An invalid
// phrase leaves the flow pending so the user can retry.
func (e *Engine) SubmitRecoverPhrase(ctx context.Context, userID, phrase string) (model.RecoverResponse, error) {
	if e.flows.Pending(userID).Kind != flow.AwaitingSeedPhrase {
		return model.RecoverResponse{}, model.ErrNoPendingFlow
	}

	pub, priv, err := keys.DeriveKeypair(phrase)
	if err != nil {
		return model.RecoverResponse{}, err
	}

	unlock := e.lockUser(userID)
	defer unlock()

	rec := model.WalletRecord{
		PublicKey: pub.String(),
		SecretKey: keys.EncodeSecret(priv),
		CreatedAt: time.Now().UnixMilli(),
		// The user evidently holds the phrase; the export is spent.
		SeedPhraseBackedUp: true,
	}
	if err := e.store.UpdateWallet(userID, rec); err != nil {
		return model.RecoverResponse{}, err
	}

	e.flows.Clear(userID)
	e.record(userID, "engine", "wallet recovered: "+rec.PublicKey)
	e.log.Info().Str("user_id", userID).Str("address", rec.PublicKey).Msg("wallet recovered")
	return model.RecoverResponse{Address: rec.PublicKey}, nil
}

// BeginReset opens the reset flow; nothing is deleted until the explicit
// confirmation arrives.
func (e *Engine) BeginReset(userID string) model.PromptResponse {
	e.record(userID, "user", "reset flow started")
	e.flows.Begin(userID, flow.AwaitingResetConfirmation)
	return model.PromptResponse{Pending: flow.AwaitingResetConfirmation.String()}
}

// ConfirmReset settles a pending reset. "yes" deletes the wallet
// irreversibly; "no" leaves it untouched. Either answer ends the flow.
func (e *Engine) ConfirmReset(ctx context.Context, userID string, confirmed bool) (model.ResetResponse, error) {
	if e.flows.Pending(userID).Kind != flow.AwaitingResetConfirmation {
		return model.ResetResponse{}, model.ErrNoPendingFlow
	}

	unlock := e.lockUser(userID)
	defer unlock()
	e.flows.Clear(userID)

	if !confirmed {
		e.record(userID, "user", "reset cancelled")
		return model.ResetResponse{Reset: false}, nil
	}

	if err := e.store.ResetWallet(userID); err != nil {
		return model.ResetResponse{}, err
	}
	e.record(userID, "engine", "wallet reset")
	e.log.Info().Str("user_id", userID).Msg("wallet reset")
	return model.ResetResponse{Reset: true}, nil
}
