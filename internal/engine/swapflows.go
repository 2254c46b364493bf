package engine

import (
	"context"
	"fmt"

	"yieldvault/internal/common"
	"yieldvault/internal/flow"
	"yieldvault/internal/model"
	"yieldvault/internal/swap"
)

// BeginMint opens the mint flow: the next amount submission will swap
// USDC into the yield vault.
func (e *Engine) BeginMint(ctx context.Context, userID string) (model.PromptResponse, error) {
	if _, ok := e.store.GetWallet(userID); !ok {
		return model.PromptResponse{}, model.ErrWalletNotFound
	}

	usdc, err := e.store.CheckBalance(ctx, userID, model.AssetUSDC)
	if err != nil {
		return model.PromptResponse{}, err
	}
	if usdc <= 0 {
		return model.PromptResponse{}, model.ErrInsufficientBalance
	}

	e.record(userID, "user", "mint flow started")
	e.flows.Begin(userID, flow.AwaitingMintAmount)
	return model.PromptResponse{Pending: flow.AwaitingMintAmount.String(), Available: usdc}, nil
}

// SubmitMintAmount satisfies a pending mint flow with the USDC amount to
// deposit into the vault. The attempt is terminal for the flow slot
// whether it succeeds or not.
func (e *Engine) SubmitMintAmount(ctx context.Context, userID string, amount float64) (model.SubmitResponse, error) {
	if e.flows.Pending(userID).Kind != flow.AwaitingMintAmount {
		return model.SubmitResponse{}, model.ErrNoPendingFlow
	}

	unlock := e.lockUser(userID)
	defer unlock()
	defer e.flows.Clear(userID)

	e.record(userID, "user", fmt.Sprintf("mint amount: %v", amount))
	return e.executeSwap(ctx, userID, amount, swap.DirectionDeposit, model.AssetUSDC)
}

// BeginConvert opens the conversion flow: the next amount submission will
// swap USDi back to USDC, exiting the vault.
func (e *Engine) BeginConvert(ctx context.Context, userID string) (model.PromptResponse, error) {
	if _, ok := e.store.GetWallet(userID); !ok {
		return model.PromptResponse{}, model.ErrWalletNotFound
	}

	usdi, err := e.store.CheckBalance(ctx, userID, model.AssetUSDI)
	if err != nil {
		return model.PromptResponse{}, err
	}
	if usdi <= 0 {
		return model.PromptResponse{}, model.ErrInsufficientBalance
	}

	e.record(userID, "user", "conversion flow started")
	e.flows.Begin(userID, flow.AwaitingConversionAmount)
	return model.PromptResponse{Pending: flow.AwaitingConversionAmount.String(), Available: usdi}, nil
}

// SubmitConvertAmount satisfies a pending conversion flow.
func (e *Engine) SubmitConvertAmount(ctx context.Context, userID string, amount float64) (model.SubmitResponse, error) {
	if e.flows.Pending(userID).Kind != flow.AwaitingConversionAmount {
		return model.SubmitResponse{}, model.ErrNoPendingFlow
	}

	unlock := e.lockUser(userID)
	defer unlock()
	defer e.flows.Clear(userID)

	e.record(userID, "user", fmt.Sprintf("conversion amount: %v", amount))
	return e.executeSwap(ctx, userID, amount, swap.DirectionWithdraw, model.AssetUSDI)
}

// executeSwap runs the common spend path for both directions: balance
// checks, instruction build, then the submission pipeline.
func (e *Engine) executeSwap(ctx context.Context, userID string, amount float64, dir swap.Direction, spendAsset model.Asset) (model.SubmitResponse, error) {
	if err := e.ensureGasReserve(ctx, userID); err != nil {
		return model.SubmitResponse{}, err
	}

	available, err := e.store.CheckBalance(ctx, userID, spendAsset)
	if err != nil {
		return model.SubmitResponse{}, err
	}
	if amount > available {
		return model.SubmitResponse{}, model.ErrInsufficientBalance
	}

	signer, err := e.store.Keypair(userID)
	if err != nil {
		return model.SubmitResponse{}, err
	}

	instructions, err := swap.BuildSwapInstructions(ctx, e.checker, signer.PublicKey(), common.ToBaseUnits(amount), dir)
	if err != nil {
		return model.SubmitResponse{}, err
	}

	e.log.Info().
		Str("user_id", userID).
		Stringer("direction", dir).
		Float64("amount", amount).
		Msg("submitting swap")

	return e.outcomeResponse(userID, e.submit.Execute(ctx, instructions, signer))
}
