package engine

import (
	"context"
	"fmt"

	"yieldvault/internal/common"
	"yieldvault/internal/flow"
	"yieldvault/internal/model"
	"yieldvault/internal/swap"
)

// BeginWithdraw opens the withdrawal flow. Only USDC leaves the custody
// wallet directly; USDi must be converted first.
func (e *Engine) BeginWithdraw(ctx context.Context, userID string) (model.PromptResponse, error) {
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

	e.record(userID, "user", "withdrawal flow started")
	e.flows.Begin(userID, flow.AwaitingWithdrawalAmount)
	return model.PromptResponse{Pending: flow.AwaitingWithdrawalAmount.String(), Available: usdc}, nil
}

// SubmitWithdrawAmount accepts the amount step. On insufficient balance
// the slot stays on the amount step so the user can retry.
func (e *Engine) SubmitWithdrawAmount(ctx context.Context, userID string, amount float64) (model.PromptResponse, error) {
	if e.flows.Pending(userID).Kind != flow.AwaitingWithdrawalAmount {
		return model.PromptResponse{}, model.ErrNoPendingFlow
	}

	usdc, err := e.store.CheckBalance(ctx, userID, model.AssetUSDC)
	if err != nil {
		return model.PromptResponse{}, err
	}
	if amount > usdc {
		return model.PromptResponse{}, model.ErrInsufficientBalance
	}

	e.record(userID, "user", fmt.Sprintf("withdrawal amount: %v", amount))
	e.flows.Advance(userID, flow.State{Kind: flow.AwaitingWithdrawalAddress, Amount: amount})
	return model.PromptResponse{Pending: flow.AwaitingWithdrawalAddress.String(), Available: amount}, nil
}

// SubmitWithdrawAddress accepts the destination and executes the
// transfer of the previously accepted amount. An invalid address leaves
// the slot unchanged; an executed attempt clears it either way.
func (e *Engine) SubmitWithdrawAddress(ctx context.Context, userID, address string) (model.SubmitResponse, error) {
	pending := e.flows.Pending(userID)
	if pending.Kind != flow.AwaitingWithdrawalAddress {
		return model.SubmitResponse{}, model.ErrNoPendingFlow
	}

	destination, err := swap.ParseAddress(address)
	if err != nil {
		return model.SubmitResponse{}, err
	}

	unlock := e.lockUser(userID)
	defer unlock()
	defer e.flows.Clear(userID)

	e.record(userID, "user", "withdrawal address: "+address)

	if err := e.ensureGasReserve(ctx, userID); err != nil {
		return model.SubmitResponse{}, err
	}

	signer, err := e.store.Keypair(userID)
	if err != nil {
		return model.SubmitResponse{}, err
	}

	instructions, err := swap.BuildTransferInstructions(ctx, e.checker, signer.PublicKey(), destination, common.ToBaseUnits(pending.Amount))
	if err != nil {
		return model.SubmitResponse{}, err
	}

	e.log.Info().
		Str("user_id", userID).
		Str("destination", destination.String()).
		Float64("amount", pending.Amount).
		Msg("submitting withdrawal")

	return e.outcomeResponse(userID, e.submit.Execute(ctx, instructions, signer))
}
