package swap

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/token"

	"yieldvault/internal/client"
	"yieldvault/internal/model"
)

// ParseAddress validates a destination address. It runs before any
// network call so a malformed address never costs an RPC round trip.
func ParseAddress(address string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, model.ErrInvalidAddress
	}
	return pk, nil
}

// BuildTransferInstructions assembles a USDC transfer out of the custodial
// wallet: a destination-account creation funded by the owner when the
// destination has no token account yet, then the value transfer. raw is
// the amount in base units.
func BuildTransferInstructions(ctx context.Context, checker AccountChecker, owner, destination solana.PublicKey, raw uint64) ([]solana.Instruction, error) {
	source, _, err := solana.FindAssociatedTokenAddress(owner, client.USDCMint)
	if err != nil {
		return nil, fmt.Errorf("failed to find source token account: %w", err)
	}
	destAccount, _, err := solana.FindAssociatedTokenAddress(destination, client.USDCMint)
	if err != nil {
		return nil, fmt.Errorf("failed to find destination token account: %w", err)
	}

	var instructions []solana.Instruction
	exists, err := checker.AccountExists(ctx, destAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to check destination token account: %w", err)
	}
	if !exists {
		instructions = append(instructions,
			associatedtokenaccount.NewCreateInstruction(owner, destination, client.USDCMint).Build())
	}

	instructions = append(instructions,
		token.NewTransferInstruction(raw, source, destAccount, owner, nil).Build())
	return instructions, nil
}
