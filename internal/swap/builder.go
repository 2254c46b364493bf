package swap

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
)

// AccountChecker is the pre-flight existence check the builders use to
// decide whether an associated token account must be created first.
type AccountChecker interface {
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
}

// BuildSwapInstructions assembles the instruction sequence for a swap:
// payer-funded creations for any missing associated token accounts,
// followed by the pool swap instruction. raw is the input amount in base
// units, already validated by the caller.
func BuildSwapInstructions(ctx context.Context, checker AccountChecker, payer solana.PublicKey, raw uint64, dir Direction) ([]solana.Instruction, error) {
	p := dir.params()

	inputAccount, _, err := solana.FindAssociatedTokenAddress(payer, p.inputMint)
	if err != nil {
		return nil, fmt.Errorf("failed to find input token account: %w", err)
	}
	outputAccount, _, err := solana.FindAssociatedTokenAddress(payer, p.outputMint)
	if err != nil {
		return nil, fmt.Errorf("failed to find output token account: %w", err)
	}

	var instructions []solana.Instruction
	for _, side := range []struct {
		account solana.PublicKey
		mint    solana.PublicKey
	}{
		{inputAccount, p.inputMint},
		{outputAccount, p.outputMint},
	} {
		exists, err := checker.AccountExists(ctx, side.account)
		if err != nil {
			return nil, fmt.Errorf("failed to check token account: %w", err)
		}
		if !exists {
			instructions = append(instructions,
				associatedtokenaccount.NewCreateInstruction(payer, payer, side.mint).Build())
		}
	}

	instructions = append(instructions, NewSwapInstruction(payer, inputAccount, outputAccount, raw, dir))
	return instructions, nil
}
