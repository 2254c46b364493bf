package engine

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldvault/internal/client"
	"yieldvault/internal/flow"
	"yieldvault/internal/model"
	"yieldvault/internal/pipeline"
	"yieldvault/internal/store"
	"yieldvault/internal/transcript"
)

// fakeChain satisfies both the balance and account-existence boundaries.
type fakeChain struct {
	lamports uint64
	tokens   map[solana.PublicKey]uint64
	err      error
}

func (f *fakeChain) NativeBalanceLamports(context.Context, solana.PublicKey) (uint64, error) {
	return f.lamports, f.err
}

func (f *fakeChain) TokenBalanceBaseUnits(_ context.Context, _ solana.PublicKey, mint solana.PublicKey) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.tokens[mint], nil
}

func (f *fakeChain) AccountExists(context.Context, solana.PublicKey) (bool, error) {
	return true, f.err
}

// fakeSubmitter records what reaches the pipeline and returns a scripted
// outcome.
type fakeSubmitter struct {
	outcome      pipeline.Outcome
	instructions []solana.Instruction
	calls        int
}

func (f *fakeSubmitter) Execute(_ context.Context, instructions []solana.Instruction, _ solana.PrivateKey) pipeline.Outcome {
	f.calls++
	f.instructions = instructions
	return f.outcome
}

func confirmedOutcome() pipeline.Outcome {
	return pipeline.Outcome{Status: pipeline.StatusConfirmed, Signature: solana.Signature{7}}
}

// fundedChain gives the wallet gas plus both stablecoin balances.
func fundedChain() *fakeChain {
	return &fakeChain{
		lamports: 1_000_000_000, // 1 SOL
		tokens: map[solana.PublicKey]uint64{
			client.USDCMint: 10_000_000, // 10 USDC
			client.USDIMint: 4_000_000,  // 4 USDi
		},
	}
}

func newTestEngine(t *testing.T, chain *fakeChain, submit *fakeSubmitter) *Engine {
	t.Helper()
	dir := t.TempDir()
	st, err := store.NewFileStore(filepath.Join(dir, "wallet_data.json"), chain, zerolog.Nop())
	require.NoError(t, err)
	journal, err := transcript.NewStore(filepath.Join(dir, "chat_history.json"))
	require.NoError(t, err)
	return New(st, chain, submit, journal, zerolog.Nop())
}

func createWallet(t *testing.T, e *Engine, userID string) model.DepositResponse {
	t.Helper()
	resp, err := e.DepositAddress(context.Background(), userID)
	require.NoError(t, err)
	return resp
}

func TestDepositAddressCreatesWallet(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, &fakeChain{tokens: map[solana.PublicKey]uint64{}}, &fakeSubmitter{})

	resp, err := e.DepositAddress(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.NotEmpty(t, resp.Address)
	assert.NotEmpty(t, resp.QRCode)
	assert.Zero(t, resp.SOL)
	assert.Zero(t, resp.USDC)
	assert.Zero(t, resp.USDI)

	// second request reuses the wallet
	again, err := e.DepositAddress(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, again.Created)
	assert.Equal(t, resp.Address, again.Address)
}

func TestBalances(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	created := createWallet(t, e, "u1")

	resp, err := e.Balances(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, created.Address, resp.Address)
	assert.Equal(t, 1.0, resp.SOL)
	assert.Equal(t, 10.0, resp.USDC)
	assert.Equal(t, 4.0, resp.USDI)
}

func TestBalancesWalletNotFound(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	_, err := e.Balances(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}

func TestMintFlowConfirmed(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	begin, err := e.BeginMint(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_mint_amount", begin.Pending)
	assert.Equal(t, 10.0, begin.Available)

	resp, err := e.SubmitMintAmount(context.Background(), "u1", 5)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.NotEmpty(t, resp.Signature)
	assert.Equal(t, 1, submit.calls)

	// the submitted swap carries the encoded amount and minimum output
	require.NotEmpty(t, submit.instructions)
	last := submit.instructions[len(submit.instructions)-1]
	data, err := last.Data()
	require.NoError(t, err)
	require.Len(t, data, 41)
	assert.Equal(t, uint64(5_000_000), binary.LittleEndian.Uint64(data[8:16]))
	assert.Equal(t, uint64(4_945_000), binary.LittleEndian.Uint64(data[16:24]))

	assert.Equal(t, flow.None, e.Pending("u1").Kind)
}

func TestSubmitMintAmountWithoutFlow(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	_, err := e.SubmitMintAmount(context.Background(), "u1", 5)
	assert.ErrorIs(t, err, model.ErrNoPendingFlow)
	assert.Zero(t, submit.calls)
}

func TestSubmitMintAmountInsufficientBalance(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	_, err := e.BeginMint(context.Background(), "u1")
	require.NoError(t, err)

	_, err = e.SubmitMintAmount(context.Background(), "u1", 50)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.Zero(t, submit.calls, "nothing may reach the network")
	assert.Equal(t, flow.None, e.Pending("u1").Kind, "the attempt consumes the slot")
}

func TestSubmitMintAmountInsufficientGas(t *testing.T) {
	t.Parallel()

	chain := fundedChain()
	chain.lamports = 1_000_000 // 0.001 SOL, below the fee reserve
	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, chain, submit)
	createWallet(t, e, "u1")

	_, err := e.BeginMint(context.Background(), "u1")
	require.NoError(t, err)

	_, err = e.SubmitMintAmount(context.Background(), "u1", 5)
	assert.ErrorIs(t, err, model.ErrInsufficientGasReserve)
	assert.Zero(t, submit.calls)
}

func TestBeginMintRequiresWalletAndBalance(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, &fakeChain{lamports: 1_000_000_000, tokens: map[solana.PublicKey]uint64{}}, &fakeSubmitter{})

	_, err := e.BeginMint(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrWalletNotFound)

	createWallet(t, e, "u1")
	_, err = e.BeginMint(context.Background(), "u1")
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

func TestConvertFlowConfirmed(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	begin, err := e.BeginConvert(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_conversion_amount", begin.Pending)
	assert.Equal(t, 4.0, begin.Available)

	resp, err := e.SubmitConvertAmount(context.Background(), "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)

	// withdraw direction carries its own price limit
	last := submit.instructions[len(submit.instructions)-1]
	data, err := last.Data()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0000000100013B51), binary.LittleEndian.Uint64(data[24:32]))
}

func TestMintFlowTimeoutIsNotAnError(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: pipeline.Outcome{
		Status:    pipeline.StatusTimedOutLikelySucceeded,
		Signature: solana.Signature{9},
		Err:       model.ErrConfirmationTimeout,
	}}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	_, err := e.BeginMint(context.Background(), "u1")
	require.NoError(t, err)
	resp, err := e.SubmitMintAmount(context.Background(), "u1", 5)
	require.NoError(t, err, "the ambiguous outcome is a status, not an error")
	assert.Equal(t, "timeout_likely_succeeded", resp.Status)
}

func TestMintFlowFailure(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: pipeline.Outcome{
		Status: pipeline.StatusFailed,
		Err:    model.ErrTransactionFailed,
	}}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	_, err := e.BeginMint(context.Background(), "u1")
	require.NoError(t, err)
	_, err = e.SubmitMintAmount(context.Background(), "u1", 5)
	assert.ErrorIs(t, err, model.ErrTransactionFailed)
}

func TestWithdrawFlow(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	begin, err := e.BeginWithdraw(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_withdrawal_amount", begin.Pending)

	step, err := e.SubmitWithdrawAmount(context.Background(), "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_withdrawal_address", step.Pending)
	assert.Equal(t, 3.0, e.Pending("u1").Amount)

	resp, err := e.SubmitWithdrawAddress(context.Background(), "u1", solana.NewWallet().PublicKey().String())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 1, submit.calls)
	assert.Equal(t, flow.None, e.Pending("u1").Kind)
}

func TestWithdrawAmountInsufficientKeepsSlot(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	_, err := e.BeginWithdraw(context.Background(), "u1")
	require.NoError(t, err)

	_, err = e.SubmitWithdrawAmount(context.Background(), "u1", 50)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	// the user can retry with a smaller amount
	assert.Equal(t, flow.AwaitingWithdrawalAmount, e.Pending("u1").Kind)

	step, err := e.SubmitWithdrawAmount(context.Background(), "u1", 3)
	require.NoError(t, err)
	assert.Equal(t, "awaiting_withdrawal_address", step.Pending)
}

func TestWithdrawAddressInvalidKeepsSlot(t *testing.T) {
	t.Parallel()

	submit := &fakeSubmitter{outcome: confirmedOutcome()}
	e := newTestEngine(t, fundedChain(), submit)
	createWallet(t, e, "u1")

	_, err := e.BeginWithdraw(context.Background(), "u1")
	require.NoError(t, err)
	_, err = e.SubmitWithdrawAmount(context.Background(), "u1", 3)
	require.NoError(t, err)

	_, err = e.SubmitWithdrawAddress(context.Background(), "u1", "not-an-address")
	assert.ErrorIs(t, err, model.ErrInvalidAddress)
	assert.Equal(t, flow.AwaitingWithdrawalAddress, e.Pending("u1").Kind)
	assert.Zero(t, submit.calls)
}

func TestBackupAndRecoverRestoresSameWallet(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	created := createWallet(t, e, "u1")

	backup, err := e.BackupSeedPhrase("u1")
	require.NoError(t, err)
	require.NotEmpty(t, backup.SeedPhrase)

	// the export is one-time
	_, err = e.BackupSeedPhrase("u1")
	assert.ErrorIs(t, err, model.ErrSeedAlreadyBackedUp)

	// recovering from the exported phrase yields the same address
	e.BeginRecover("u1")
	recovered, err := e.SubmitRecoverPhrase(context.Background(), "u1", backup.SeedPhrase)
	require.NoError(t, err)
	assert.Equal(t, created.Address, recovered.Address)
}

func TestBackupWalletNotFound(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	_, err := e.BackupSeedPhrase("nobody")
	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}

func TestRecoverInvalidPhraseKeepsFlow(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	createWallet(t, e, "u1")

	e.BeginRecover("u1")
	_, err := e.SubmitRecoverPhrase(context.Background(), "u1", "twelve wrong words")
	assert.ErrorIs(t, err, model.ErrInvalidMnemonic)
	assert.Equal(t, flow.AwaitingSeedPhrase, e.Pending("u1").Kind)
}

func TestRecoverWithoutFlow(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	_, err := e.SubmitRecoverPhrase(context.Background(), "u1", "whatever")
	assert.ErrorIs(t, err, model.ErrNoPendingFlow)
}

func TestResetFlow(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	createWallet(t, e, "u1")

	// declining leaves the wallet alone
	e.BeginReset("u1")
	resp, err := e.ConfirmReset(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.False(t, resp.Reset)
	_, err = e.Balances(context.Background(), "u1")
	require.NoError(t, err)

	// confirming deletes it
	e.BeginReset("u1")
	resp, err = e.ConfirmReset(context.Background(), "u1", true)
	require.NoError(t, err)
	assert.True(t, resp.Reset)
	_, err = e.Balances(context.Background(), "u1")
	assert.ErrorIs(t, err, model.ErrWalletNotFound)
}

func TestConfirmResetWithoutFlow(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	_, err := e.ConfirmReset(context.Background(), "u1", true)
	assert.ErrorIs(t, err, model.ErrNoPendingFlow)
}

func TestBeginSupersedesPendingFlow(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, fundedChain(), &fakeSubmitter{})
	createWallet(t, e, "u1")

	_, err := e.BeginWithdraw(context.Background(), "u1")
	require.NoError(t, err)
	_, err = e.BeginMint(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, flow.AwaitingMintAmount, e.Pending("u1").Kind)

	// the superseded withdrawal can no longer advance
	_, err = e.SubmitWithdrawAmount(context.Background(), "u1", 1)
	assert.ErrorIs(t, err, model.ErrNoPendingFlow)
}

func TestNetworkFailureSurfaces(t *testing.T) {
	t.Parallel()

	chain := fundedChain()
	e := newTestEngine(t, chain, &fakeSubmitter{})
	createWallet(t, e, "u1")

	chain.err = assert.AnError
	_, err := e.Balances(context.Background(), "u1")
	assert.ErrorIs(t, err, model.ErrNetworkUnavailable)
}
