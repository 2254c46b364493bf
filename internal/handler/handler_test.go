package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldvault/internal/client"
	"yieldvault/internal/engine"
	"yieldvault/internal/model"
	"yieldvault/internal/pipeline"
	"yieldvault/internal/store"
	"yieldvault/internal/transcript"
)

type fakeChain struct {
	lamports uint64
	tokens   map[solana.PublicKey]uint64
}

func (f *fakeChain) NativeBalanceLamports(context.Context, solana.PublicKey) (uint64, error) {
	return f.lamports, nil
}

func (f *fakeChain) TokenBalanceBaseUnits(_ context.Context, _ solana.PublicKey, mint solana.PublicKey) (uint64, error) {
	return f.tokens[mint], nil
}

func (f *fakeChain) AccountExists(context.Context, solana.PublicKey) (bool, error) {
	return true, nil
}

type fakeSubmitter struct{ outcome pipeline.Outcome }

func (f *fakeSubmitter) Execute(context.Context, []solana.Instruction, solana.PrivateKey) pipeline.Outcome {
	return f.outcome
}

func newTestHandlers(t *testing.T) (*WalletHandler, *FlowHandler) {
	t.Helper()
	dir := t.TempDir()
	chain := &fakeChain{
		lamports: 1_000_000_000,
		tokens: map[solana.PublicKey]uint64{
			client.USDCMint: 10_000_000,
		},
	}
	st, err := store.NewFileStore(filepath.Join(dir, "wallet_data.json"), chain, zerolog.Nop())
	require.NoError(t, err)
	journal, err := transcript.NewStore(filepath.Join(dir, "chat_history.json"))
	require.NoError(t, err)
	submit := &fakeSubmitter{outcome: pipeline.Outcome{Status: pipeline.StatusConfirmed, Signature: solana.Signature{7}}}
	eng := engine.New(st, chain, submit, journal, zerolog.Nop())
	return NewWalletHandler(eng), NewFlowHandler(eng, journal)
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestDepositCreatesWallet(t *testing.T) {
	t.Parallel()

	wallet, _ := newTestHandlers(t)
	rec := postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.DepositResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Created)
	assert.NotEmpty(t, resp.Address)
	assert.NotEmpty(t, resp.QRCode)
}

func TestDepositMethodNotAllowed(t *testing.T) {
	t.Parallel()

	wallet, _ := newTestHandlers(t)
	req := httptest.NewRequest(http.MethodGet, "/wallet/deposit", nil)
	rec := httptest.NewRecorder()
	wallet.Deposit(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDepositMissingUserID(t *testing.T) {
	t.Parallel()

	wallet, _ := newTestHandlers(t)
	rec := postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBalanceUnknownWallet(t *testing.T) {
	t.Parallel()

	wallet, _ := newTestHandlers(t)
	req := httptest.NewRequest(http.MethodGet, "/wallet/balance?userId=nobody", nil)
	rec := httptest.NewRecorder()
	wallet.Balance(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMintFlowOverHTTP(t *testing.T) {
	t.Parallel()

	wallet, flows := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})

	rec := postJSON(t, flows.MintBegin, "/flow/mint", model.UserRequest{UserID: "u1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var prompt model.PromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompt))
	assert.Equal(t, "awaiting_mint_amount", prompt.Pending)
	assert.Equal(t, 10.0, prompt.Available)

	rec = postJSON(t, flows.MintAmount, "/flow/mint/amount", model.AmountRequest{UserID: "u1", Amount: 5})
	require.Equal(t, http.StatusOK, rec.Code)

	var submit model.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &submit))
	assert.Equal(t, "confirmed", submit.Status)
	assert.NotEmpty(t, submit.Signature)
}

func TestMintAmountRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	_, flows := newTestHandlers(t)
	for _, amount := range []float64{0, -3} {
		rec := postJSON(t, flows.MintAmount, "/flow/mint/amount", model.AmountRequest{UserID: "u1", Amount: amount})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestMintAmountWithoutFlow(t *testing.T) {
	t.Parallel()

	wallet, flows := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})

	rec := postJSON(t, flows.MintAmount, "/flow/mint/amount", model.AmountRequest{UserID: "u1", Amount: 5})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMintAmountInsufficientBalance(t *testing.T) {
	t.Parallel()

	wallet, flows := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})
	postJSON(t, flows.MintBegin, "/flow/mint", model.UserRequest{UserID: "u1"})

	rec := postJSON(t, flows.MintAmount, "/flow/mint/amount", model.AmountRequest{UserID: "u1", Amount: 50})
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestRecoverPhraseSuggestsTypoFixes(t *testing.T) {
	t.Parallel()

	wallet, _ := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})
	postJSON(t, wallet.RecoverBegin, "/wallet/recover", model.UserRequest{UserID: "u1"})

	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abuot"
	rec := postJSON(t, wallet.RecoverPhrase, "/wallet/recover/phrase", model.PhraseRequest{UserID: "u1", Phrase: phrase})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
		Hints []struct {
			Position   int    `json:"position"`
			Word       string `json:"word"`
			Suggestion string `json:"suggestion"`
		} `json:"hints"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Hints, 1)
	assert.Equal(t, 12, body.Hints[0].Position)
	assert.Equal(t, "abuot", body.Hints[0].Word)
	assert.Equal(t, "about", body.Hints[0].Suggestion)
}

func TestBackupThenConflict(t *testing.T) {
	t.Parallel()

	wallet, _ := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})

	rec := postJSON(t, wallet.Backup, "/wallet/backup", model.UserRequest{UserID: "u1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, wallet.Backup, "/wallet/backup", model.UserRequest{UserID: "u1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHistoryEndpoint(t *testing.T) {
	t.Parallel()

	wallet, flows := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})

	req := httptest.NewRequest(http.MethodGet, "/flow/history?userId=u1", nil)
	rec := httptest.NewRecorder()
	flows.History(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var msgs []transcript.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msgs))
	assert.NotEmpty(t, msgs)
}

func TestPendingEndpoint(t *testing.T) {
	t.Parallel()

	wallet, flows := newTestHandlers(t)
	postJSON(t, wallet.Deposit, "/wallet/deposit", model.UserRequest{UserID: "u1"})
	postJSON(t, flows.WithdrawBegin, "/flow/withdraw", model.UserRequest{UserID: "u1"})

	req := httptest.NewRequest(http.MethodGet, "/flow/pending?userId=u1", nil)
	rec := httptest.NewRecorder()
	flows.Pending(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var prompt model.PromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prompt))
	assert.Equal(t, "awaiting_withdrawal_amount", prompt.Pending)
}
