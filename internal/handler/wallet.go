package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"yieldvault/internal/engine"
	"yieldvault/internal/keys"
	"yieldvault/internal/model"
)

// WalletHandler exposes the engine's flow entry operations over HTTP.
type WalletHandler struct {
	engine *engine.Engine
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(eng *engine.Engine) *WalletHandler {
	return &WalletHandler{engine: eng}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the engine's error taxonomy to HTTP statuses. The
// distinction matters to callers: a timeout means funds may have moved, a
// failure means they did not, an insufficiency means nothing was tried.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrWalletNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidAddress),
		errors.Is(err, model.ErrInvalidMnemonic),
		errors.Is(err, model.ErrInvalidWalletData),
		errors.Is(err, model.ErrNoPendingFlow):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrInsufficientBalance),
		errors.Is(err, model.ErrInsufficientGasReserve):
		status = http.StatusPaymentRequired
	case errors.Is(err, model.ErrSeedAlreadyBackedUp):
		status = http.StatusConflict
	case errors.Is(err, model.ErrNetworkUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, model.ErrTransactionFailed):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func requireUserID(w http.ResponseWriter, userID string) bool {
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "userId is required"})
		return false
	}
	return true
}

// requireAmount enforces the caller boundary contract: amounts reaching
// the engine are finite positive numbers.
func requireAmount(w http.ResponseWriter, amount float64) bool {
	if !(amount > 0) || amount > 1e15 {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "amount must be a positive number"})
		return false
	}
	return true
}

// Deposit handles POST /wallet/deposit
// @Summary      Get deposit address
// @Description  Returns the user's deposit address and balances, creating the wallet on first access
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.DepositResponse
// @Router       /wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.DepositAddress(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Balance handles GET /wallet/balance
// @Summary      Get wallet balances
// @Description  Returns SOL, USDC and USDi balances truncated to 5 decimals
// @Tags         wallet
// @Produce      json
// @Param        userId  query     string  true  "User identifier"
// @Success      200     {object}  model.BalanceResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("userId")
	if !requireUserID(w, userID) {
		return
	}
	resp, err := h.engine.Balances(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Backup handles POST /wallet/backup
// @Summary      Export seed phrase
// @Description  One-time export of the wallet recovery phrase
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.BackupResponse
// @Router       /wallet/backup [post]
func (h *WalletHandler) Backup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.BackupSeedPhrase(req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RecoverBegin handles POST /wallet/recover
// @Summary      Start wallet recovery
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.PromptResponse
// @Router       /wallet/recover [post]
func (h *WalletHandler) RecoverBegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	writeJSON(w, http.StatusOK, h.engine.BeginRecover(req.UserID))
}

// RecoverPhrase handles POST /wallet/recover/phrase
// @Summary      Recover wallet from seed phrase
// @Description  Replaces the user's wallet with one derived from the phrase
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PhraseRequest  true  "Seed phrase"
// @Success      200      {object}  model.RecoverResponse
// @Router       /wallet/recover/phrase [post]
func (h *WalletHandler) RecoverPhrase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.PhraseRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.SubmitRecoverPhrase(r.Context(), req.UserID, req.Phrase)
	if err != nil {
		if errors.Is(err, model.ErrInvalidMnemonic) {
			writeJSON(w, http.StatusBadRequest, invalidMnemonicBody(req.Phrase))
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// invalidMnemonicBody augments the error with closest-word hints for any
// words outside the BIP39 list.
func invalidMnemonicBody(phrase string) map[string]any {
	body := map[string]any{"error": model.ErrInvalidMnemonic.Error()}
	if typos := keys.SuggestCorrections(phrase); len(typos) > 0 {
		hints := make([]map[string]any, 0, len(typos))
		for _, t := range typos {
			hints = append(hints, map[string]any{
				"position":   t.Index + 1,
				"word":       t.Word,
				"suggestion": t.Suggestion,
			})
		}
		body["hints"] = hints
	}
	return body
}

// ResetBegin handles POST /wallet/reset
// @Summary      Start wallet reset
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.PromptResponse
// @Router       /wallet/reset [post]
func (h *WalletHandler) ResetBegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	writeJSON(w, http.StatusOK, h.engine.BeginReset(req.UserID))
}

// ResetConfirm handles POST /wallet/reset/confirm
// @Summary      Confirm or cancel wallet reset
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ConfirmRequest  true  "Confirmation"
// @Success      200      {object}  model.ResetResponse
// @Router       /wallet/reset/confirm [post]
func (h *WalletHandler) ResetConfirm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.ConfirmRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.ConfirmReset(r.Context(), req.UserID, req.Confirmed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
