package handler

import (
	"net/http"
	"strconv"

	"yieldvault/internal/engine"
	"yieldvault/internal/model"
	"yieldvault/internal/transcript"
)

// FlowHandler exposes the multi-step transaction flows over HTTP.
type FlowHandler struct {
	engine  *engine.Engine
	journal *transcript.Store
}

// NewFlowHandler creates a new FlowHandler.
func NewFlowHandler(eng *engine.Engine, journal *transcript.Store) *FlowHandler {
	return &FlowHandler{engine: eng, journal: journal}
}

// MintBegin handles POST /flow/mint
// @Summary      Start a mint flow
// @Description  Opens a flow that will swap USDC into the vault token on the next amount submission
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.PromptResponse
// @Router       /flow/mint [post]
func (h *FlowHandler) MintBegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.BeginMint(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// MintAmount handles POST /flow/mint/amount
// @Summary      Submit mint amount
// @Description  Executes the USDC to vault-token swap for a pending mint flow
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Amount"
// @Success      200      {object}  model.SubmitResponse
// @Router       /flow/mint/amount [post]
func (h *FlowHandler) MintAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.AmountRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) || !requireAmount(w, req.Amount) {
		return
	}
	resp, err := h.engine.SubmitMintAmount(r.Context(), req.UserID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ConvertBegin handles POST /flow/convert
// @Summary      Start a conversion flow
// @Description  Opens a flow that will swap the vault token back to USDC on the next amount submission
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.PromptResponse
// @Router       /flow/convert [post]
func (h *FlowHandler) ConvertBegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.BeginConvert(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ConvertAmount handles POST /flow/convert/amount
// @Summary      Submit conversion amount
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Amount"
// @Success      200      {object}  model.SubmitResponse
// @Router       /flow/convert/amount [post]
func (h *FlowHandler) ConvertAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.AmountRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) || !requireAmount(w, req.Amount) {
		return
	}
	resp, err := h.engine.SubmitConvertAmount(r.Context(), req.UserID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// WithdrawBegin handles POST /flow/withdraw
// @Summary      Start a withdrawal flow
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.UserRequest  true  "User"
// @Success      200      {object}  model.PromptResponse
// @Router       /flow/withdraw [post]
func (h *FlowHandler) WithdrawBegin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.UserRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.BeginWithdraw(r.Context(), req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// WithdrawAmount handles POST /flow/withdraw/amount
// @Summary      Submit withdrawal amount
// @Description  Advances a pending withdrawal flow to the address step
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.AmountRequest  true  "Amount"
// @Success      200      {object}  model.PromptResponse
// @Router       /flow/withdraw/amount [post]
func (h *FlowHandler) WithdrawAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.AmountRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) || !requireAmount(w, req.Amount) {
		return
	}
	resp, err := h.engine.SubmitWithdrawAmount(r.Context(), req.UserID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// WithdrawAddress handles POST /flow/withdraw/address
// @Summary      Submit withdrawal destination
// @Description  Executes the USDC transfer for a pending withdrawal flow
// @Tags         flow
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Destination"
// @Success      200      {object}  model.SubmitResponse
// @Router       /flow/withdraw/address [post]
func (h *FlowHandler) WithdrawAddress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}
	var req model.AddressRequest
	if !decodeBody(w, r, &req) || !requireUserID(w, req.UserID) {
		return
	}
	resp, err := h.engine.SubmitWithdrawAddress(r.Context(), req.UserID, req.Address)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Pending handles GET /flow/pending
// @Summary      Get pending flow state
// @Tags         flow
// @Produce      json
// @Param        userId  query     string  true  "User identifier"
// @Success      200     {object}  model.PromptResponse
// @Router       /flow/pending [get]
func (h *FlowHandler) Pending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("userId")
	if !requireUserID(w, userID) {
		return
	}
	state := h.engine.Pending(userID)
	writeJSON(w, http.StatusOK, model.PromptResponse{Pending: state.Kind.String(), Available: state.Amount})
}

// History handles GET /flow/history
// @Summary      Get recent conversation transcript
// @Tags         flow
// @Produce      json
// @Param        userId  query     string  true   "User identifier"
// @Param        limit   query     int     false  "Maximum messages"
// @Success      200     {array}   transcript.Message
// @Router       /flow/history [get]
func (h *FlowHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	userID := r.URL.Query().Get("userId")
	if !requireUserID(w, userID) {
		return
	}
	limit := transcript.MaxMessages
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.journal.History(userID, limit))
}
