package model

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string  `json:"address"`
	SOL     float64 `json:"sol"`
	USDC    float64 `json:"usdc"`
	USDI    float64 `json:"usdi"`
}

// DepositResponse represents response for POST /wallet/deposit
type DepositResponse struct {
	Address string  `json:"address"`
	QRCode  string  `json:"qrCode"` // base64 PNG
	Created bool    `json:"created"`
	SOL     float64 `json:"sol"`
	USDC    float64 `json:"usdc"`
	USDI    float64 `json:"usdi"`
}

// PromptResponse represents the reply to a flow-initiating request:
// the balance relevant to the pending question.
type PromptResponse struct {
	Pending   string  `json:"pending"`
	Available float64 `json:"available"`
}

// SubmitResponse represents the outcome of a swap or transfer attempt.
// Status is "confirmed", "timeout_likely_succeeded" or "failed".
type SubmitResponse struct {
	Status    string `json:"status"`
	Signature string `json:"signature,omitempty"`
}

// BackupResponse carries the one-time seed phrase export.
type BackupResponse struct {
	SeedPhrase string `json:"seedPhrase"`
}

// RecoverResponse represents response for POST /wallet/recover/phrase
type RecoverResponse struct {
	Address string `json:"address"`
}

// ResetResponse represents response for POST /wallet/reset/confirm
type ResetResponse struct {
	Reset bool `json:"reset"`
}
