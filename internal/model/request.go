package model

// UserRequest identifies the acting user for flow-initiating endpoints.
type UserRequest struct {
	UserID string `json:"userId"`
}

// AmountRequest represents an amount submission for a pending flow.
type AmountRequest struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

// AddressRequest represents the withdrawal destination submission.
type AddressRequest struct {
	UserID  string `json:"userId"`
	Address string `json:"address"`
}

// PhraseRequest represents the seed phrase submission for recovery.
type PhraseRequest struct {
	UserID string `json:"userId"`
	Phrase string `json:"phrase"`
}

// ConfirmRequest represents the explicit yes/no for a wallet reset.
type ConfirmRequest struct {
	UserID    string `json:"userId"`
	Confirmed bool   `json:"confirmed"`
}
