package api

import (
	"net/http"

	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"yieldvault/internal/engine"
	"yieldvault/internal/handler"
	"yieldvault/internal/transcript"
)

// SetupRouter sets up router with handlers
func SetupRouter(eng *engine.Engine, journal *transcript.Store, log zerolog.Logger) http.Handler {
	walletHandler := handler.NewWalletHandler(eng)
	flowHandler := handler.NewFlowHandler(eng, journal)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/deposit", walletHandler.Deposit)
	mux.HandleFunc("/wallet/balance", walletHandler.Balance)
	mux.HandleFunc("/wallet/backup", walletHandler.Backup)
	mux.HandleFunc("/wallet/recover", walletHandler.RecoverBegin)
	mux.HandleFunc("/wallet/recover/phrase", walletHandler.RecoverPhrase)
	mux.HandleFunc("/wallet/reset", walletHandler.ResetBegin)
	mux.HandleFunc("/wallet/reset/confirm", walletHandler.ResetConfirm)

	// Flow endpoints
	mux.HandleFunc("/flow/mint", flowHandler.MintBegin)
	mux.HandleFunc("/flow/mint/amount", flowHandler.MintAmount)
	mux.HandleFunc("/flow/convert", flowHandler.ConvertBegin)
	mux.HandleFunc("/flow/convert/amount", flowHandler.ConvertAmount)
	mux.HandleFunc("/flow/withdraw", flowHandler.WithdrawBegin)
	mux.HandleFunc("/flow/withdraw/amount", flowHandler.WithdrawAmount)
	mux.HandleFunc("/flow/withdraw/address", flowHandler.WithdrawAddress)
	mux.HandleFunc("/flow/pending", flowHandler.Pending)
	mux.HandleFunc("/flow/history", flowHandler.History)

	return RequestID(RequestLogger(log, Recovery(log, mux)))
}
