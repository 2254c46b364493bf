package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "yieldvault/docs"
	"yieldvault/internal/api"
	"yieldvault/internal/client"
	"yieldvault/internal/config"
	"yieldvault/internal/engine"
	"yieldvault/internal/pipeline"
	"yieldvault/internal/store"
	"yieldvault/internal/transcript"
	"yieldvault/pkg/logger"
)

// @title           Yield Vault Engine API
// @version         1.0
// @description     Custodial stablecoin transaction engine for a conversational agent
// @BasePath        /
func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	log.Info().Str("port", cfg.Port).Str("rpc_url", cfg.SolanaRPCURL).Msg("starting yield vault engine")

	chain := client.NewSolanaClient(cfg.SolanaRPCURL)

	wallets, err := store.NewFileStore(cfg.WalletDataFile, chain, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.WalletDataFile).Msg("failed to open wallet catalog")
	}

	journal, err := transcript.NewStore(cfg.ChatHistoryFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.ChatHistoryFile).Msg("failed to open transcript journal")
	}

	submit := pipeline.New(chain, log)
	eng := engine.New(wallets, chain, submit, journal, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.SetupRouter(eng, journal, log),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
