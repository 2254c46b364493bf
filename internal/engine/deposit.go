package engine

import (
	"context"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"yieldvault/internal/model"
)

// DepositAddress returns the user's deposit address with current
// balances, creating the wallet lazily on first access.
func (e *Engine) DepositAddress(ctx context.Context, userID string) (model.DepositResponse, error) {
	unlock := e.lockUser(userID)
	defer unlock()

	e.record(userID, "user", "deposit address requested")

	created := false
	rec, ok := e.store.GetWallet(userID)
	if !ok {
		var err error
		rec, err = e.store.CreateWallet(userID)
		if err != nil {
			return model.DepositResponse{}, err
		}
		created = true
		e.log.Info().Str("user_id", userID).Str("address", rec.PublicKey).Msg("wallet created")
	}

	sol, usdc, usdi, err := e.balanceTriple(ctx, userID)
	if err != nil {
		return model.DepositResponse{}, err
	}

	qr, err := addressQRCode(rec.PublicKey)
	if err != nil {
		return model.DepositResponse{}, err
	}

	return model.DepositResponse{
		Address: rec.PublicKey,
		QRCode:  qr,
		Created: created,
		SOL:     sol,
		USDC:    usdc,
		USDI:    usdi,
	}, nil
}

// Balances reports the wallet's three balances.
func (e *Engine) Balances(ctx context.Context, userID string) (model.BalanceResponse, error) {
	rec, ok := e.store.GetWallet(userID)
	if !ok {
		return model.BalanceResponse{}, model.ErrWalletNotFound
	}

	sol, usdc, usdi, err := e.balanceTriple(ctx, userID)
	if err != nil {
		return model.BalanceResponse{}, err
	}

	return model.BalanceResponse{
		Address: rec.PublicKey,
		SOL:     sol,
		USDC:    usdc,
		USDI:    usdi,
	}, nil
}

func (e *Engine) balanceTriple(ctx context.Context, userID string) (sol, usdc, usdi float64, err error) {
	if sol, err = e.store.CheckBalance(ctx, userID, model.AssetSOL); err != nil {
		return 0, 0, 0, err
	}
	if usdc, err = e.store.CheckBalance(ctx, userID, model.AssetUSDC); err != nil {
		return 0, 0, 0, err
	}
	if usdi, err = e.store.CheckBalance(ctx, userID, model.AssetUSDI); err != nil {
		return 0, 0, 0, err
	}
	return sol, usdc, usdi, nil
}

// addressQRCode renders the deposit address as a base64 PNG.
func addressQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
