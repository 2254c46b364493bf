package model

// WalletRecord is the stored form of a custodial wallet.
// SecretKey holds the full 64-byte ed25519 private key (base64 in JSON).
// SeedPhrase is kept only until the user exports it once; after that the
// backed-up flag is set and the phrase is erased for good.
type WalletRecord struct {
	PublicKey          string `json:"publicKey"`
	SecretKey          string `json:"secretKey"`
	CreatedAt          int64  `json:"createdAt"` // epoch milliseconds
	SeedPhraseBackedUp bool   `json:"seedPhraseBackedUp"`
	SeedPhrase         string `json:"seedPhrase,omitempty"`
}

// Asset identifies one of the three balances a wallet carries.
type Asset int

const (
	// AssetSOL is the native gas token.
	AssetSOL Asset = iota
	// AssetUSDC is the deposit stablecoin.
	AssetUSDC
	// AssetUSDI is the yield-bearing stablecoin.
	AssetUSDI
)

func (a Asset) String() string {
	switch a {
	case AssetSOL:
		return "SOL"
	case AssetUSDC:
		return "USDC"
	case AssetUSDI:
		return "USDi"
	default:
		return "unknown"
	}
}
