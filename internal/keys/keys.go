// Package keys handles mnemonic generation, validation and the derivation
// of Solana keypairs from a recovery phrase.
package keys

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/gagliardetto/solana-go"
	bip39 "github.com/tyler-smith/go-bip39"

	"yieldvault/internal/model"
)

// mnemonicEntropyBits yields a 24-word phrase.
const mnemonicEntropyBits = 256

// derivationPath is the fixed hierarchical path all wallets derive along.
// There is no per-user path diversification.
var derivationPath = []uint32{44, 501, 0, 0}

// GenerateMnemonic creates a new 24-word BIP39 phrase from a
// cryptographically secure entropy source.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// ValidateMnemonic checks word count and checksum before any key material
// is touched.
func ValidateMnemonic(phrase string) error {
	normalized := NormalizeMnemonic(phrase)
	words := strings.Fields(normalized)
	if len(words) != 12 && len(words) != 24 {
		return model.ErrInvalidMnemonic
	}
	if !bip39.IsMnemonicValid(normalized) {
		return model.ErrInvalidMnemonic
	}
	return nil
}

// NormalizeMnemonic lowercases the phrase and collapses whitespace so that
// copy-pasted input validates the same as typed input.
func NormalizeMnemonic(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// DeriveKeypair derives the wallet keypair from a mnemonic: 64-byte BIP39
// seed, first 32 bytes as SLIP-0010 master input, hardened derivation along
// the fixed path, ed25519 keypair from the derived 32-byte key.
func DeriveKeypair(phrase string) (solana.PublicKey, solana.PrivateKey, error) {
	normalized := NormalizeMnemonic(phrase)
	if err := ValidateMnemonic(normalized); err != nil {
		return solana.PublicKey{}, nil, err
	}

	seed := bip39.NewSeed(normalized, "")
	key, chainCode := masterKey(seed[:32])
	for _, segment := range derivationPath {
		key, chainCode = childKey(key, chainCode, segment|hardenedOffset)
	}

	priv := solana.PrivateKey(ed25519.NewKeyFromSeed(key))
	return priv.PublicKey(), priv, nil
}

const hardenedOffset = 0x80000000

// masterKey implements the SLIP-0010 ed25519 master key step.
func masterKey(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// childKey implements the SLIP-0010 hardened child step. ed25519 supports
// hardened derivation only; the index must already carry the hardened bit.
func childKey(key, chainCode []byte, index uint32) ([]byte, []byte) {
	data := make([]byte, 0, 1+32+4)
	data = append(data, 0x00)
	data = append(data, key...)
	data = binary.BigEndian.AppendUint32(data, index)

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// EncodeSecret returns the storable string form of a private key.
func EncodeSecret(priv solana.PrivateKey) string {
	return base64.StdEncoding.EncodeToString(priv)
}

// KeypairFromStoredSecret reconstructs a keypair from its stored string
// form. The decoded key must be the full 64 bytes.
func KeypairFromStoredSecret(encoded string) (solana.PrivateKey, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, model.ErrInvalidWalletData
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, model.ErrInvalidWalletData
	}
	return solana.PrivateKey(raw), nil
}

// TypoSuggestion points at a word that is not in the BIP39 list and, when
// one is close enough, the likely intended word.
type TypoSuggestion struct {
	Index      int
	Word       string
	Suggestion string
}

// maxTypoDistance bounds how different a word may be to still get a hint.
const maxTypoDistance = 2

// SuggestCorrections scans an invalid phrase for words outside the BIP39
// list and suggests the nearest list word for each.
func SuggestCorrections(phrase string) []TypoSuggestion {
	wordList := bip39.GetWordList()
	inList := make(map[string]struct{}, len(wordList))
	for _, w := range wordList {
		inList[w] = struct{}{}
	}

	var out []TypoSuggestion
	for i, word := range strings.Fields(NormalizeMnemonic(phrase)) {
		if _, ok := inList[word]; ok {
			continue
		}
		best, bestDist := "", maxTypoDistance+1
		for _, candidate := range wordList {
			if d := levenshtein.ComputeDistance(word, candidate); d < bestDist {
				best, bestDist = candidate, d
			}
		}
		out = append(out, TypoSuggestion{Index: i, Word: word, Suggestion: best})
	}
	return out
}
