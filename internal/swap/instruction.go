// Package swap builds the raw instructions for pool swaps and stablecoin
// transfers: the byte-exact instruction payload, the direction-sensitive
// account list, and the associated-account creations that must precede
// them in the same transaction.
package swap

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"yieldvault/internal/client"
)

// swapDiscriminator identifies the pool program's swap instruction.
var swapDiscriminator = [8]byte{0x2b, 0x04, 0xed, 0x0b, 0x1a, 0xc9, 0x1e, 0x62}

// swapDataLen is the fixed size of the swap instruction payload.
const swapDataLen = 41

// MinimumOut computes the minimum acceptable output for a raw input
// amount: floor(raw * 0.989), a fixed 1.1% slippage tolerance. Integer
// arithmetic keeps it exact for any amount below 2^63 base units.
func MinimumOut(raw uint64) uint64 {
	return raw/1000*989 + raw%1000*989/1000
}

// encodeSwapData packs the 41-byte swap payload:
//
//	[0:8]   instruction discriminator
//	[8:16]  input amount, unsigned little-endian base units
//	[16:24] minimum output amount, little-endian
//	[24:32] low 64 bits of the 128-bit sqrt-price limit, little-endian
//	[32:40] high 64 bits of the same limit, little-endian
//	[40]    direction byte, always 1
func encodeSwapData(raw uint64, dir Direction) []byte {
	p := dir.params()

	data := make([]byte, swapDataLen)
	copy(data[0:8], swapDiscriminator[:])
	binary.LittleEndian.PutUint64(data[8:16], raw)
	binary.LittleEndian.PutUint64(data[16:24], MinimumOut(raw))
	binary.LittleEndian.PutUint64(data[24:32], p.priceLimitLo)
	binary.LittleEndian.PutUint64(data[32:40], p.priceLimitHi)
	data[40] = 1
	return data
}

// NewSwapInstruction builds the pool swap instruction for the payer's
// token accounts. inputAccount and outputAccount must match the
// direction's input and output mints.
func NewSwapInstruction(payer, inputAccount, outputAccount solana.PublicKey, raw uint64, dir Direction) solana.Instruction {
	p := dir.params()

	accounts := solana.AccountMetaSlice{
		solana.Meta(payer).WRITE().SIGNER(),
		solana.Meta(client.AMMConfig),
		solana.Meta(client.PoolState).WRITE(),
		solana.Meta(inputAccount).WRITE(),
		solana.Meta(outputAccount).WRITE(),
		solana.Meta(p.inputVault).WRITE(),
		solana.Meta(p.outputVault).WRITE(),
		solana.Meta(client.ObservationState).WRITE(),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(client.Token2022ProgramID),
		solana.Meta(client.MemoProgramID),
		solana.Meta(p.inputMint).WRITE(),
		solana.Meta(p.outputMint).WRITE(),
		solana.Meta(client.TickArrayA).WRITE(),
		solana.Meta(client.TickArrayB).WRITE(),
		solana.Meta(p.edgeTick).WRITE(),
	}

	return solana.NewInstruction(client.CLMMProgramID, accounts, encodeSwapData(raw, dir))
}
