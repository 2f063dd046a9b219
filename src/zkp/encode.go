package zkp

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	ElipticalCurveID = ecc.BN254
)

// FieldElementFromBytes interprets a 32-byte value as a big-endian unsigned
// integer and reduces it modulo the BN254 scalar field order. Inputs above
// the modulus are reduced silently, never rejected; the prover and verifier
// sides both rely on this exact rule, so it must not change between them.
func FieldElementFromBytes(b [32]byte) *big.Int {
	v := new(big.Int).SetBytes(b[:])
	return v.Mod(v, fr.Modulus())
}
