package zkp

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// ComputeCommitment derives the user commitment bound by the circuit:
//
//	commitment = MiMC(activityDigest, userSecret)
//
// computed over the field-element encodings of both values. This is the
// native-side twin of ActivityCircuit.Define: the gnark-crypto MiMC used here
// and the gnark std/hash/mimc gadget used in-circuit share parameters, so the
// value produced here is exactly the one the relation accepts. Any change to
// the write order or the preprocessing breaks every proof.
func ComputeCommitment(activityDigest, userSecret [32]byte) [32]byte {
	h := mimc.NewMiMC()

	var fe fr.Element
	fe.SetBigInt(FieldElementFromBytes(activityDigest))
	h.Write(fe.Marshal())

	fe.SetBigInt(FieldElementFromBytes(userSecret))
	h.Write(fe.Marshal())

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
