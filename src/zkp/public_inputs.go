package zkp

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"
)

// PublicInputVector is the ordered public statement of one attestation:
// [timestamp, activity digest], both as scalar field elements. The order
// matches the public field declarations of ActivityCircuit; a proof verified
// against a reordered vector is rejected.
type PublicInputVector [2]*big.Int

// NewPublicInputVector recomputes the public statement from a record using
// the same encoding rule the prover used. The verifier must always rebuild
// the vector itself rather than trust whatever the proving side hands over.
func NewPublicInputVector(record ActivityRecord) PublicInputVector {
	return PublicInputVector{
		new(big.Int).SetUint64(uint64(record.Timestamp.Unix())),
		FieldElementFromBytes(record.ActivityDigest),
	}
}

// Witness assembles the public-only witness consumed by proof verification.
func (v PublicInputVector) Witness() (witness.Witness, error) {
	assignment := &ActivityCircuit{
		Timestamp:      v[0],
		ActivityDigest: v[1],
	}

	w, err := frontend.NewWitness(assignment, ElipticalCurveID.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("public witness: %w", err)
	}
	return w, nil
}
