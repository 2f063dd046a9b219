package zkp

import (
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// ProofBackend is the proof system behind the attestation flow. The rest of
// the package treats it as a black box: setup once, then prove and verify
// per record. Verify reports invalid or malformed proofs as an error, never
// as a panic.
type ProofBackend interface {
	Setup(cs constraint.ConstraintSystem) (groth16.ProvingKey, groth16.VerifyingKey, error)
	Prove(cs constraint.ConstraintSystem, pk groth16.ProvingKey, fullWitness witness.Witness) (groth16.Proof, error)
	Verify(proof groth16.Proof, vk groth16.VerifyingKey, publicWitness witness.Witness) error
}

// Groth16Backend implements ProofBackend on gnark's Groth16 over BN254.
//
// Setup draws its randomness from crypto/rand inside gnark. That is a
// single-party setup: a production deployment must replace this backend with
// one backed by a multi-party ceremony, and discard the toxic waste.
type Groth16Backend struct{}

func NewGroth16Backend() *Groth16Backend {
	return &Groth16Backend{}
}

// CompileRelation compiles the activity relation into an R1CS constraint
// system. An inconsistency in the relation definition surfaces here, at
// initialization, not per proof.
func CompileRelation() (constraint.ConstraintSystem, error) {
	var circuit ActivityCircuit
	cs, err := frontend.Compile(ElipticalCurveID.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("compile circuit: %w", err)
	}
	return cs, nil
}

func (b *Groth16Backend) Setup(cs constraint.ConstraintSystem) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, nil, fmt.Errorf("groth16 setup: %w", err)
	}
	return pk, vk, nil
}

func (b *Groth16Backend) Prove(cs constraint.ConstraintSystem, pk groth16.ProvingKey, fullWitness witness.Witness) (groth16.Proof, error) {
	proof, err := groth16.Prove(cs, pk, fullWitness)
	if err != nil {
		return nil, fmt.Errorf("groth16 prove: %w", err)
	}
	return proof, nil
}

func (b *Groth16Backend) Verify(proof groth16.Proof, vk groth16.VerifyingKey, publicWitness witness.Witness) error {
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}
	return nil
}
