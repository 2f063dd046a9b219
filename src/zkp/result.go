package zkp

import (
	"bytes"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/near/borsh-go"
)

// Attestation is the output of one proving run: the proof plus the public
// witness it commits to. It carries no identity information beyond what the
// public inputs expose. In a split deployment this bundle is the only thing
// that crosses from the prover to the verifier; the secret witness stays
// behind.
type Attestation struct {
	ID            string
	Proof         groth16.Proof
	PublicWitness witness.Witness
}

type attestationWire struct {
	ID            string `borsh:"id"`
	Proof         []byte `borsh:"proof"`
	PublicWitness []byte `borsh:"public_witness"`
}

// MarshalBinary encodes the attestation with borsh for handoff to calling
// infrastructure. How the bytes move between parties is up to the caller.
func (a *Attestation) MarshalBinary() ([]byte, error) {
	var proofBuf bytes.Buffer
	if _, err := a.Proof.WriteTo(&proofBuf); err != nil {
		return nil, err
	}

	var witnessBuf bytes.Buffer
	if _, err := a.PublicWitness.WriteTo(&witnessBuf); err != nil {
		return nil, err
	}

	return borsh.Serialize(attestationWire{
		ID:            a.ID,
		Proof:         proofBuf.Bytes(),
		PublicWitness: witnessBuf.Bytes(),
	})
}

// ReconstructAttestation rebuilds an Attestation from its borsh encoding.
func ReconstructAttestation(serialized []byte) (*Attestation, error) {
	var wire attestationWire
	if err := borsh.Deserialize(&wire, serialized); err != nil {
		return nil, err
	}

	proof := groth16.NewProof(ElipticalCurveID)
	if _, err := proof.ReadFrom(bytes.NewReader(wire.Proof)); err != nil {
		return nil, err
	}

	publicWitness, err := witness.New(ElipticalCurveID.ScalarField())
	if err != nil {
		return nil, err
	}
	if _, err := publicWitness.ReadFrom(bytes.NewReader(wire.PublicWitness)); err != nil {
		return nil, err
	}

	return &Attestation{
		ID:            wire.ID,
		Proof:         proof,
		PublicWitness: publicWitness,
	}, nil
}
