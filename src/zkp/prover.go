package zkp

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Prover is the attestation engine: it turns one ActivityRecord into a
// zero-knowledge proof under a fixed key pair. Stateless across calls; a
// single Prover may be used from many goroutines.
type Prover struct {
	keys    *KeyPair
	backend ProofBackend
	logger  zerolog.Logger
}

func NewProver(keys *KeyPair, backend ProofBackend, logger zerolog.Logger) *Prover {
	return &Prover{keys: keys, backend: backend, logger: logger}
}

// GenerateProof builds the relation instance for the record and asks the
// backend for a proof. Every failure surfaces as ErrProofGeneration: the
// underlying cause may depend on the secret witness, so it is logged here
// and goes no further. Retrying with the same record is pointless — the
// outcome is deterministic given the same inputs.
func (p *Prover) GenerateProof(record ActivityRecord) (*Attestation, error) {
	id := uuid.NewString()

	// 1) Encode the record into a witness assignment
	assignment := newCircuitAssignment(record)
	fullWitness, err := frontend.NewWitness(assignment, ElipticalCurveID.ScalarField())
	if err != nil {
		p.logger.Warn().Str("attestation_id", id).Err(err).Msg("witness construction failed")
		return nil, fmt.Errorf("%w: %s", ErrProofGeneration, id)
	}

	// 2) Prove against the held proving key
	proof, err := p.backend.Prove(p.keys.CS, p.keys.PK, fullWitness)
	if err != nil {
		p.logger.Warn().Str("attestation_id", id).Err(err).Msg("proof generation failed")
		return nil, fmt.Errorf("%w: %s", ErrProofGeneration, id)
	}

	// 3) Keep only the public part of the witness alongside the proof
	publicWitness, err := fullWitness.Public()
	if err != nil {
		p.logger.Warn().Str("attestation_id", id).Err(err).Msg("public witness extraction failed")
		return nil, fmt.Errorf("%w: %s", ErrProofGeneration, id)
	}

	return &Attestation{
		ID:            id,
		Proof:         proof,
		PublicWitness: publicWitness,
	}, nil
}
