package zkp

import (
	"time"

	"github.com/rs/zerolog"
)

// ActivityVerifier combines the freshness policy, the attestation engine and
// proof verification into a single accept/reject decision. The key pair is
// generated once at construction and never mutated afterwards; everything
// else is stateless per call, so one verifier serves concurrent requests.
//
// Prove and verify run in the same process here. A real two-party deployment
// splits them, with only the Attestation bundle and the recomputed public
// inputs crossing the boundary.
type ActivityVerifier struct {
	window  time.Duration
	keys    *KeyPair
	prover  *Prover
	backend ProofBackend
	logger  zerolog.Logger
}

// NewActivityVerifier runs the one-time setup and returns an operational
// verifier. A setup failure is fatal: no verifier exists without a key pair.
func NewActivityVerifier(window time.Duration, logger zerolog.Logger) (*ActivityVerifier, error) {
	return NewActivityVerifierWithBackend(window, NewGroth16Backend(), logger)
}

// NewActivityVerifierWithBackend is NewActivityVerifier with an explicit
// proof backend, for deployments substituting their own setup ceremony and
// for tests.
func NewActivityVerifierWithBackend(window time.Duration, backend ProofBackend, logger zerolog.Logger) (*ActivityVerifier, error) {
	keys, err := Setup(backend, logger)
	if err != nil {
		return nil, err
	}

	return &ActivityVerifier{
		window:  window,
		keys:    keys,
		prover:  NewProver(keys, backend, logger),
		backend: backend,
		logger:  logger,
	}, nil
}

// Keys exposes the verifier's key pair for callers that persist or inspect
// it. The returned value must be treated as read-only.
func (v *ActivityVerifier) Keys() *KeyPair {
	return v.keys
}

// VerifyActivity decides one record. Staleness, proof generation failure and
// cryptographic rejection all collapse to false: callers get no oracle for
// why a claim was refused. The reasons are logged internally for operations.
func (v *ActivityVerifier) VerifyActivity(record ActivityRecord) bool {
	// 1) Freshness gate, before any expensive proving work
	if !IsFresh(record.Timestamp, time.Now(), v.window) {
		v.logger.Debug().Time("timestamp", record.Timestamp).Msg("record outside freshness window")
		return false
	}

	// 2) Prove
	attestation, err := v.prover.GenerateProof(record)
	if err != nil {
		v.logger.Debug().Err(err).Msg("attestation rejected at proving")
		return false
	}

	// 3) Recompute the public inputs from the record, independently of the
	//    witness the engine used
	publicWitness, err := NewPublicInputVector(record).Witness()
	if err != nil {
		v.logger.Debug().Err(err).Msg("public input reconstruction failed")
		return false
	}

	// 4) Verify against the held verifying key
	if err := v.backend.Verify(attestation.Proof, v.keys.VK, publicWitness); err != nil {
		v.logger.Debug().Str("attestation_id", attestation.ID).Err(err).Msg("attestation rejected at verification")
		return false
	}

	return true
}
