package zkp

import "errors"

var (
	// ErrSetup is returned when circuit compilation or the trusted setup
	// fails. There is no degraded mode without a key pair: callers must
	// abort initialization.
	ErrSetup = errors.New("zkp: trusted setup failed")

	// ErrProofGeneration is the only error the attestation engine exposes.
	// The underlying cause may depend on the witness, so no further detail
	// leaves the package.
	ErrProofGeneration = errors.New("zkp: proof generation failed")

	// ErrVerification indicates a proof that does not satisfy the relation
	// against the supplied public inputs.
	ErrVerification = errors.New("zkp: proof verification failed")
)
