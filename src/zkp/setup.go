package zkp

import (
	"fmt"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/rs/zerolog"
)

// KeyPair holds the compiled relation and the Groth16 key material for one
// relation version. It is created once, read-only afterwards, and safe to
// share across concurrent verifications without locking. Regenerating it
// invalidates every previously issued proof: the keys are specific to both
// the relation shape and the setup randomness.
type KeyPair struct {
	CS constraint.ConstraintSystem
	PK groth16.ProvingKey
	VK groth16.VerifyingKey
}

// Setup compiles the activity relation and runs the backend's trusted setup.
// It is expensive and must run exactly once per relation version, never per
// request. The verifying key returned by gnark comes precomputed for
// repeated verification, so no separate preparation step is needed.
func Setup(backend ProofBackend, logger zerolog.Logger) (*KeyPair, error) {
	logger.Info().Msg("compiling activity relation")
	cs, err := CompileRelation()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}

	logger.Info().Int("constraints", cs.GetNbConstraints()).Msg("running trusted setup")
	pk, vk, err := backend.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSetup, err)
	}

	return &KeyPair{CS: cs, PK: pk, VK: vk}, nil
}
