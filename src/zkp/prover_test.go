package zkp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProofHonestRecord(t *testing.T) {
	keys := testKeyPair(t)
	prover := NewProver(keys, NewGroth16Backend(), testLogger())

	record := NewActivityRecord(time.Now(), HashActivity("valid_activity"), [32]byte{1})

	attestation, err := prover.GenerateProof(record)
	require.NoError(t, err)
	assert.NotEmpty(t, attestation.ID)
	assert.NotNil(t, attestation.Proof)
	assert.NotNil(t, attestation.PublicWitness)
}

func TestGenerateProofBackendFailure(t *testing.T) {
	keys := testKeyPair(t)
	prover := NewProver(keys, &failingBackend{}, testLogger())

	record := NewActivityRecord(time.Now(), HashActivity("valid_activity"), [32]byte{1})

	// Whatever went wrong inside the backend, the caller only sees the
	// generic generation error.
	_, err := prover.GenerateProof(record)
	require.ErrorIs(t, err, ErrProofGeneration)
	assert.NotErrorIs(t, err, errBackendDown)
}

func TestGenerateProofUnsatisfiedRelation(t *testing.T) {
	keys := testKeyPair(t)
	prover := NewProver(keys, NewGroth16Backend(), testLogger())

	record := NewActivityRecord(time.Now(), HashActivity("valid_activity"), [32]byte{1})
	record.userSecret = [32]byte{2}

	_, err := prover.GenerateProof(record)
	require.ErrorIs(t, err, ErrProofGeneration)
}
