package zkp

import (
	"errors"
	"sync"
	"testing"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// The trusted setup is expensive, so all tests share one key pair.
var (
	testKeysOnce sync.Once
	testKeys     *KeyPair
	testKeysErr  error
)

func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	testKeysOnce.Do(func() {
		testKeys, testKeysErr = Setup(NewGroth16Backend(), zerolog.Nop())
	})
	require.NoError(t, testKeysErr)
	return testKeys
}

func testVerifier(t *testing.T, backend ProofBackend) *ActivityVerifier {
	t.Helper()
	keys := testKeyPair(t)
	return &ActivityVerifier{
		window:  DefaultFreshnessWindow,
		keys:    keys,
		prover:  NewProver(keys, backend, zerolog.Nop()),
		backend: backend,
		logger:  zerolog.Nop(),
	}
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// failingBackend refuses every operation.
type failingBackend struct{}

func (f *failingBackend) Setup(constraint.ConstraintSystem) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	return nil, nil, errBackendDown
}

func (f *failingBackend) Prove(constraint.ConstraintSystem, groth16.ProvingKey, witness.Witness) (groth16.Proof, error) {
	return nil, errBackendDown
}

func (f *failingBackend) Verify(groth16.Proof, groth16.VerifyingKey, witness.Witness) error {
	return errBackendDown
}

var errBackendDown = errors.New("backend down")

// countingBackend wraps a real backend and records how often the expensive
// operations run.
type countingBackend struct {
	inner       ProofBackend
	setupCalls  int
	proveCalls  int
	verifyCalls int
}

func (c *countingBackend) Setup(cs constraint.ConstraintSystem) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	c.setupCalls++
	return c.inner.Setup(cs)
}

func (c *countingBackend) Prove(cs constraint.ConstraintSystem, pk groth16.ProvingKey, fullWitness witness.Witness) (groth16.Proof, error) {
	c.proveCalls++
	return c.inner.Prove(cs, pk, fullWitness)
}

func (c *countingBackend) Verify(proof groth16.Proof, vk groth16.VerifyingKey, publicWitness witness.Witness) error {
	c.verifyCalls++
	return c.inner.Verify(proof, vk, publicWitness)
}
