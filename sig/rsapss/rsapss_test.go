package rsapss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqbench/pqbench/sig/dilithium"
)

var demoMessage = []byte("Hello, Post-Quantum World!")

func TestSignVerifyRoundTrip2048(t *testing.T) {
	b := New(2048)
	defer b.Close()

	require.True(t, b.GenerateKeys())
	require.True(t, b.HasKeys())

	signature := b.Sign(demoMessage)
	require.Len(t, signature, 256)
	assert.True(t, b.Verify(demoMessage, signature))

	tampered := make([]byte, len(demoMessage))
	copy(tampered, demoMessage)
	tampered[0] ^= 0x01
	assert.False(t, b.Verify(tampered, signature))

	bad := make([]byte, len(signature))
	copy(bad, signature)
	bad[0] ^= 0xFF
	assert.False(t, b.Verify(demoMessage, bad))
	assert.False(t, b.Verify(demoMessage, signature[:len(signature)-1]))
}

func TestNoKeysBehavior(t *testing.T) {
	b := New(2048)
	defer b.Close()

	assert.False(t, b.HasKeys())
	assert.Empty(t, b.Sign(demoMessage))
	assert.False(t, b.Verify(demoMessage, make([]byte, 256)))
}

func TestReportedSizes(t *testing.T) {
	// Public and private sizes are the documented approximations
	// (modulus_bytes + 32 and 5 x modulus_bytes), not serialized lengths.
	b2048 := New(2048)
	assert.Equal(t, 288, b2048.PublicKeySize())
	assert.Equal(t, 1280, b2048.PrivateKeySize())
	assert.Equal(t, 256, b2048.SignatureSize())

	b3072 := New(3072)
	assert.Equal(t, 416, b3072.PublicKeySize())
	assert.Equal(t, 1920, b3072.PrivateKeySize())
	assert.Equal(t, 384, b3072.SignatureSize())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "RSA-2048", New(2048).Name())
	assert.Equal(t, "112-bit", New(2048).Security())
	assert.Equal(t, "RSA-3072", New(3072).Name())
	assert.Equal(t, "128-bit", New(3072).Security())
}

func TestCloseDropsKeys(t *testing.T) {
	b := New(2048)
	require.True(t, b.GenerateKeys())

	b.Close()
	b.Close() // idempotent

	assert.False(t, b.HasKeys())
	assert.Empty(t, b.Sign(demoMessage))
}

func TestCrossSchemeRejected(t *testing.T) {
	r := New(2048)
	defer r.Close()
	require.True(t, r.GenerateKeys())

	d := dilithium.New()
	defer d.Close()
	require.True(t, d.GenerateKeys())

	rsaSig := r.Sign(demoMessage)
	latticeSig := d.Sign(demoMessage)
	require.NotEmpty(t, rsaSig)
	require.NotEmpty(t, latticeSig)

	// Signatures do not travel between schemes; length alone rules them out.
	assert.False(t, r.Verify(demoMessage, latticeSig))
	assert.False(t, d.Verify(demoMessage, rsaSig))
}
