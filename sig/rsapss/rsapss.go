// Package rsapss wraps RSA signing with PSS padding over SHA-256 behind the
// sig.Scheme capability set, as the classical baseline for the lattice
// comparison.
//
// The padding is selected explicitly (salt length equal to the hash length)
// rather than left to a provider default, so the benchmarked scheme is
// unambiguously RSA-PSS and not PKCS#1 v1.5.
package rsapss

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"

	"github.com/pkg/errors"
)

// Backend holds an RSA keypair of a configurable modulus size.
type Backend struct {
	bits int
	key  *rsa.PrivateKey
}

// New returns a Backend for the given modulus bit length. 2048 and 3072 are
// the documented choices; any multiple of 8 the key generator accepts works.
func New(bits int) *Backend {
	return &Backend{bits: bits}
}

// Name implements sig.Scheme.
func (b *Backend) Name() string { return fmt.Sprintf("RSA-%d", b.bits) }

// Security returns the classical strength label for the modulus size.
func (b *Backend) Security() string {
	switch b.bits {
	case 2048:
		return "112-bit"
	case 3072:
		return "128-bit"
	case 4096:
		return "152-bit"
	default:
		return fmt.Sprintf("%d-bit mod", b.bits)
	}
}

// GenerateKeys requests a fresh keypair from the provider, discarding any
// prior one. RSA-3072 generation can take seconds; it runs to completion.
func (b *Backend) GenerateKeys() bool {
	key, err := rsa.GenerateKey(rand.Reader, b.bits)
	if err != nil {
		return false
	}
	b.key = key
	return true
}

// Sign returns the RSA-PSS signature over msg, or nil on failure or when no
// keys are loaded. RSA signatures are always exactly modulus_bytes long.
func (b *Backend) Sign(msg []byte) []byte {
	signature, err := b.sign(msg)
	if err != nil {
		return nil
	}
	return signature
}

func (b *Backend) sign(msg []byte) ([]byte, error) {
	if b.key == nil {
		return nil, errors.New("rsapss: no keypair generated")
	}
	digest := sha256.Sum256(msg)
	signature, err := rsa.SignPSS(rand.Reader, b.key, crypto.SHA256, digest[:], pssOptions())
	if err != nil {
		return nil, errors.Wrap(err, "rsapss: sign")
	}
	return signature, nil
}

// Verify reports whether signature is a valid RSA-PSS signature over msg.
func (b *Backend) Verify(msg, signature []byte) bool {
	if b.key == nil || len(signature) != b.SignatureSize() {
		return false
	}
	digest := sha256.Sum256(msg)
	return rsa.VerifyPSS(&b.key.PublicKey, crypto.SHA256, digest[:], signature, pssOptions()) == nil
}

// PublicKeySize returns the reported public key size, approximated as
// modulus_bytes + 32 to match the comparison output; the exact serialized
// length differs slightly.
func (b *Backend) PublicKeySize() int { return b.modulusBytes() + 32 }

// PrivateKeySize returns the reported private key size, approximated as
// 5 x modulus_bytes (n, d, p, q and the CRT values).
func (b *Backend) PrivateKeySize() int { return 5 * b.modulusBytes() }

// SignatureSize implements sig.Scheme; exact for RSA.
func (b *Backend) SignatureSize() int { return b.modulusBytes() }

// HasKeys implements sig.Scheme.
func (b *Backend) HasKeys() bool { return b.key != nil }

// Close drops the keypair. The runtime owns the key memory; releasing the
// reference is the whole cleanup, and repeated calls are harmless.
func (b *Backend) Close() { b.key = nil }

func (b *Backend) modulusBytes() int { return b.bits / 8 }

func pssOptions() *rsa.PSSOptions {
	return &rsa.PSSOptions{SaltLength: rsa.PSSSaltLengthEqualsHash, Hash: crypto.SHA256}
}
