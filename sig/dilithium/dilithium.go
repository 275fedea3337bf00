// Package dilithium wraps the CRYSTALS-Dilithium3 lattice signature scheme
// (NIST Security Level 3, FIPS 204 lineage) from cloudflare/circl behind the
// sig.Scheme capability set.
//
// The scheme signs in the polynomial ring Z_q[X]/(X^256+1) with rejection
// sampling ("Fiat-Shamir with Aborts"); none of that lives here — the
// primitive is an external dependency and this package only manages key
// buffers and converts primitive failures into benign returns.
package dilithium

import (
	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/dilithium/mode3"
)

// Fixed byte sizes of the Dilithium3 parameter set.
const (
	// PublicKeySize is the encoded public key length: pk = (ρ, t1).
	PublicKeySize = mode3.PublicKeySize // 1952
	// SecretKeySize is the encoded secret key length: sk = (ρ, K, tr, s1, s2, t0).
	SecretKeySize = mode3.PrivateKeySize // 4032
	// SignatureSize is the upper bound on σ = (c̃, z, h); actual signatures
	// may encode shorter.
	SignatureSize = mode3.SignatureSize // 3309
)

// Backend holds a Dilithium3 keypair in pre-sized buffers alongside the
// parsed key handles used by the primitive.
type Backend struct {
	scheme sign.Scheme

	publicKey []byte // PublicKeySize
	secretKey []byte // SecretKeySize, wiped on Close and regeneration

	pub  sign.PublicKey
	priv sign.PrivateKey
}

// New returns a Backend with empty, pre-sized key buffers.
func New() *Backend {
	return &Backend{
		scheme:    mode3.Scheme(),
		publicKey: make([]byte, PublicKeySize),
		secretKey: make([]byte, SecretKeySize),
	}
}

// Name implements sig.Scheme.
func (b *Backend) Name() string { return "Dilithium3" }

// Security implements sig.Scheme.
func (b *Backend) Security() string { return "NIST Level 3" }

// GenerateKeys draws a fresh keypair from the primitive, filling both key
// buffers. Prior secret material is wiped first.
func (b *Backend) GenerateKeys() bool {
	pk, sk, err := b.scheme.GenerateKey()
	if err != nil {
		return false
	}
	pubBytes, err := pk.MarshalBinary()
	if err != nil {
		return false
	}
	privBytes, err := sk.MarshalBinary()
	if err != nil {
		return false
	}

	wipe(b.secretKey)
	copy(b.publicKey, pubBytes)
	copy(b.secretKey, privBytes)
	wipe(privBytes)

	b.pub = pk
	b.priv = sk
	return true
}

// Sign signs msg with an always-empty context string. The signature is
// produced into a buffer of the maximum length and truncated to the bytes
// the primitive actually emitted. Returns nil when no secret key is loaded
// or the primitive fails.
func (b *Backend) Sign(msg []byte) []byte {
	if b.priv == nil {
		return nil
	}
	raw := b.scheme.Sign(b.priv, msg, nil)
	if len(raw) == 0 || len(raw) > SignatureSize {
		return nil
	}
	buf := make([]byte, SignatureSize)
	n := copy(buf, raw)
	return buf[:n]
}

// Verify reports whether signature is valid over msg under the loaded public
// key. Signatures of the wrong length are rejected outright.
func (b *Backend) Verify(msg, signature []byte) bool {
	if b.pub == nil || len(signature) != b.scheme.SignatureSize() {
		return false
	}
	return b.scheme.Verify(b.pub, msg, signature, nil)
}

// PublicKeySize implements sig.Scheme.
func (b *Backend) PublicKeySize() int { return PublicKeySize }

// SecretKeySize returns the fixed secret key length.
func (b *Backend) SecretKeySize() int { return SecretKeySize }

// SignatureSize implements sig.Scheme.
func (b *Backend) SignatureSize() int { return SignatureSize }

// HasKeys implements sig.Scheme.
func (b *Backend) HasKeys() bool { return b.pub != nil && b.priv != nil }

// PublicKeyBytes returns a copy of the encoded public key.
func (b *Backend) PublicKeyBytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, b.publicKey)
	return out
}

// SecretKeyBytes returns a copy of the encoded secret key. Callers own the
// copy and are responsible for wiping it.
func (b *Backend) SecretKeyBytes() []byte {
	out := make([]byte, SecretKeySize)
	copy(out, b.secretKey)
	return out
}

// SetPublicKey loads an encoded public key. It succeeds only when pub is
// exactly PublicKeySize bytes and parses; otherwise the keypair state is
// left untouched.
func (b *Backend) SetPublicKey(pub []byte) bool {
	if len(pub) != PublicKeySize {
		return false
	}
	pk, err := b.scheme.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return false
	}
	copy(b.publicKey, pub)
	b.pub = pk
	return true
}

// SetSecretKey loads an encoded secret key under the same exact-length
// contract as SetPublicKey.
func (b *Backend) SetSecretKey(sec []byte) bool {
	if len(sec) != SecretKeySize {
		return false
	}
	sk, err := b.scheme.UnmarshalBinaryPrivateKey(sec)
	if err != nil {
		return false
	}
	wipe(b.secretKey)
	copy(b.secretKey, sec)
	b.priv = sk
	return true
}

// Close wipes the secret-key buffer and drops both key handles. The public
// key is not sensitive and is merely released.
func (b *Backend) Close() {
	wipe(b.secretKey)
	b.pub = nil
	b.priv = nil
}

// wipe zeroes b in place. Go offers no volatile stores; the loop plus the
// buffer staying reachable through the Backend keeps the stores observable.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
