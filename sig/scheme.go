// Package sig defines the capability set shared by the signature backends
// under benchmark.
//
// Backends wrap external cryptographic primitives and never surface errors
// through this interface: a failed operation yields false or an empty byte
// slice, so the benchmark loop can drive any backend without error plumbing
// inside the timed region.
package sig

// Scheme is the abstract signature backend driven by the benchmark suite.
type Scheme interface {
	// Name returns the table label for the scheme, e.g. "Dilithium3".
	Name() string
	// Security returns the security-level label, e.g. "NIST Level 3".
	Security() string

	// GenerateKeys produces a fresh keypair, discarding (and for secret
	// material, wiping) any previous one. Returns false on primitive failure.
	GenerateKeys() bool
	// Sign returns the signature over msg, or an empty slice on failure or
	// when no keys are loaded. Ownership of the returned bytes transfers to
	// the caller.
	Sign(msg []byte) []byte
	// Verify reports whether signature is valid over msg under the current
	// public key. Any internal failure reads as false.
	Verify(msg, signature []byte) bool

	// PublicKeySize returns the byte count of the public key (approximate
	// for RSA, see the rsapss package).
	PublicKeySize() int
	// SignatureSize returns the expected signature byte count; lattice
	// signatures may come in under it, RSA signatures match it exactly.
	SignatureSize() int
	// HasKeys reports whether a usable keypair is currently loaded.
	HasKeys() bool

	// Close releases the keypair; secret material is wiped where the
	// backend owns it. Safe to call more than once.
	Close()
}
