package benchmark

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/pqbench/pqbench/sig"
)

// Config holds the benchmark parameters. KeyGenIterations is typically much
// smaller than Iterations because key generation dominates the runtime.
type Config struct {
	MessageSize      int `json:"message_size"`
	Iterations       int `json:"iterations"`
	KeyGenIterations int `json:"keygen_iterations"`
}

// DefaultConfig returns the parameters embedded in the entry point: a 1 KiB
// message, 100 sign/verify iterations and 10 keygen iterations.
func DefaultConfig() Config {
	return Config{
		MessageSize:      1024,
		Iterations:       100,
		KeyGenIterations: 10,
	}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.MessageSize <= 0 {
		return errors.Errorf("benchmark: message size must be positive, got %d", c.MessageSize)
	}
	if c.Iterations < 1 {
		return errors.Errorf("benchmark: iterations must be >= 1, got %d", c.Iterations)
	}
	if c.KeyGenIterations < 1 {
		return errors.Errorf("benchmark: keygen iterations must be >= 1, got %d", c.KeyGenIterations)
	}
	return nil
}

// Suite drives signature schemes through the keygen, sign and verify
// benchmarks over a single shared random message, collecting a SchemeResult
// per scheme. Execution is sequential; the message is read-only after
// construction.
type Suite struct {
	config  Config
	message []byte

	mu      sync.RWMutex
	results []SchemeResult
}

// NewSuite creates a suite with a freshly generated random message of the
// configured size.
func NewSuite(config Config) (*Suite, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Suite{
		config:  config,
		message: RandomMessage(config.MessageSize),
		results: make([]SchemeResult, 0),
	}, nil
}

// Config returns the suite configuration.
func (s *Suite) Config() Config { return s.config }

// RunScheme benchmarks one scheme and records its SchemeResult.
//
// The keygen benchmark regenerates the keypair on every iteration; a final
// fresh keypair is then generated and reused across all sign iterations, and
// one retained signature is verified across all verify iterations. The
// asymmetry is deliberate: amortizing keygen cost is the point of the
// comparison.
func (s *Suite) RunScheme(scheme sig.Scheme) SchemeResult {
	keyGen := Run(func() {
		scheme.GenerateKeys()
	}, s.config.KeyGenIterations)

	scheme.GenerateKeys()

	var signature []byte
	signRes := Run(func() {
		signature = scheme.Sign(s.message)
	}, s.config.Iterations)

	signature = scheme.Sign(s.message)

	verifyRes := Run(func() {
		scheme.Verify(s.message, signature)
	}, s.config.Iterations)

	result := SchemeResult{
		Name:           scheme.Name(),
		Security:       scheme.Security(),
		KeyGen:         keyGen,
		Sign:           signRes,
		Verify:         verifyRes,
		PublicKeyBytes: scheme.PublicKeySize(),
		SignatureBytes: len(signature),
	}

	s.mu.Lock()
	s.results = append(s.results, result)
	s.mu.Unlock()

	return result
}

// Results returns a copy of all recorded scheme results in run order.
func (s *Suite) Results() []SchemeResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]SchemeResult, len(s.results))
	copy(results, s.results)
	return results
}
