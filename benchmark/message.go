package benchmark

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

var (
	rngOnce sync.Once
	rng     *rand.Rand
)

// RandomMessage returns exactly size uniformly random bytes. The bytes are
// benchmark payload, not key material, so a seeded PRNG is enough — but the
// seed comes from a non-deterministic source so runs never repeat the same
// sequence.
func RandomMessage(size int) []byte {
	rngOnce.Do(func() {
		rng = rand.New(rand.NewSource(randomSeed()))
	})

	msg := make([]byte, size)
	rng.Read(msg)
	return msg
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
