package smchash

import "encoding/binary"

// Hasher provides a hash.Hash64 compatible interface. Written data is
// buffered; Sum64 hashes the whole buffer in one kernel call, so the
// result always equals a one-shot Hash of the concatenated writes.
type Hasher struct {
	seed   uint64
	secret [9]uint64
	buf    []byte
}

// NewHasher creates a new Hasher with the default seed and secret.
func NewHasher() *Hasher {
	return NewHasherWithSeed(DefaultSeed)
}

// NewHasherWithSeed creates a new Hasher with a custom seed.
func NewHasherWithSeed(seed uint64) *Hasher {
	return &Hasher{
		seed:   seed,
		secret: smcSecret,
		buf:    make([]byte, 0, 64),
	}
}

// NewHasherWithSeedAndSecret creates a new Hasher with a custom seed and
// secret table.
func NewHasherWithSeedAndSecret(seed uint64, secret [9]uint64) *Hasher {
	return &Hasher{
		seed:   seed,
		secret: secret,
		buf:    make([]byte, 0, 64),
	}
}

// Write implements io.Writer. It never fails.
func (h *Hasher) Write(p []byte) (n int, err error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

// Sum64 returns the 64-bit hash of all data written so far.
func (h *Hasher) Sum64() uint64 {
	return hash(h.buf, h.seed, &h.secret)
}

// Sum appends the big-endian hash to b and returns the result.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Reset discards all buffered data, keeping the seed and secret.
func (h *Hasher) Reset() {
	h.buf = h.buf[:0]
}

// Size returns the hash size in bytes.
func (h *Hasher) Size() int {
	return 8
}

// BlockSize returns the bulk-loop block size in bytes.
func (h *Hasher) BlockSize() int {
	return 128
}
