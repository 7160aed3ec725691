// Package smchash implements smcHash, a fast non-cryptographic 64-bit
// keyed hash for byte strings, together with the smc_rand pseudo-random
// number generator built on the same mixing primitive.
//
// The hash is seedable and optionally parameterised by a caller-supplied
// secret table, which makes it suitable for hash tables, content
// fingerprinting, deduplication keys and HashDoS mitigation with a
// per-process secret. It is not a MAC: with a known secret, collisions
// can be constructed, so never use it for authentication.
//
// Output is defined on a little-endian byte view and is identical on all
// architectures and word sizes.
package smchash

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// DefaultSeed is the seed used by Hash and String. It equals the first
// word of the built-in secret table.
const DefaultSeed uint64 = 0x9ad1e8e2aa5a5c4b

// Built-in secret constants. Each word is odd and has exactly 32 bits
// set; every pair differs in exactly 32 bit positions.
var smcSecret = [9]uint64{
	0x9ad1e8e2aa5a5c4b,
	0xaaaad2335647d21b,
	0xb8ac35e269d1b495,
	0xa98d653cb2b4c959,
	0x71a5b853b43ca68b,
	0x2b55934dc35c9655,
	0x746ae48ed4d41e4d,
	0xa3d8c38e78aaa6a9,
	0x1bca69c565658bc3,
}

// DefaultSecret returns a copy of the built-in secret table.
func DefaultSecret() [9]uint64 {
	return smcSecret
}

// mum performs a 64x64->128 bit multiplication, overwriting a with the
// XOR of the two product halves and b with the raw high half.
func mum(a, b *uint64) {
	hi, lo := bits.Mul64(*a, *b)
	*a = lo ^ hi
	*b = hi
}

// mix multiplies a by b over 128 bits and folds the high half of the
// product into the low half by XOR.
func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return lo ^ hi
}

func read64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}

func read32(p []byte) uint64 {
	return uint64(binary.LittleEndian.Uint32(p))
}

// Hash computes the smcHash of data with the default seed.
func Hash(data []byte) uint64 {
	return hash(data, DefaultSeed, &smcSecret)
}

// HashWithSeed computes the smcHash of data with a custom seed.
func HashWithSeed(data []byte, seed uint64) uint64 {
	return hash(data, seed, &smcSecret)
}

// HashWithSeedAndSecret computes the smcHash of data with a custom seed
// and secret table. Any table is accepted; callers using the secret for
// HashDoS protection must keep it private, and should preserve the
// bit-balance properties of the built-in table or mixing quality
// degrades (with an all-zero table and seed 0, every input shorter than
// 4 bytes hashes to 0).
func HashWithSeedAndSecret(data []byte, seed uint64, secret [9]uint64) uint64 {
	return hash(data, seed, &secret)
}

// String hashes a string directly without copying it.
func String(s string) uint64 {
	return StringWithSeed(s, DefaultSeed)
}

// StringWithSeed hashes a string with a custom seed.
func StringWithSeed(s string, seed uint64) uint64 {
	data := unsafe.Slice(unsafe.StringData(s), len(s))
	return hash(data, seed, &smcSecret)
}

// hash is the shared engine behind the seeded and secret-parameterised
// variants. All control flow depends only on len(data), never on byte
// values.
func hash(data []byte, seed uint64, secret *[9]uint64) uint64 {
	length := uint64(len(data))

	if length <= 16 {
		seed ^= mix(seed^secret[0], secret[1]^length)

		var a, b uint64
		if length >= 8 {
			a = read64(data)
			b = read64(data[length-8:])
		} else if length >= 4 {
			a = read32(data)
			b = read32(data[length-4:])
		} else if length > 0 {
			// First, middle and last byte occupy disjoint byte lanes,
			// so every byte of a 1-3 byte input affects its own span.
			a = uint64(data[0])<<56 | uint64(data[length>>1])<<32 | uint64(data[length-1])
		}

		a ^= secret[1]
		b ^= seed
		mum(&a, &b)
		return mix(a^secret[8], b^secret[1]^length)
	}

	// Long inputs fold secret[2] into the seed instead of secret[0],
	// separating the two domains so that lengths 16 and 17 diverge
	// immediately.
	seed ^= mix(seed^secret[2], secret[1])

	p := data
	i := length

	// Bulk: 8 lanes x 16 bytes = 128 bytes (2 cache lines) per
	// iteration, with 8 independent dependency chains.
	if length > 128 {
		see1, see2, see3 := seed, seed, seed
		see4, see5, see6, see7 := seed, seed, seed, seed

		for i > 128 {
			seed = mix(read64(p)^secret[0], read64(p[8:])^seed)
			see1 = mix(read64(p[16:])^secret[1], read64(p[24:])^see1)
			see2 = mix(read64(p[32:])^secret[2], read64(p[40:])^see2)
			see3 = mix(read64(p[48:])^secret[3], read64(p[56:])^see3)
			see4 = mix(read64(p[64:])^secret[4], read64(p[72:])^see4)
			see5 = mix(read64(p[80:])^secret[5], read64(p[88:])^see5)
			see6 = mix(read64(p[96:])^secret[6], read64(p[104:])^see6)
			see7 = mix(read64(p[112:])^secret[7], read64(p[120:])^see7)
			p = p[128:]
			i -= 128
		}

		seed ^= see1 ^ see4 ^ see5
		see2 ^= see3 ^ see6 ^ see7
		seed ^= see2
	}

	// Residual cascade. Thresholds are strict: the last 16 bytes are
	// always left for the tail reads below, re-reading part of the final
	// block when fewer than 16 bytes remain past it.
	if i > 64 {
		seed = mix(read64(p)^secret[0], read64(p[8:])^seed)
		seed = mix(read64(p[16:])^secret[1], read64(p[24:])^seed)
		seed = mix(read64(p[32:])^secret[2], read64(p[40:])^seed)
		seed = mix(read64(p[48:])^secret[3], read64(p[56:])^seed)
		p = p[64:]
		i -= 64
	}
	if i > 32 {
		seed = mix(read64(p)^secret[0], read64(p[8:])^seed)
		seed = mix(read64(p[16:])^secret[1], read64(p[24:])^seed)
		p = p[32:]
		i -= 32
	}
	if i > 16 {
		seed = mix(read64(p)^secret[0], read64(p[8:])^seed)
	}

	a := read64(data[length-16:]) ^ length
	b := read64(data[length-8:])

	a ^= secret[1]
	b ^= seed
	mum(&a, &b)
	return mix(a^secret[8], b^secret[1]^length)
}

// Uint64 hashes a single uint64 value with the default seed.
func Uint64(value uint64) uint64 {
	return Uint64WithSeed(value, DefaultSeed)
}

// Uint64WithSeed hashes a single uint64 value with a custom seed. The
// result equals HashWithSeed on the 8-byte little-endian encoding of
// value: with length 8, both tail reads of the short path see the same
// word.
func Uint64WithSeed(value, seed uint64) uint64 {
	seed ^= mix(seed^smcSecret[0], smcSecret[1]^8)

	a := value ^ smcSecret[1]
	b := value ^ seed
	mum(&a, &b)
	return mix(a^smcSecret[8], b^smcSecret[1]^8)
}

// Uint32 hashes a single uint32 value with the default seed.
func Uint32(value uint32) uint64 {
	return Uint32WithSeed(value, DefaultSeed)
}

// Uint32WithSeed hashes a single uint32 value with a custom seed,
// matching HashWithSeed on the 4-byte little-endian encoding of value.
func Uint32WithSeed(value uint32, seed uint64) uint64 {
	seed ^= mix(seed^smcSecret[0], smcSecret[1]^4)

	a := uint64(value) ^ smcSecret[1]
	b := uint64(value) ^ seed
	mum(&a, &b)
	return mix(a^smcSecret[8], b^smcSecret[1]^4)
}
