package hwy

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hashes of lane bit patterns, consistent with the BitwiseEqual functions:
// bitwise-equal registers hash equally. Lanes are encoded little-endian in
// lane order before hashing with XXH64.

func hashLanes(lanes []float64) uint64 {
	var buf [32]byte
	n := 0
	for _, v := range lanes {
		binary.LittleEndian.PutUint64(buf[n:], math.Float64bits(v))
		n += 8
	}
	return xxhash.Sum64(buf[:n])
}

func fold32(h uint64) uint32 {
	return uint32(h ^ h>>32)
}

// Hash64 hashes all four lanes.
func Hash64(v Float64x4) uint64 {
	return hashLanes(v[:])
}

// Hash64x3 hashes lanes X, Y, Z.
func Hash64x3(v Float64x4) uint64 {
	return hashLanes(v[:3])
}

// Hash64x2 hashes a narrow register.
func Hash64x2(v Float64x2) uint64 {
	return hashLanes(v[:])
}

// Hash32 is Hash64 folded to 32 bits.
func Hash32(v Float64x4) uint32 {
	return fold32(Hash64(v))
}

// Hash32x3 is Hash64x3 folded to 32 bits.
func Hash32x3(v Float64x4) uint32 {
	return fold32(Hash64x3(v))
}

// Hash32x2 is Hash64x2 folded to 32 bits.
func Hash32x2(v Float64x2) uint32 {
	return fold32(Hash64x2(v))
}
