package utils

import (
	"crypto/sha256"
	"crypto/subtle"
)

// ConstantTimeEqual reports whether a and b are equal without leaking, via
// timing, the position of the first differing byte or the input lengths.
//
// Both inputs are first reduced to fixed-size SHA-256 digests, so
// [subtle.ConstantTimeCompare] always walks 32 bytes regardless of the
// original lengths.
//
// Example usage:
//
//	ok := utils.ConstantTimeEqual(presented, expected)
func ConstantTimeEqual(a, b string) bool {
	return ConstantTimeCompare(a, b) == 1
}

// ConstantTimeCompare is the integer form of [ConstantTimeEqual]: it returns
// 1 when a and b are equal and 0 otherwise. Results of several comparisons
// can be combined with bitwise AND so that every comparison is always
// executed.
func ConstantTimeCompare(a, b string) int {
	da := sha256.Sum256([]byte(a))
	db := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(da[:], db[:])
}
