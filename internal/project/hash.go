package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// HashBytes digests raw content.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// Combine builds an aggregate hash H(content || part1 || part2 ...).
// The parts must arrive in a deterministic order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// HashStrings digests a sequence of strings with length framing, so
// ("ab","c") and ("a","bc") stay distinct.
func HashStrings(parts ...string) Digest {
	h := sha256.New()
	for _, p := range parts {
		var n [4]byte
		n[0] = byte(len(p))
		n[1] = byte(len(p) >> 8)
		n[2] = byte(len(p) >> 16)
		n[3] = byte(len(p) >> 24)
		_, _ = h.Write(n[:])
		_, _ = h.Write([]byte(p))
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
