package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// digestPool is a package-level pool of reusable BLAKE2b-256 hash instances.
// BLAKE2b takes no key here, so the pool needs no explicit initialization.
var digestPool = sync.Pool{
	New: func() any {
		h, err := blake2b.New256(nil)
		if err != nil {
			// blake2b.New256 only fails for oversized keys; nil never does.
			panic(err)
		}
		return h
	},
}

// AcquireDigest returns a reset BLAKE2b-256 hasher from the pool.
//
// The caller streams content into it (e.g. via io.MultiWriter while writing
// a blob to disk), reads the sum, and must hand the hasher back with
// ReleaseDigest.
//
// Purpose:
//   - Avoid repeated allocations of new hash.Hash instances
//   - Reduce GC pressure when digesting many uploads
//
// Example usage:
//
//	h := utils.AcquireDigest()
//	defer utils.ReleaseDigest(h)
//	_, err := io.Copy(io.MultiWriter(dst, h), src)
//	sum := h.Sum(nil)
func AcquireDigest() hash.Hash {
	h := digestPool.Get().(hash.Hash)
	h.Reset()
	return h
}

// ReleaseDigest resets h and returns it to the pool.
func ReleaseDigest(h hash.Hash) {
	h.Reset()
	digestPool.Put(h)
}

// Digest computes a BLAKE2b-256 digest over the given byte slice using a
// hasher pulled from the pool.
//
// Parameters:
//
//	data - arbitrary byte slice to be digested
//
// Returns:
//
//	[]byte - BLAKE2b-256 digest (32 bytes)
//
// Example usage:
//
//	sum := utils.Digest([]byte("file contents"))
func Digest(data []byte) []byte {
	h := AcquireDigest()
	defer ReleaseDigest(h)

	h.Write(data)
	return h.Sum(nil)
}

// DigestString computes a BLAKE2b-256 digest over the given string and
// returns the result as a hex-encoded string.
//
// Suitable for one-off digests where streaming is not needed.
//
// Example usage:
//
//	key := utils.DigestString("file contents")
func DigestString(data string) string {
	return hex.EncodeToString(Digest([]byte(data)))
}
