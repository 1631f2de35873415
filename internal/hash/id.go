// Package hash wraps xxHash64 for the identifiers evseq derives from names
// and payloads.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a name.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Checksum computes the xxHash64 of a payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Fingerprint hashes an ordered list of names. Each name is followed by a
// zero byte so that ["ab", "c"] and ["a", "bc"] differ.
func Fingerprint(names []string) uint64 {
	d := xxhash.New()
	sep := []byte{0}
	for _, name := range names {
		_, _ = d.WriteString(name)
		_, _ = d.Write(sep)
	}

	return d.Sum64()
}
