// Package hash computes content fingerprints of encoded FFA files.
package hash

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of the given bytes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintReader computes the xxHash64 of everything read from r.
func FingerprintReader(r io.Reader) (uint64, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return 0, err
	}

	return d.Sum64(), nil
}

// Format renders a fingerprint the way it is logged.
func Format(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
