// Package rtrand provides the CSPRNG used to pick a chain's random start
// index (spec §4.6 step 4a, §5). It wraps github.com/SymbolNotFound/gorng's
// SHA-1-backed random source, which satisfies math/rand/v2's Source
// interface (a bare Uint64() uint64 method), so callers that want the
// wider math/rand/v2 API (Int64N, etc.) can wrap it themselves.
package rtrand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/SymbolNotFound/gorng"
)

// Source is a per-worker random source. Per spec §5, each worker owns one
// unless the underlying generator is internally synchronized; gorng's
// ShaRing is not, so NewSeeded/NewFromCryptoRand must be called once per
// worker.
type Source = gorng.Source

// NewSeeded returns a deterministic Source from the given seed(s),
// for reproducible runs (spec §8 S6: identical seed -> byte-identical
// output file across independent runs).
func NewSeeded(seed uint64, more ...uint64) Source {
	return gorng.NewSourceSeeded(seed, more...)
}

// NewFromCryptoRand returns a Source seeded from the operating system's
// CSPRNG, for production runs where reproducibility is not desired
// (spec §5: "different runs produce different files, and that is
// expected").
func NewFromCryptoRand() (Source, error) {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("rtrand: failed to read entropy: %w", err)
	}
	return gorng.NewSourceSeeded(binary.BigEndian.Uint64(seed[:])), nil
}

// NextStartIndex draws a uniformly random start index in
// [0, plainSpaceTotal) from src (spec §4.6 step 4a).
func NextStartIndex(src Source, plainSpaceTotal uint64) uint64 {
	return src.Uint64() % plainSpaceTotal
}
