// Package hashroutine is the static registry mapping a hash-algorithm
// name to its digest function and digest byte length (spec §4.1).
//
// md5 and sha1 are the two required algorithms; blake2b-256 and
// blake2s-256 are carried as extended routines since the registry is
// defined as an open name->routine map, not a closed enum.
package hashroutine

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/gtank/blake2/blake2b"
	"github.com/gtank/blake2s"
	"github.com/tkamucheka/rt-rampage/rterrors"

	gsha1 "github.com/SymbolNotFound/gorng/sha1"
)

// Routine maps a hash algorithm name to its raw-bytes digest function.
type Routine struct {
	Name   string
	Len    int
	Digest func(plain []byte) ([]byte, error)
}

var registry = map[string]Routine{
	"md5": {
		Name: "md5",
		Len:  md5.Size,
		Digest: func(plain []byte) ([]byte, error) {
			sum := md5.Sum(plain)
			return sum[:], nil
		},
	},
	"sha1": {
		Name: "sha1",
		Len:  gsha1.DIGEST_BYTES,
		Digest: func(plain []byte) ([]byte, error) {
			digest, err := gsha1.HashBytes(plain)
			if err != nil {
				return nil, fmt.Errorf("sha1: %w", err)
			}
			return digest.Bytes(), nil
		},
	},
	"blake2b-256": {
		Name: "blake2b-256",
		Len:  32,
		Digest: func(plain []byte) ([]byte, error) {
			d, err := blake2b.NewDigest(nil, nil, nil, 32)
			if err != nil {
				return nil, fmt.Errorf("blake2b-256: %w", err)
			}
			if _, err := d.Write(plain); err != nil {
				return nil, fmt.Errorf("blake2b-256: %w", err)
			}
			return d.Sum(nil), nil
		},
	},
	"blake2s-256": {
		Name: "blake2s-256",
		Len:  32,
		Digest: func(plain []byte) ([]byte, error) {
			d, err := blake2s.NewDigest(nil, nil, nil, 32)
			if err != nil {
				return nil, fmt.Errorf("blake2s-256: %w", err)
			}
			if _, err := d.Write(plain); err != nil {
				return nil, fmt.Errorf("blake2s-256: %w", err)
			}
			return d.Sum(nil), nil
		},
	},
}

// Lookup resolves a hash routine by name, matched case-insensitively.
func Lookup(name string) (Routine, error) {
	r, ok := registry[strings.ToLower(name)]
	if !ok {
		return Routine{}, fmt.Errorf("hash routine %q: %w", name, rterrors.ErrUnsupportedHash)
	}
	return r, nil
}

// Names returns the registered hash routine names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
