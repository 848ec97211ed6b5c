// Package charset holds the static catalog of plaintext character sets
// a rainbow table may be generated over (spec §4.2). Order is load-bearing:
// it defines the little-endian digit weighting used by chainwalker's
// plainspace arithmetic, so charsets must never be reordered once a table
// has been generated against them.
package charset

import (
	"fmt"

	"github.com/tkamucheka/rt-rampage/rterrors"
)

const (
	Alpha                = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerAlpha            = "abcdefghijklmnopqrstuvwxyz"
	Numeric               = "0123456789"
	AlphaNumeric          = Alpha + Numeric
	LowerAlphaNumeric     = LowerAlpha + Numeric
	AlphaNumericSymbol14  = AlphaNumeric + "!@#$%^&*()-_+="
	All                   = AlphaNumericSymbol14 + "~`[]{}|\\:;\"'<>,.?/"
)

var catalog = map[string]string{
	"alpha":                  Alpha,
	"loweralpha":              LowerAlpha,
	"numeric":                 Numeric,
	"alpha-numeric":           AlphaNumeric,
	"loweralpha-numeric":      LowerAlphaNumeric,
	"alpha-numeric-symbol14":  AlphaNumericSymbol14,
	"all":                     All,
}

// byteCharset holds all 256 byte values in natural order, built once.
var byteCharset = func() []byte {
	cs := make([]byte, 256)
	for i := range cs {
		cs[i] = byte(i)
	}
	return cs
}()

// Lookup resolves a charset name to its ordered byte sequence. Matching
// is exact (not case-insensitive): charset names are compound tokens
// ("alpha-numeric-symbol14") where case carries no ambiguity, unlike hash
// routine names.
func Lookup(name string) ([]byte, error) {
	if name == "byte" {
		return byteCharset, nil
	}
	if s, ok := catalog[name]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("charset %q: %w", name, rterrors.ErrUnsupportedCharset)
}

// Names returns the valid charset catalog names, including "byte".
func Names() []string {
	names := make([]string, 0, len(catalog)+1)
	for name := range catalog {
		names = append(names, name)
	}
	return append(names, "byte")
}
