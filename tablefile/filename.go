// Package tablefile implements the rainbow table file: deterministic
// filename encoding, the binary record format, and the generator that
// drives chain generation with resume support (spec §4.6, §6).
package tablefile

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tkamucheka/rt-rampage/params"
)

// FormatFilename builds the canonical, bit-exact filename for a table
// (spec §6):
//
//	<hashtype>_<charset>#<min>-<max>_<tableindex>_<chainlength>x<numchains>_<part>.rt
func FormatFilename(p params.Params) string {
	return fmt.Sprintf(
		"%s_%s#%d-%d_%d_%dx%d_%s.rt",
		p.HashType, p.CharsetName, p.MinLength, p.MaxLength,
		p.TableIndex, p.ChainLength, p.NumChains, p.Part,
	)
}

var filenamePattern = regexp.MustCompile(
	`^([^_]+)_(.+)#(\d+)-(\d+)_(\d+)_(\d+)x(\d+)_(.*)\.rt$`,
)

// ParseFilename recovers the parameters embedded in a canonical filename.
// It is the inverse of FormatFilename. Generator does not call it: resume
// works from the Params it is given.
func ParseFilename(name string) (params.Params, error) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return params.Params{}, fmt.Errorf("tablefile: %q does not match the canonical rainbow table filename format", name)
	}
	minLength, err := strconv.Atoi(m[3])
	if err != nil {
		return params.Params{}, fmt.Errorf("tablefile: invalid min length in %q: %w", name, err)
	}
	maxLength, err := strconv.Atoi(m[4])
	if err != nil {
		return params.Params{}, fmt.Errorf("tablefile: invalid max length in %q: %w", name, err)
	}
	tableIndex, err := strconv.Atoi(m[5])
	if err != nil {
		return params.Params{}, fmt.Errorf("tablefile: invalid table index in %q: %w", name, err)
	}
	chainLength, err := strconv.Atoi(m[6])
	if err != nil {
		return params.Params{}, fmt.Errorf("tablefile: invalid chain length in %q: %w", name, err)
	}
	numChains, err := strconv.ParseUint(m[7], 10, 64)
	if err != nil {
		return params.Params{}, fmt.Errorf("tablefile: invalid chain count in %q: %w", name, err)
	}
	return params.Params{
		HashType:    m[1],
		CharsetName: m[2],
		MinLength:   minLength,
		MaxLength:   maxLength,
		TableIndex:  tableIndex,
		ChainLength: chainLength,
		NumChains:   numChains,
		Part:        m[8],
	}, nil
}
