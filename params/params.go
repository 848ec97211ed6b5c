// Package params holds the validated, typed parameter record that
// enters the table generator (spec §2 control flow, §4.8, §7). It is
// built once from CLI flags or test fixtures; every field is validated
// together by Validate before any file is opened, matching spec §7's
// propagation policy ("validation errors fail fast before any file is
// opened").
package params

import (
	"fmt"

	"github.com/tkamucheka/rt-rampage/chainwalker"
	"github.com/tkamucheka/rt-rampage/charset"
	"github.com/tkamucheka/rt-rampage/hashroutine"
	"github.com/tkamucheka/rt-rampage/rterrors"
)

// MaxNumChains is the largest chain count a table may hold: at 16
// bytes/record, 2^27 records would reach the 2 GiB file-size limit
// (spec §1 Non-goals, §4.6.1).
const MaxNumChains = 134_217_728

// Params is the validated, constructed-once parameter record (spec §9's
// "typed parameter struct" design note, replacing the original's
// per-setter fluent pipeline).
type Params struct {
	HashType    string
	CharsetName string
	MinLength   int
	MaxLength   int
	TableIndex  int
	ChainLength int
	NumChains   uint64
	Part        string
}

// Validate checks every field's constraint (spec §7's error taxonomy)
// and, if all pass, resolves the hash routine and charset and builds the
// immutable chainwalker.Context shared by every chain of this run.
func (p Params) Validate() (*chainwalker.Context, error) {
	routine, err := hashroutine.Lookup(p.HashType)
	if err != nil {
		return nil, err
	}
	cs, err := charset.Lookup(p.CharsetName)
	if err != nil {
		return nil, err
	}
	if p.ChainLength <= 0 {
		return nil, fmt.Errorf("chain_length=%d: %w", p.ChainLength, rterrors.ErrChainLengthInvalid)
	}
	if p.NumChains == 0 {
		return nil, fmt.Errorf("numchains must be > 0: %w", rterrors.ErrNumChainsInvalid)
	}
	if p.NumChains >= MaxNumChains {
		return nil, fmt.Errorf("numchains=%d >= %d: %w", p.NumChains, MaxNumChains, rterrors.ErrTableTooLarge)
	}

	// NewContext re-validates min/max/table_index range constraints
	// (spec §4.8: every setter is total, no silent clamping) and
	// precomputes the plainspace tables.
	ctx, err := chainwalker.NewContext(routine, cs, p.MinLength, p.MaxLength, p.TableIndex)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
