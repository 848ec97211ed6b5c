package params_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tkamucheka/rt-rampage/params"
	"github.com/tkamucheka/rt-rampage/rterrors"
)

func validParams() params.Params {
	return params.Params{
		HashType:    "md5",
		CharsetName: "loweralpha",
		MinLength:   1,
		MaxLength:   7,
		TableIndex:  0,
		ChainLength: 3800,
		NumChains:   10000,
		Part:        "run1",
	}
}

func TestValidParamsBuildContext(t *testing.T) {
	ctx, err := validParams().Validate()
	require.NoError(t, err)
	require.NotNil(t, ctx)
}

// S4 from spec §8: numchains = 134_217_728 MUST be rejected before any
// file is opened.
func TestNumChainsAtLimitIsRejected(t *testing.T) {
	p := validParams()
	p.NumChains = params.MaxNumChains
	_, err := p.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, rterrors.ErrTableTooLarge))
}

func TestUnsupportedHashIsRejected(t *testing.T) {
	p := validParams()
	p.HashType = "sha256"
	_, err := p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrUnsupportedHash))
}

func TestUnsupportedCharsetIsRejected(t *testing.T) {
	p := validParams()
	p.CharsetName = "emoji"
	_, err := p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrUnsupportedCharset))
}

func TestLengthOutOfRangeIsRejected(t *testing.T) {
	p := validParams()
	p.MinLength = 5
	p.MaxLength = 2
	_, err := p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrLengthOutOfRange))

	p = validParams()
	p.MaxLength = 10
	_, err = p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrLengthOutOfRange))
}

func TestNegativeTableIndexIsRejected(t *testing.T) {
	p := validParams()
	p.TableIndex = -1
	_, err := p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrTableIndexNegative))
}

func TestChainLengthMustBePositive(t *testing.T) {
	p := validParams()
	p.ChainLength = 0
	_, err := p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrChainLengthInvalid))
}

func TestNumChainsMustBePositive(t *testing.T) {
	p := validParams()
	p.NumChains = 0
	_, err := p.Validate()
	require.True(t, errors.Is(err, rterrors.ErrNumChainsInvalid))
	require.False(t, errors.Is(err, rterrors.ErrChainLengthInvalid))
}
