package rtrand_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tkamucheka/rt-rampage/rtrand"
)

func TestSeededSourceIsDeterministic(t *testing.T) {
	a := rtrand.NewSeeded(42)
	b := rtrand.NewSeeded(42)

	for i := 0; i < 8; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDifferentSeedsDivergeEventually(t *testing.T) {
	a := rtrand.NewSeeded(1)
	b := rtrand.NewSeeded(2)

	sameForAll := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			sameForAll = false
		}
	}
	require.False(t, sameForAll)
}

func TestNextStartIndexStaysInRange(t *testing.T) {
	src := rtrand.NewSeeded(7)
	const total = uint64(1110)
	for i := 0; i < 1000; i++ {
		idx := rtrand.NextStartIndex(src, total)
		require.Less(t, idx, total)
	}
}

func TestNewFromCryptoRandProducesUsableSource(t *testing.T) {
	src, err := rtrand.NewFromCryptoRand()
	require.NoError(t, err)
	require.NotNil(t, src)
}
