package elements

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByNumberKnown(t *testing.T) {
	e, err := ByNumber(8)
	require.NoError(t, err)
	require.Equal(t, "O", e.Symbol)
	require.Equal(t, "Oxygen", e.Name)
}

func TestByNumberOutOfRange(t *testing.T) {
	_, err := ByNumber(MaxAtomicNumber + 1)
	require.Error(t, err)

	_, err = ByNumber(-1)
	require.Error(t, err)
}

func TestBySymbolKnown(t *testing.T) {
	e, err := BySymbol("Fe")
	require.NoError(t, err)
	require.Equal(t, 26, e.Number)
}

func TestBySymbolTrimsWhitespace(t *testing.T) {
	e, err := BySymbol("  C ")
	require.NoError(t, err)
	require.Equal(t, 6, e.Number)
}

func TestBySymbolUnknown(t *testing.T) {
	_, err := BySymbol("Zz")
	require.Error(t, err)
}
