package csrio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpsilonValidFraction(t *testing.T) {
	eps, err := ParseEpsilon("3/4")
	require.NoError(t, err)
	assert.Equal(t, int64(3), eps.A)
	assert.Equal(t, int64(4), eps.B)
	assert.Equal(t, int64(9), eps.EpsA2)
	assert.Equal(t, int64(16), eps.EpsB2)
}

func TestParseEpsilonTrimsWhitespace(t *testing.T) {
	eps, err := ParseEpsilon("  1 / 2  ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), eps.A)
	assert.Equal(t, int64(2), eps.B)
}

func TestParseEpsilonRejectsBareInteger(t *testing.T) {
	_, err := ParseEpsilon("1")
	require.Error(t, err)
}

func TestParseEpsilonRejectsNumeratorGreaterThanDenominator(t *testing.T) {
	_, err := ParseEpsilon("5/4")
	require.Error(t, err)
}

func TestParseEpsilonRejectsGarbage(t *testing.T) {
	_, err := ParseEpsilon("a/b")
	require.Error(t, err)
}

const triangleDataset = `3
1 2
0 2
0 1
`

func TestDecodeCSRTriangle(t *testing.T) {
	g, err := DecodeCSR(strings.NewReader(triangleDataset))
	require.NoError(t, err)
	require.Equal(t, int32(3), g.N)
	assert.Equal(t, []int32{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int32{0, 2}, g.Neighbors(1))
	assert.Equal(t, []int32{0, 1}, g.Neighbors(2))
}

func TestDecodeCSRSkipsCommentsAndBlankLinesBeforeCount(t *testing.T) {
	dataset := "# a comment\n\n" + triangleDataset
	g, err := DecodeCSR(strings.NewReader(dataset))
	require.NoError(t, err)
	require.Equal(t, int32(3), g.N)
}

func TestDecodeCSRSortsUnsortedNeighbors(t *testing.T) {
	g, err := DecodeCSR(strings.NewReader("2\n1\n0\n"))
	require.NoError(t, err)
	assert.Equal(t, []int32{1}, g.Neighbors(0))
	assert.Equal(t, []int32{0}, g.Neighbors(1))
}

func TestDecodeCSRRejectsTruncatedDataset(t *testing.T) {
	_, err := DecodeCSR(strings.NewReader("3\n1 2\n"))
	require.Error(t, err)
}

func TestDecodeCSRRejectsInvalidNeighborID(t *testing.T) {
	_, err := DecodeCSR(strings.NewReader("1\nnotanumber\n"))
	require.Error(t, err)
}

func TestDecodeCSRAllowsIsolatedVertex(t *testing.T) {
	g, err := DecodeCSR(strings.NewReader("1\n\n"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), g.Degree(0))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g, err := DecodeCSR(strings.NewReader(triangleDataset))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, EncodeCSR(&buf, g))

	g2, err := DecodeCSR(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, g.N, g2.N)
	assert.Equal(t, g.Adj, g2.Adj)
	assert.Equal(t, g.Offset, g2.Offset)
}
