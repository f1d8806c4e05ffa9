package accounts

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(cs ...string) map[string]bool {
	m := make(map[string]bool, len(cs))
	for _, c := range cs {
		m[c] = true
	}
	return m
}

func TestNextChildCode_FirstHundred(t *testing.T) {
	code, err := NextChildCode("5000", codes())
	require.NoError(t, err)
	assert.Equal(t, "5100", code)
}

func TestNextChildCode_SkipsTakenHundreds(t *testing.T) {
	code, err := NextChildCode("5000", codes("5100", "5200"))
	require.NoError(t, err)
	assert.Equal(t, "5300", code)
}

func TestNextChildCode_FallsBackToTens(t *testing.T) {
	taken := codes()
	for offset := 100; offset <= 900; offset += 100 {
		taken[strconv.Itoa(5000+offset)] = true
	}
	code, err := NextChildCode("5000", taken)
	require.NoError(t, err)
	assert.Equal(t, "5010", code)
}

func TestNextChildCode_FallsBackToDense(t *testing.T) {
	taken := codes()
	for offset := 10; offset <= 990; offset += 10 {
		taken[strconv.Itoa(5000+offset)] = true
	}
	code, err := NextChildCode("5000", taken)
	require.NoError(t, err)
	assert.Equal(t, "5001", code)
}

func TestNextChildCode_RangeExhausted(t *testing.T) {
	taken := codes()
	for offset := 1; offset <= 999; offset++ {
		taken[strconv.Itoa(5000+offset)] = true
	}
	_, err := NextChildCode("5000", taken)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRangeExhausted)
}

func TestNextChildCode_BadParent(t *testing.T) {
	_, err := NextChildCode("not-a-code", codes())
	require.Error(t, err)
}

func TestInBlock(t *testing.T) {
	assert.True(t, InBlock("1000", "1001"))
	assert.True(t, InBlock("1000", "1999"))
	assert.False(t, InBlock("1000", "1000"))
	assert.False(t, InBlock("1000", "2000"))
	assert.False(t, InBlock("1000", "999"))
	assert.False(t, InBlock("1000", "abc"))
}
