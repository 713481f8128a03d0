package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	m, err := Parse("10.5")
	require.NoError(t, err)
	assert.Equal(t, "10.50", m.String())

	_, err = Parse("abc")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestInvoiceArithmeticIsExact(t *testing.T) {
	// 10.50 * 2 + 3.00 * 1 must be exactly 24.00, no penny drift.
	total := Zero()
	total = total.Add(MustParse("10.50").MulQuantity(2))
	total = total.Add(MustParse("3.00").MulQuantity(1))

	assert.Equal(t, "24.00", total.String())
	assert.True(t, total.Equal(MustParse("24.00")))
}

func TestNoBinaryFloatArtifacts(t *testing.T) {
	// The classic 0.1 + 0.2 != 0.3 failure mode.
	sum := MustParse("0.10").Add(MustParse("0.20"))
	assert.True(t, sum.Equal(MustParse("0.30")))
	assert.Equal(t, "0.30", sum.String())
}

func TestJSONRoundTrip(t *testing.T) {
	m := MustParse("199.99")
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"199.99"`, string(data))

	var parsed Money
	require.NoError(t, parsed.UnmarshalJSON(data))
	assert.True(t, m.Equal(parsed))
}
