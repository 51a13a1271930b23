package scale

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ieee754/layout"
)

func decimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()

	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestUp(t *testing.T) {
	type TC struct {
		input  string
		scale  int
		binary string
		point  string
	}

	tcs := []TC{
		{input: "13.375", scale: 3, binary: "1101011", point: "1101.011"},
		{input: "-13.375", scale: 3, binary: "1101011", point: "1101.011"},
		{input: "1", scale: 0, binary: "1", point: "1"},
		{input: "1E+3", scale: 0, binary: "1111101000", point: "1111101000"},
		{input: "0.5", scale: 1, binary: "1", point: "0.1"},
		{input: "0.375", scale: 3, binary: "11", point: "0.011"},
		{input: "0.00006103515625", scale: 14, binary: "1", point: "0.00000000000001"},
		{input: "2.50", scale: 1, binary: "101", point: "10.1"},
	}

	schema := For(layout.Double.Layout())

	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			s, err := Up(decimal(t, tc.input), schema)
			require.NoError(t, err)

			t.Logf("Scaled: %s", spew.Sdump(s))

			require.False(t, s.Unable)
			require.Equal(t, tc.scale, s.Scale)
			require.Equal(t, tc.binary, s.Binary)
			require.Equal(t, tc.point, s.Point())
		})
	}
}

func TestUpInvariant(t *testing.T) {
	// integer == magnitude * 2^scale exactly whenever the loop terminates.
	schema := For(layout.Double.Layout())

	for i := 1; i <= 64; i++ {
		input := fmt.Sprintf("%d.%s", i, "0625")

		t.Run(input, func(t *testing.T) {
			d := decimal(t, input)

			s, err := Up(d, schema)
			require.NoError(t, err)
			require.False(t, s.Unable)

			got := layout.MulPow2(s.Integer, -s.Scale)
			require.Equal(t, 0, got.Cmp(d), "%s != %s", got, d)
		})
	}
}

func TestUpNonTerminating(t *testing.T) {
	l := layout.Half.Layout()
	schema := For(l)

	s, err := Up(decimal(t, "0.1"), schema)
	require.NoError(t, err)
	require.True(t, s.Unable)
	require.Equal(t, schema.Limit, s.Scale)
	require.Equal(t, "1100110011", s.Binary[:10])

	// floor(0.1 * 2^scale)
	want := new(big.Int).Lsh(big.NewInt(1), uint(s.Scale))
	want.Quo(want, big.NewInt(10))
	require.Equal(t, 0, want.Cmp(s.Integer))
}

func TestUpPrecisionCeiling(t *testing.T) {
	schema := Schema{
		Limit:     1 << 20,
		Precision: 20,
		MinBits:   53,
	}

	s, err := Up(decimal(t, "0.1"), schema)
	require.NoError(t, err)
	require.True(t, s.Unable)

	ceiling := new(big.Int).Exp(big.NewInt(10), big.NewInt(20), nil)
	require.True(t, s.Integer.Cmp(ceiling) >= 0)

	half := new(big.Int).Rsh(s.Integer, 1)
	require.True(t, half.Cmp(ceiling) < 0)
}

func TestUpOverflow(t *testing.T) {
	l := layout.Single.Layout()

	t.Run("limit", func(t *testing.T) {
		schema := For(l)
		schema.Limit = 100

		// 1e-35 * 2^100 < 1, nothing is left of the value.
		_, err := Up(decimal(t, "1e-35"), schema)
		require.Error(t, err)
		require.True(t, ErrScaleOverflow.Has(err), "%+v", err)
	})

	t.Run("near limit", func(t *testing.T) {
		schema := For(l)
		schema.Limit = 100

		// 0.1 runs into the limit but keeps 97 bits.
		s, err := Up(decimal(t, "0.1"), schema)
		require.NoError(t, err)
		require.True(t, s.Unable)
		require.Equal(t, 100, s.Scale)
		require.Equal(t, 97, len(s.Binary))
	})

	t.Run("strict", func(t *testing.T) {
		schema := For(l)
		schema.Strict = true

		_, err := Up(decimal(t, "0.1"), schema)
		require.Error(t, err)
		require.True(t, ErrScaleOverflow.Has(err), "%+v", err)

		s, err := Up(decimal(t, "13.375"), schema)
		require.NoError(t, err)
		require.False(t, s.Unable)
	})

	t.Run("tiny", func(t *testing.T) {
		schema := For(layout.Octuple.Layout())

		s, err := Up(decimal(t, "1e-78000"), schema)
		require.NoError(t, err)
		require.True(t, s.Unable)
		require.Greater(t, len(s.Binary), layout.Octuple.MantissaBits+1)
	})
}

func TestUpInvalid(t *testing.T) {
	schema := For(layout.Half.Layout())

	for _, input := range []string{"0", "Infinity", "NaN"} {
		_, err := Up(decimal(t, input), schema)
		require.Error(t, err, input)
		require.True(t, Error.Has(err), "%+v", err)
	}
}
