package ieee754_test

import (
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ieee754"
)

func TestReport(t *testing.T) {
	type TC struct {
		Name   string
		Encode encodeFunc
		Input  string
		Report ieee754.Report
		Mark   error
	}

	tcs := []TC{
		{
			Name:   "half",
			Encode: ieee754.Half,
			Input:  "13.375",
			Report: ieee754.Report{
				Number:             "13.375",
				EdgeCase:           false,
				SignBitWidth:       1,
				ExponentBits:       5,
				MantissaBits:       10,
				TotalBits:          16,
				Sign:               "0",
				Scale:              3,
				ScaledNumber:       "107",
				ScaledNumberBinary: "1101011",
				BinaryOutput:       "1101.011",
				UnableToScale:      false,
				Bias:               15,
				Exponent:           "10010",
				Mantissa:           "1010110000",
				Result:             "0 10010 1010110000",
				Hexadecimal:        "4AB0",
				HexadecimalParts:   []string{"0100", "1010", "1011", "0000"},
				ConvertedNumber:    "13.375",
				Error:              "0",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name:   "half sticky",
			Encode: ieee754.Half,
			Input:  "0.1",
			Report: ieee754.Report{
				Number:             "0.1",
				SignBitWidth:       1,
				ExponentBits:       5,
				MantissaBits:       10,
				TotalBits:          16,
				Sign:               "0",
				Scale:              134,
				UnableToScale:      true,
				Bias:               15,
				Exponent:           "01011",
				Mantissa:           "1001100111",
				Result:             "0 01011 1001100111",
				Hexadecimal:        "2E67",
				HexadecimalParts:   []string{"0010", "1110", "0110", "0111"},
				ConvertedNumber:    "0.10003662109375",
				Error:              "0.00003662109375",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name:   "negative infinity",
			Encode: ieee754.Half,
			Input:  "-inf",
			Report: ieee754.Report{
				Number:           "-Infinity",
				EdgeCase:         true,
				SignBitWidth:     1,
				ExponentBits:     5,
				MantissaBits:     10,
				TotalBits:        16,
				Sign:             "1",
				Bias:             15,
				Exponent:         "11111",
				Mantissa:         "0000000000",
				Result:           "1 11111 0000000000",
				Hexadecimal:      "FC00",
				HexadecimalParts: []string{"1111", "1100", "0000", "0000"},
				ConvertedNumber:  "-Infinity",
				Error:            "0",
			},
			Mark: oops.New("unexpected"),
		},
		{
			Name:   "signaling nan",
			Encode: ieee754.Half,
			Input:  "sNaN",
			Report: ieee754.Report{
				Number:           "sNaN",
				EdgeCase:         true,
				SignBitWidth:     1,
				ExponentBits:     5,
				MantissaBits:     10,
				TotalBits:        16,
				Sign:             "0",
				Bias:             15,
				Exponent:         "11111",
				Mantissa:         "0000000001",
				Result:           "0 11111 0000000001",
				Hexadecimal:      "7C01",
				HexadecimalParts: []string{"0111", "1100", "0000", "0001"},
				ConvertedNumber:  "sNaN",
				Error:            "0",
			},
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Name, func(t *testing.T) {
			r, err := tc.Encode(tc.Input)
			require.NoError(t, err, tc.Mark)

			rep := r.Report()
			t.Logf("report: %s", spew.Sdump(rep))

			// A truncated expansion has long scaled digits; compare their
			// prefix only.
			if rep.UnableToScale {
				require.True(t, strings.HasPrefix(rep.ScaledNumberBinary, "110011001100"), tc.Mark)
				require.True(t, strings.HasPrefix(rep.BinaryOutput, "0.000110011001100"), tc.Mark)
				require.NotEmpty(t, rep.ScaledNumber, tc.Mark)

				rep.ScaledNumber = ""
				rep.ScaledNumberBinary = ""
				rep.BinaryOutput = ""
			}

			require.Equal(t, tc.Report, rep, tc.Mark)
			require.Equal(t, r.Report(), r.Report(), tc.Mark)
		})
	}
}

func TestReportJSON(t *testing.T) {
	r, err := ieee754.Half("13.375")
	require.NoError(t, err)

	data, err := r.Report().JSON()
	require.NoError(t, err)

	var m map[string]any
	err = json.Unmarshal(data, &m)
	require.NoError(t, err)

	keys := []string{
		"number",
		"edge_case",
		"sign_bit_width",
		"exponent_bits",
		"mantissa_bits",
		"total_bits",
		"sign",
		"scale",
		"scaled_number",
		"scaled_number_binary",
		"binary_output",
		"unable_to_scale",
		"bias",
		"exponent",
		"mantissa",
		"result",
		"hexadecimal",
		"hexadecimal_parts",
		"converted_number",
		"error",
	}

	require.Len(t, m, len(keys))

	for _, k := range keys {
		require.Contains(t, m, k)
	}

	require.Equal(t, "0 10010 1010110000", m["result"])
	require.Equal(t, "4AB0", m["hexadecimal"])
	require.Equal(t, float64(3), m["scale"])
}
