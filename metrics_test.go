package ieee754_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ieee754"
	"github.com/calebcase/ieee754/layout"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := ieee754.NewMetrics(reg)

	_, err := ieee754.Half("13.375", ieee754.WithMetrics(m))
	require.NoError(t, err)

	_, err = ieee754.Half("0.1", ieee754.WithMetrics(m))
	require.NoError(t, err)

	_, err = ieee754.Half("-inf", ieee754.WithMetrics(m))
	require.NoError(t, err)

	_, err = ieee754.Half("65536", ieee754.WithMetrics(m))
	require.Error(t, err)

	_, err = ieee754.Encode("1", layout.Schema{Precision: 9}, ieee754.WithMetrics(m))
	require.Error(t, err)

	_, err = ieee754.Decode("0 10010 1010110000", layout.Half.Layout(), ieee754.WithMetrics(m))
	require.NoError(t, err)

	_, err = ieee754.Decode("0 10010", layout.Half.Layout(), ieee754.WithMetrics(m))
	require.Error(t, err)

	require.Equal(t, 2.0, testutil.ToFloat64(m.Encodes.WithLabelValues("normal")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Encodes.WithLabelValues("infinity")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Decodes.WithLabelValues("normal")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("magnitude_too_large")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("preset_out_of_range")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Errors.WithLabelValues("malformed_bits")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.UnableToScale))

	n, err := testutil.GatherAndCount(reg, "ieee754_scale_iterations")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMetricsUnregistered(t *testing.T) {
	m := ieee754.NewMetrics(nil)

	_, err := ieee754.Double("1", ieee754.WithMetrics(m))
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Encodes.WithLabelValues("normal")))

	// A nil *Metrics records nothing.
	_, err = ieee754.Double("1", ieee754.WithMetrics(nil))
	require.NoError(t, err)
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := zerolog.New(buf).Level(zerolog.DebugLevel)

	_, err := ieee754.Half("0.1", ieee754.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"message":"classified"`)
	require.Contains(t, out, `"message":"scaled"`)
	require.Contains(t, out, `"level":"warn"`)
	require.Contains(t, out, `"message":"assembled"`)
	require.Contains(t, out, `"layout":"1/5/10"`)

	buf.Reset()

	_, err = ieee754.Half("abc", ieee754.WithLogger(log))
	require.Error(t, err)
	require.Contains(t, buf.String(), `"message":"encode failed"`)
}
