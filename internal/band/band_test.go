package band

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		arfcn         int
		expectedBand  Name
		uplink        float64
		downlink      float64
		center        float64
		expectedError error
	}{
		{
			name:         "gsm900 first channel",
			arfcn:        1,
			expectedBand: GSM900,
			uplink:       890.2,
			downlink:     935.2,
			center:       912.7,
		},
		{
			name:         "gsm900 last channel of first range",
			arfcn:        124,
			expectedBand: GSM900,
			uplink:       914.8,
			downlink:     959.8,
			center:       937.3,
		},
		{
			name:         "gsm900 second range",
			arfcn:        128,
			expectedBand: GSM900,
			uplink:       915.6,
			downlink:     960.6,
			center:       938.1,
		},
		{
			name:         "gsm1800 first channel",
			arfcn:        512,
			expectedBand: GSM1800,
			uplink:       1710.2,
			downlink:     1805.2,
			center:       1757.7,
		},
		{
			name:         "gsm1800 last channel of first range",
			arfcn:        885,
			expectedBand: GSM1800,
			uplink:       1784.8,
			downlink:     1879.8,
			center:       1832.3,
		},
		{
			name:         "umts2100 first channel",
			arfcn:        10562,
			expectedBand: UMTS2100,
			uplink:       1922.4,
			downlink:     2112.4,
			center:       2017.4,
		},
		{
			name:         "umts2100 last channel",
			arfcn:        10687,
			expectedBand: UMTS2100,
			uplink:       1947.4,
			downlink:     2137.4,
			center:       2042.4,
		},
		{
			name:         "lte1800 first channel",
			arfcn:        300,
			expectedBand: LTE1800,
			uplink:       1710.0,
			downlink:     1805.0,
			center:       1757.5,
		},
		{
			name:         "lte1800 last channel",
			arfcn:        379,
			expectedBand: LTE1800,
			uplink:       1717.9,
			downlink:     1812.9,
			center:       1765.4,
		},
		{
			name:          "zero",
			arfcn:         0,
			expectedError: ErrOutOfRange,
		},
		{
			name:          "gap between gsm900 ranges",
			arfcn:         126,
			expectedError: ErrOutOfRange,
		},
		{
			name:          "negative",
			arfcn:         -1,
			expectedError: ErrOutOfRange,
		},
		{
			name:          "far out of range",
			arfcn:         999999,
			expectedError: ErrOutOfRange,
		},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)

			res, err := Resolve(tst.arfcn)
			assert.Equal(tst.expectedError, errors.Cause(err))
			if tst.expectedError != nil {
				return
			}

			assert.Equal(tst.arfcn, res.ARFCN)
			assert.Equal(tst.expectedBand, res.Band.Name)
			assert.InDelta(tst.uplink, res.UplinkMHz, 1e-9)
			assert.InDelta(tst.downlink, res.DownlinkMHz, 1e-9)
			assert.InDelta(tst.center, res.CenterMHz, 1e-9)
		})
	}
}

func TestResolveExactTableValues(t *testing.T) {
	assert := require.New(t)

	res, err := Resolve(1)
	assert.NoError(err)
	assert.Equal(890.2, res.UplinkMHz)
	assert.Equal(935.2, res.DownlinkMHz)
	assert.Equal(912.7, res.CenterMHz)

	res, err = Resolve(10562)
	assert.NoError(err)
	assert.Equal(1922.4, res.UplinkMHz)
	assert.Equal(2112.4, res.DownlinkMHz)
}

func TestGSM900DuplexSpacing(t *testing.T) {
	assert := require.New(t)

	for n := 1; n <= 124; n++ {
		res, err := Resolve(n)
		assert.NoError(err)
		assert.Equal(GSM900, res.Band.Name)
		assert.Equal(45.0, res.DownlinkMHz-res.UplinkMHz, "arfcn %d", n)
	}
}

func TestCenterFrequency(t *testing.T) {
	assert := require.New(t)

	for _, b := range Bands() {
		for _, r := range b.Ranges {
			for n := r.Start; n <= r.End; n++ {
				res, err := Resolve(n)
				assert.NoError(err)
				assert.Equal(b.Name, res.Band.Name)
				assert.Equal((res.UplinkMHz+res.DownlinkMHz)/2, res.CenterMHz)
			}
		}
	}
}

func TestParseARFCN(t *testing.T) {
	tests := []struct {
		in            string
		expected      int
		expectedError error
	}{
		{in: "1", expected: 1},
		{in: " 512\n", expected: 512},
		{in: "-3", expected: -3},
		{in: "abc", expectedError: ErrNonNumericInput},
		{in: "", expectedError: ErrNonNumericInput},
		{in: "1.5", expectedError: ErrNonNumericInput},
		{in: "12a", expectedError: ErrNonNumericInput},
	}

	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			assert := require.New(t)

			arfcn, err := ParseARFCN(tst.in)
			assert.Equal(tst.expectedError, errors.Cause(err))
			assert.Equal(tst.expected, arfcn)
		})
	}
}

func TestResolveString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert := require.New(t)

		res, err := ResolveString("300")
		assert.NoError(err)
		assert.Equal(LTE1800, res.Band.Name)
		assert.Equal(1710.0, res.UplinkMHz)
		assert.Equal(1805.0, res.DownlinkMHz)
	})

	t.Run("non numeric", func(t *testing.T) {
		assert := require.New(t)

		before := testutil.ToFloat64(resolveErrorCounter(ErrNonNumericInput))
		_, err := ResolveString("abc")
		assert.Equal(ErrNonNumericInput, errors.Cause(err))
		assert.Equal(before+1, testutil.ToFloat64(resolveErrorCounter(ErrNonNumericInput)))
	})

	t.Run("out of range", func(t *testing.T) {
		assert := require.New(t)

		before := testutil.ToFloat64(resolveErrorCounter(ErrOutOfRange))
		_, err := ResolveString("0")
		assert.Equal(ErrOutOfRange, errors.Cause(err))
		assert.Equal(before+1, testutil.ToFloat64(resolveErrorCounter(ErrOutOfRange)))
	})
}

func TestResolveCounter(t *testing.T) {
	assert := require.New(t)

	before := testutil.ToFloat64(resolveCounter(UMTS2100))
	_, err := Resolve(10600)
	assert.NoError(err)
	assert.Equal(before+1, testutil.ToFloat64(resolveCounter(UMTS2100)))
}

func TestValidate(t *testing.T) {
	t.Run("static tables", func(t *testing.T) {
		assert := require.New(t)
		assert.NoError(Setup())
		assert.NoError(Validate(Bands()))
	})

	tests := []struct {
		name          string
		defs          []Definition
		expectedError error
	}{
		{
			name: "overlapping bands",
			defs: []Definition{
				{Name: "A", Ranges: []Range{{1, 10}}},
				{Name: "B", Ranges: []Range{{20, 30}, {10, 12}}},
			},
			expectedError: ErrOverlappingRanges,
		},
		{
			name: "reversed range",
			defs: []Definition{
				{Name: "A", Ranges: []Range{{10, 1}}},
			},
			expectedError: ErrInvalidRange,
		},
		{
			name: "no ranges",
			defs: []Definition{
				{Name: "A"},
			},
			expectedError: ErrInvalidRange,
		},
		{
			name: "adjacent bands",
			defs: []Definition{
				{Name: "A", Ranges: []Range{{1, 10}}},
				{Name: "B", Ranges: []Range{{11, 12}}},
			},
		},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tst.expectedError, errors.Cause(Validate(tst.defs)))
		})
	}
}

func TestLookup(t *testing.T) {
	assert := require.New(t)

	b, err := Lookup("gsm 900")
	assert.NoError(err)
	assert.Equal(GSM900, b.Name)
	assert.Equal("1-124, 128-251", b.RangeString())

	b, err = Lookup("LTE1800")
	assert.NoError(err)
	assert.Equal(Generation4G, b.Generation)

	_, err = Lookup("NR3500")
	assert.Equal(ErrUnknownBand, errors.Cause(err))
}

func TestBandsIsCopy(t *testing.T) {
	assert := require.New(t)

	b := Bands()
	b[0].Name = "changed"
	b[0].Ranges[0] = Range{Start: 5000, End: 6000}
	b[2].Modulation[0] = "changed"
	b[3].Features[0] = "changed"
	assert.Equal(GSM900, Bands()[0].Name)

	res, err := Resolve(1)
	assert.NoError(err)
	assert.Equal(GSM900, res.Band.Name)
	assert.Equal([]string{"QPSK", "16QAM"}, Bands()[2].Modulation)

	res.Band.Features[0] = "changed"
	res.Band.Ranges[0] = Range{Start: 5000, End: 6000}
	res, err = Resolve(301)
	assert.NoError(err)
	assert.Equal([]string{"High-speed data", "VoLTE", "Low latency"}, res.Band.Features)

	d, err := Lookup("UMTS2100")
	assert.NoError(err)
	d.Modulation[0] = "changed"
	d.Ranges[0] = Range{Start: 1, End: 1}
	res, err = Resolve(10562)
	assert.NoError(err)
	assert.Equal([]string{"QPSK", "16QAM"}, res.Band.Modulation)
	assert.Equal([]Range{{Start: 1, End: 124}, {Start: 128, End: 251}}, Bands()[0].Ranges)

	var names []Name
	for _, d := range Bands() {
		names = append(names, d.Name)
	}
	assert.Equal([]Name{GSM900, GSM1800, UMTS2100, LTE1800}, names)
}
