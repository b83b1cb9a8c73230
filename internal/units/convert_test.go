package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		from    string
		to      string
		want    float64
		wantErr bool
	}{
		{name: "cubic meters to liters", amount: 2, from: "m3", to: "L", want: 2000},
		{name: "liters to cubic meters", amount: 500, from: "L", to: "m3", want: 0.5},
		{name: "kg to tonnes", amount: 2500, from: "kg", to: "t", want: 2.5},
		{name: "tonnes to kg", amount: 1.2, from: "tonne", to: "kg", want: 1200},
		{name: "GJ to kWh", amount: 3.6, from: "GJ", to: "kWh", want: 1000},
		{name: "kWh to GJ", amount: 1000, from: "kWh", to: "GJ", want: 3.6},
		{name: "MWh to kWh", amount: 1.5, from: "MWh", to: "kWh", want: 1500},
		{name: "miles to km", amount: 100, from: "mi", to: "km", want: 160.9344},
		{name: "identity known unit", amount: 42, from: "kWh", to: "kWh", want: 42},
		{name: "identity unknown unit", amount: 7, from: "widgets", to: "widgets", want: 7},
		{name: "case insensitive", amount: 1, from: "M3", to: "l", want: 1000},
		{name: "zero amount", amount: 0, from: "m3", to: "L", want: 0},
		{name: "negative amount passes through", amount: -3, from: "kg", to: "t", want: -0.003},
		{name: "unknown source unit", amount: 1, from: "furlong", to: "km", wantErr: true},
		{name: "unknown target unit", amount: 1, from: "km", to: "parsec", wantErr: true},
		{name: "cross dimension volume to mass", amount: 1, from: "m3", to: "kg", wantErr: true},
		{name: "cross dimension energy to distance", amount: 1, from: "kWh", to: "km", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.from, tt.to)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedUnit))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// Round-tripping through a conversion pair must return the original value
// within floating point tolerance.
func TestConvertRoundTrip(t *testing.T) {
	pairs := []struct {
		from string
		to   string
	}{
		{"m3", "L"},
		{"kg", "t"},
		{"GJ", "kWh"},
		{"kWh", "MWh"},
		{"km", "mi"},
	}

	for _, p := range pairs {
		t.Run(p.from+"_"+p.to, func(t *testing.T) {
			const amount = 1234.5678
			forward, err := Convert(amount, p.from, p.to)
			require.NoError(t, err)
			back, err := Convert(forward, p.to, p.from)
			require.NoError(t, err)
			assert.InDelta(t, amount, back, 1e-9)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("m3"))
	assert.True(t, Supported("KWH"))
	assert.True(t, Supported(" t "))
	assert.False(t, Supported("bbl"))
	assert.False(t, Supported(""))
}
