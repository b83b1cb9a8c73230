package factors

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replace(doc, old, new string) string {
	return strings.Replace(doc, old, new, 1)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

// minimalTable returns a valid single-entry table document that individual
// cases mutate to provoke load failures.
func minimalTable() string {
	return `{
		"version": "1.0.0",
		"fuels": {
			"natural_gas": {"co2": 56.1, "ch4": 0.001, "n2o": 0.0001,
				"heating_value": 0.0373, "unit": "GJ/m3",
				"source": "IPCC 2006", "year": 2006}
		},
		"electricity": {
			"Dubai": {"factor": 0.44, "unit": "kg CO2e/kWh", "source": "DEWA 2023", "year": 2023}
		},
		"transport": {
			"suv": {"factor": 0.24, "unit": "kg CO2e/km", "source": "GHG Protocol", "year": 2023}
		},
		"cooling": {
			"split_ac": {"factor": 0.45, "unit": "kg CO2e/kWh", "source": "IEA 2023", "year": 2023}
		},
		"water": {
			"groundwater": {"factor": 0.35, "unit": "kg CO2e/m3", "source": "FAO 2023", "year": 2023}
		},
		"waste": {
			"recycling": {"factor": -0.234, "unit": "kg CO2e/kg", "source": "EPA WARM", "year": 2023}
		},
		"gwp": {
			"CO2": {"factor": 1, "source": "IPCC AR6", "year": 2021},
			"CH4": {"factor": 29.8, "source": "IPCC AR6", "year": 2021},
			"N2O": {"factor": 273, "source": "IPCC AR6", "year": 2021}
		}
	}`
}

func TestParseValid(t *testing.T) {
	table, err := Parse([]byte(minimalTable()))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", table.Version)

	f, err := table.Lookup(CategoryWaste, "recycling", "")
	require.NoError(t, err)
	assert.Negative(t, f.CO2Factor)
}

func TestParseRejectsMalformedData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(string) string
	}{
		{
			name:   "not json",
			mutate: func(string) string { return "{" },
		},
		{
			name: "missing category",
			mutate: func(doc string) string {
				return `{"version": "1.0.0", "fuels": {}}`
			},
		},
		{
			name: "missing source citation",
			mutate: func(doc string) string {
				return replace(doc, `"source": "DEWA 2023", `, "")
			},
		},
		{
			name: "version not semver",
			mutate: func(doc string) string {
				return replace(doc, `"version": "1.0.0"`, `"version": "latest"`)
			},
		},
		{
			name: "negative factor outside waste",
			mutate: func(doc string) string {
				return replace(doc, `"factor": 0.24`, `"factor": -0.24`)
			},
		},
		{
			name: "zero heating value",
			mutate: func(doc string) string {
				return replace(doc, `"heating_value": 0.0373`, `"heating_value": 0`)
			},
		},
		{
			name: "CO2 GWP not one",
			mutate: func(doc string) string {
				return replace(doc, `"CO2": {"factor": 1,`, `"CO2": {"factor": 2,`)
			},
		},
		{
			name: "factor unit without denominator",
			mutate: func(doc string) string {
				return replace(doc, `"unit": "kg CO2e/km"`, `"unit": "kg CO2e"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(minimalTable())))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLoad), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoad))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.json")
	require.NoError(t, writeFile(path, minimalTable()))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", table.Version)
}
