package ingest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/factors"
	"github.com/carbonfocus/carbonfocus/internal/ingest"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const facilityJSON = `{
	"name": "Dubai Manufacturing Plant",
	"region": "Dubai",
	"fuels": [
		{"type": "natural_gas", "amount": 50000, "unit": "m3"},
		{"type": "diesel", "amount": 10000, "unit": "L"}
	],
	"refrigerants": [
		{"type": "R410A", "amount": 12}
	],
	"electricity": {
		"amount_kwh": 1000000,
		"method": "market_based",
		"renewable_percentage": 15
	},
	"transport": [
		{"mode": "car_medium", "distance": 50000},
		{"mode": "airplane_gcc", "distance": 20000}
	],
	"water": [
		{"type": "desalinated_water", "amount": 5000, "unit": "m3"}
	],
	"waste": [
		{"type": "recycling", "amount": 1200, "unit": "kg"}
	]
}`

func TestLoadFacilityJSON(t *testing.T) {
	path := writeTemp(t, "facility.json", facilityJSON)

	facility, err := ingest.LoadFacility(path)
	require.NoError(t, err)
	assert.Equal(t, "Dubai Manufacturing Plant", facility.Name)

	records := facility.Records()
	require.Len(t, records, 8)

	// Document order: fuels, refrigerants, electricity, transport,
	// cooling, water, waste.
	assert.Equal(t, factors.CategoryFuel, records[0].Category)
	assert.Equal(t, calc.Scope1, records[0].Scope)
	assert.Equal(t, "natural_gas", records[0].Key)

	assert.Equal(t, factors.CategoryRefrigerant, records[2].Category)
	assert.Equal(t, "kg", records[2].Unit, "refrigerant unit defaults to kg")

	electricity := records[3]
	assert.Equal(t, calc.Scope2, electricity.Scope)
	assert.Equal(t, "Dubai", electricity.Region, "facility region applied")
	assert.Equal(t, calc.MethodMarketBased, electricity.Method)
	assert.InDelta(t, 15, electricity.RenewablePercentage, 1e-9)

	assert.Equal(t, "km", records[4].Unit, "transport unit defaults to km")

	water := records[6]
	assert.Equal(t, factors.CategoryWater, water.Category)
	assert.Equal(t, "Dubai", water.Region)
}

func TestLoadFacilityYAML(t *testing.T) {
	path := writeTemp(t, "facility.yaml", `
name: Riyadh Office
region: Riyadh
electricity:
  amount_kwh: 250000
transport:
  - mode: suv
    distance: 12000
`)

	facility, err := ingest.LoadFacility(path)
	require.NoError(t, err)

	records := facility.Records()
	require.Len(t, records, 2)
	assert.Equal(t, calc.Scope2, records[0].Scope)
	assert.Equal(t, "Riyadh", records[0].Region)
	assert.Equal(t, "suv", records[1].Key)
}

func TestLoadFacilityErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "missing name",
			file:    "f.json",
			content: `{"region": "Dubai"}`,
		},
		{
			name:    "negative amount",
			file:    "f.json",
			content: `{"name": "X", "fuels": [{"type": "diesel", "amount": -1, "unit": "L"}]}`,
		},
		{
			name:    "unknown method",
			file:    "f.json",
			content: `{"name": "X", "electricity": {"amount_kwh": 100, "method": "vibes_based"}}`,
		},
		{
			name:    "renewable above 100",
			file:    "f.json",
			content: `{"name": "X", "electricity": {"amount_kwh": 100, "renewable_percentage": 150}}`,
		},
		{
			name:    "malformed json",
			file:    "f.json",
			content: `{`,
		},
		{
			name:    "malformed yaml",
			file:    "f.yaml",
			content: "name: [unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ingest.LoadFacility(writeTemp(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFacilityMissingFile(t *testing.T) {
	_, err := ingest.LoadFacility(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
