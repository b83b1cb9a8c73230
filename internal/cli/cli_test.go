package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonfocus/carbonfocus/internal/calc"
	"github.com/carbonfocus/carbonfocus/internal/cli"
)

// execute runs the root command with a throwaway config so the test is
// independent of any user configuration.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	base := []string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--log-level", "error",
	}
	cmd.SetArgs(append(base, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestScope1Command(t *testing.T) {
	out, err := execute(t, "--output", "json",
		"calc", "scope1", "--fuel", "natural_gas", "--amount", "1000", "--unit", "m3")
	require.NoError(t, err)

	var result calc.EmissionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, calc.Scope1, result.Scope)
	assert.InDelta(t, 2.0946, result.TotalTCO2e, 0.001)
}

func TestScope1RefrigerantCommand(t *testing.T) {
	out, err := execute(t, "--output", "json",
		"calc", "scope1", "--refrigerant", "R410A", "--amount", "12", "--unit", "kg")
	require.NoError(t, err)

	var result calc.EmissionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 25.056, result.TotalTCO2e, 1e-9)
}

func TestScope2Command(t *testing.T) {
	out, err := execute(t, "--output", "json",
		"calc", "scope2", "--kwh", "50000", "--region", "Dubai",
		"--method", "market_based", "--renewable", "10")
	require.NoError(t, err)

	var result calc.EmissionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 19.8, result.TotalTCO2e, 1e-9)
}

func TestScope2UnknownRegion(t *testing.T) {
	_, err := execute(t, "calc", "scope2", "--kwh", "1000", "--region", "Mars")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars")
}

func TestScope3Command(t *testing.T) {
	out, err := execute(t, "--output", "json",
		"calc", "scope3", "--category", "waste", "--key", "recycling",
		"--amount", "1000", "--unit", "kg")
	require.NoError(t, err)

	var result calc.EmissionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, -0.234, result.TotalTCO2e, 1e-9)
}

func TestScope1TableOutput(t *testing.T) {
	out, err := execute(t,
		"calc", "scope1", "--fuel", "diesel", "--amount", "100", "--unit", "L")
	require.NoError(t, err)
	assert.Contains(t, out, "100 L of diesel")
	assert.Contains(t, out, "tCO2e")
	assert.Contains(t, out, "Breakdown")
}

func TestNegativeAmountFails(t *testing.T) {
	_, err := execute(t, "calc", "scope1", "--fuel", "diesel", "--amount", "-5", "--unit", "L")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestAssessCommand(t *testing.T) {
	facility := filepath.Join(t.TempDir(), "facility.json")
	require.NoError(t, os.WriteFile(facility, []byte(`{
		"name": "Test Site",
		"region": "Dubai",
		"fuels": [{"type": "natural_gas", "amount": 1000, "unit": "m3"}],
		"electricity": {"amount_kwh": 50000, "method": "market_based", "renewable_percentage": 10}
	}`), 0o600))

	reportPath := filepath.Join(t.TempDir(), "report.json")
	out, err := execute(t, "calc", "assess", "--file", facility, "--out", reportPath)
	require.NoError(t, err)

	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "Scope 1")

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, "Test Site", saved["facility"])
}

func TestAssessEmptyFacilityFails(t *testing.T) {
	facility := filepath.Join(t.TempDir(), "facility.json")
	require.NoError(t, os.WriteFile(facility, []byte(`{"name": "Empty Site"}`), 0o600))

	_, err := execute(t, "calc", "assess", "--file", facility)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no activity data")
}

func TestFactorsListCommand(t *testing.T) {
	out, err := execute(t, "factors", "list", "--category", "electricity")
	require.NoError(t, err)
	assert.Contains(t, out, "Dubai")
	assert.Contains(t, out, "DEWA")
	assert.NotContains(t, out, "natural_gas")
}

func TestFactorsValidateRejectsBadFile(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"version": "1.0.0"}`), 0o600))

	_, err := execute(t, "factors", "validate", "--file", bad)
	assert.Error(t, err)
}

func TestCustomFactorTableRejectedAtStartup(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`not json`), 0o600))

	_, err := execute(t, "--factors", bad, "factors", "list")
	assert.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := execute(t, "--output", "xml", "factors", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
