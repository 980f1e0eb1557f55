package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s-hama/sigma-js-primes/config"
)

// execute runs the CLI and returns exit code, stdout and stderr.
func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvMinBound, "")
	t.Setenv(config.EnvMaxBound, "")
	t.Setenv(config.EnvAlgorithm, "")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "primes", cmd.Use)
	assert.Contains(t, cmd.Long, "PRIMES_")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{
		"info", "is-prime", "primes", "factors", "random", "coprime", "count",
		"index", "sum", "average", "median", "twins", "inverse", "watch",
	}

	for _, name := range commands {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "command %s should exist", name)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	defaults := map[string]string{
		"config":    "",
		"min":       "1",
		"max":       "8388607",
		"algorithm": "eratosthenes",
		"format":    "text",
		"lang":      "en",
		"seed":      "0",
		"verbose":   "false",
	}
	for name, def := range defaults {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, "flag --%s", name)
		assert.Equal(t, def, flag.DefValue, "flag --%s", name)
	}
}

func TestRangeFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"primes", "random", "count", "index", "sum", "average", "median", "twins"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.NotNil(t, sub.Flags().Lookup("start"), "%s --start", name)
		assert.NotNil(t, sub.Flags().Lookup("end"), "%s --end", name)
	}
}

// TestGolden pins the exact output of representative invocations.
func TestGolden(t *testing.T) {
	clearEnv(t)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	cases := []struct {
		name string
		args []string
		code int
	}{
		{"info_text", []string{"--max", "100", "info"}, ExitSuccess},
		{"info_json", []string{"--max", "100", "--algorithm", "atkin", "--format", "json", "info"}, ExitSuccess},
		{"primes_json", []string{"--max", "100", "--format", "json", "primes", "--start", "10", "--end", "30"}, ExitSuccess},
		{"factors_text", []string{"--max", "1000", "factors", "360"}, ExitSuccess},
		{"factors_formula", []string{"--max", "1000", "factors", "--formula", "360"}, ExitSuccess},
		{"twins_text", []string{"--max", "100", "twins", "--end", "20"}, ExitSuccess},
		{"average_json", []string{"--max", "100", "--format", "json", "average", "--end", "30"}, ExitSuccess},
		{"median_text", []string{"--max", "100", "median"}, ExitSuccess},
		{"inverse_text", []string{"--max", "100", "inverse", "3", "11"}, ExitSuccess},
		{"count_no_target_json", []string{"--max", "100", "--format", "json", "count", "--start", "14", "--end", "15"}, ExitFailure},
		{"is_prime_range_ja", []string{"--max", "100", "--lang", "ja", "is-prime", "101"}, ExitFailure},
		{"inverse_not_exist", []string{"--max", "100", "inverse", "6", "9"}, ExitFailure},
		{"config_out_of_range", []string{"--min", "50", "--max", "10", "info"}, ExitCommandError},
		{"config_invalid_enum_ja", []string{"--max", "10", "--algorithm", "wheel", "--lang", "ja", "info"}, ExitCommandError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, _ := execute(t, tc.args...)
			assert.Equal(t, tc.code, code)
			g.Assert(t, tc.name, []byte(stdout))
		})
	}
}

func TestQueries_Text(t *testing.T) {
	clearEnv(t)
	cases := map[string]struct {
		args []string
		want string
	}{
		"is-prime true":  {[]string{"--max", "100", "is-prime", "97"}, "true\n"},
		"is-prime false": {[]string{"--max", "100", "is-prime", "91"}, "false\n"},
		"primes window":  {[]string{"--max", "100", "primes", "--start", "80"}, "83 89 97\n"},
		"factors 555":    {[]string{"--max", "1000", "factors", "555"}, "3 5 37\n"},
		"coprime":        {[]string{"--max", "100", "coprime", "15", "28"}, "true\n"},
		"count":          {[]string{"--max", "20", "count"}, "8\n"},
		"index":          {[]string{"--max", "25", "index", "17", "--start", "10"}, "3\n"},
		"sum":            {[]string{"--max", "100", "sum", "--end", "10"}, "17\n"},
		"sum empty":      {[]string{"--max", "100", "sum", "--start", "14", "--end", "15"}, "0\n"},
		"average places": {[]string{"--max", "100", "average", "--end", "30", "--places", "0"}, "13\n"},
		"atkin window":   {[]string{"--min", "40", "--max", "60", "--algorithm", "ATKIN", "primes"}, "41 43 47 53 59\n"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			code, stdout, _ := execute(t, tc.args...)
			assert.Equal(t, ExitSuccess, code)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestRandom_Seeded(t *testing.T) {
	clearEnv(t)
	args := []string{"--max", "1000", "--seed", "9", "random", "--start", "100"}

	code, first, _ := execute(t, args...)
	require.Equal(t, ExitSuccess, code)
	_, second, _ := execute(t, args...)
	assert.Equal(t, first, second)

	p, err := strconv.ParseInt(strings.TrimSpace(first), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p, int64(101))
	assert.LessOrEqual(t, p, int64(997))

	_, out, _ := execute(t, "--max", "1000", "is-prime", strconv.FormatInt(p, 10))
	assert.Equal(t, "true\n", out)
}

func TestJSONEnvelope(t *testing.T) {
	clearEnv(t)
	code, stdout, _ := execute(t, "--max", "100", "--format", "json", "twins", "--start", "23", "--end", "29")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Twins [][2]int64 `json:"twins"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data.Twins)
	assert.Empty(t, resp.Data.Twins)
}

func TestUsageErrors(t *testing.T) {
	clearEnv(t)

	code, stdout, _ := execute(t, "--max", "100", "is-prime", "seven")
	assert.Equal(t, ExitCommandError, code)
	assert.Equal(t, "Error [E_USAGE]: invalid argument: n must be an integer, got \"seven\"\n", stdout)

	code, _, stderr := execute(t, "--max", "100", "is-prime")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "accepts 1 arg(s)")

	code, _, stderr = execute(t, "--format", "yaml", "info")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "invalid format")

	code, stdout, _ = execute(t, "--max", "100", "watch")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stdout, "E_USAGE")
}

func TestConfigLayers(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "primes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sieve:\n  min_bound: 10\n  max_bound: 50\n"), 0o644))

	_, stdout, _ := execute(t, "--config", path, "info")
	assert.Equal(t, "min_bound: 10\nmax_bound: 50\nalgorithm: eratosthenes\nprimes: 11\n", stdout)

	t.Setenv(config.EnvMaxBound, "30")
	_, stdout, _ = execute(t, "--config", path, "info")
	assert.Equal(t, "min_bound: 10\nmax_bound: 30\nalgorithm: eratosthenes\nprimes: 6\n", stdout)

	_, stdout, _ = execute(t, "--config", path, "--max", "20", "--algorithm", "atkin", "info")
	assert.Equal(t, "min_bound: 10\nmax_bound: 20\nalgorithm: atkin\nprimes: 4\n", stdout)

	require.NoError(t, os.WriteFile(path, []byte("sieve: [oops\n"), 0o644))
	code, stdout, _ := execute(t, "--config", path, "info")
	assert.Equal(t, ExitCommandError, code)
	assert.True(t, strings.HasPrefix(stdout, "Error [E_CONFIG]: "), stdout)
}

func TestInfo_Save(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")

	code, stdout, _ := execute(t, "--min", "10", "--max", "60", "--algorithm", "atkin", "info", "--save", path)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "min_bound: 10\nmax_bound: 60\nalgorithm: atkin\nprimes: 13\n", stdout)

	_, reloaded, _ := execute(t, "--config", path, "info")
	assert.Equal(t, stdout, reloaded)

	missing := filepath.Join(t.TempDir(), "no-such-dir", "saved.yaml")
	code, stdout, _ = execute(t, "--max", "60", "info", "--save", missing)
	assert.Equal(t, ExitCommandError, code)
	assert.True(t, strings.HasPrefix(stdout, "Error [E_CONFIG]: "), stdout)
}

func TestErrorDetails(t *testing.T) {
	clearEnv(t)
	args := []string{"--max", "100", "count", "--start", "14", "--end", "15"}

	code, stdout, _ := execute(t, args...)
	assert.Equal(t, ExitFailure, code)
	assert.Equal(t, "Error [E_NO_TARGET]: There are no prime numbers in the specified range.\n", stdout)

	code, stdout, _ = execute(t, append([]string{"--verbose"}, args...)...)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, "Details: {1 100 eratosthenes}\n")

	// Settings were never resolved, so there is nothing to attach.
	code, stdout, _ = execute(t, "--format", "json", "--min", "50", "--max", "10", "info")
	assert.Equal(t, ExitCommandError, code)
	assert.NotContains(t, stdout, "details")
}

func TestVerbose_LogsToCommandStderr(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := execute(t, "--verbose", "--max", "30", "info")
	require.Equal(t, ExitSuccess, code)
	assert.NotContains(t, stdout, "sieve ready")
	assert.Contains(t, stderr, `"msg":"sieve ready"`)
	assert.Contains(t, stderr, `"max_bound":30`)

	_, _, stderr = execute(t, "--max", "30", "info")
	assert.NotContains(t, stderr, "sieve ready")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(WrapExitError(ExitFailure, "no", nil)))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
}
