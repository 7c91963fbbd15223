package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command isolated from any user config file.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestRoot_Arguments(t *testing.T) {
	r := execute(t, "", "1h 1m 1s", "1y 1mo 1d", "1   minutes     1 milliseconds")
	require.NoError(t, r.err)
	assert.Equal(t, "3661000\n34236000000\n60001\n", r.stdout)
}

func TestRoot_NegativeAfterDoubleDash(t *testing.T) {
	r := execute(t, "", "--", "-3 days", "-200")
	require.NoError(t, r.err)
	assert.Equal(t, "-259200000\n-200\n", r.stdout)
}

func TestRoot_Stdin(t *testing.T) {
	r := execute(t, "1 minute\n\n1.5mo\n   \n250\n")
	require.NoError(t, r.err)
	assert.Equal(t, "60000\n3888000000\n250\n", r.stdout)
}

func TestRoot_InvalidExpressionsContinue(t *testing.T) {
	r := execute(t, "", "1h", "RANDOM STRING", "1d 1mo 1y", "2s")
	require.Error(t, r.err)
	assert.Equal(t, "2 of 4 expressions could not be parsed", r.err.Error())
	assert.Equal(t, "3600000\n2000\n", r.stdout)
	assert.Contains(t, r.stderr, "Format is invalid: RANDOM STRING\n")
	assert.Contains(t, r.stderr, "Format is invalid: 1d 1mo 1y\n")
}

func TestRoot_Comma(t *testing.T) {
	r := execute(t, "", "--comma", "1y 1mo 1d", "1.5s 0.5ms")
	require.NoError(t, r.err)
	assert.Equal(t, "34,236,000,000\n1,500.5\n", r.stdout)
}

func TestRoot_Unit(t *testing.T) {
	r := execute(t, "", "--unit", "h", "90 min", "2d")
	require.NoError(t, r.err)
	assert.Equal(t, "1.5\n48\n", r.stdout)

	r = execute(t, "", "-u", "DAYS", "2w")
	require.NoError(t, r.err)
	assert.Equal(t, "14\n", r.stdout)

	r = execute(t, "", "--unit", "fortnight", "2w")
	assert.EqualError(t, r.err, `invalid --unit value "fortnight"`)
}

func TestRoot_From(t *testing.T) {
	r := execute(t, "", "--from", "2024-03-01T12:00:00Z", "1d 2h", "1.5s")
	require.NoError(t, r.err)
	assert.Equal(t, "2024-03-02T14:00:00Z\n2024-03-01T12:00:01.5Z\n", r.stdout)

	r = execute(t, "", "--from", "2024-03-01T12:00:00Z", "--subtract", "1d 2h")
	require.NoError(t, r.err)
	assert.Equal(t, "2024-02-29T10:00:00Z\n", r.stdout)
}

func TestRoot_FromFlagErrors(t *testing.T) {
	r := execute(t, "", "--subtract", "1h")
	assert.EqualError(t, r.err, "--subtract requires --from to be specified")

	r = execute(t, "", "--from", "yesterday", "1h")
	assert.ErrorContains(t, r.err, "invalid --from value")

	r = execute(t, "", "--from", "now", "--unit", "h", "1h")
	assert.EqualError(t, r.err, "--unit cannot be used with --from")
}

func TestRoot_Lenient(t *testing.T) {
	r := execute(t, "", "1h30m")
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, "Format is invalid: 1h30m")

	r = execute(t, "", "--lenient", "1h30m", "1h 30m")
	require.NoError(t, r.err)
	assert.Equal(t, "5400000\n5400000\n", r.stdout)

	r = execute(t, "", "--lenient", "--from", "2024-03-01T12:00:00Z", "--subtract", "2d3h")
	require.NoError(t, r.err)
	assert.Equal(t, "2024-02-28T09:00:00Z\n", r.stdout)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("comma: true\nunit: s\n"), 0o644))

	r := execute(t, "", "--config", path, "1h")
	require.NoError(t, r.err)
	assert.Equal(t, "3,600\n", r.stdout)

	r = execute(t, "", "--config", path, "--unit", "ms", "1h")
	require.NoError(t, r.err)
	assert.Equal(t, "3,600,000\n", r.stdout)

	r = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1h")
	assert.ErrorContains(t, r.err, "failed to load config")
}

func TestRoot_ConfigUnitIgnoredWithFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: h\n"), 0o644))

	r := execute(t, "", "--config", path, "--from", "2024-03-01T12:00:00Z", "1d")
	require.NoError(t, r.err)
	assert.Equal(t, "2024-03-02T12:00:00Z\n", r.stdout)

	r = execute(t, "", "--config", path, "2d")
	require.NoError(t, r.err)
	assert.Equal(t, "48\n", r.stdout)

	r = execute(t, "", "--config", path, "--from", "2024-03-01T12:00:00Z", "--unit", "h", "1d")
	assert.EqualError(t, r.err, "--unit cannot be used with --from")
}

func TestRoot_StdinLongLineAndCRLF(t *testing.T) {
	long := strings.Repeat(" ", 100*1024) + "1h"
	r := execute(t, long+"\r\n2s\r\n")
	require.NoError(t, r.err)
	assert.Equal(t, "3600000\n2000\n", r.stdout)
}

func TestRoot_StdinStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var seen []string
	n, err := eachExpression(ctx, nil, strings.NewReader("1h\n2h\n3h\n"), func(expr string) {
		seen = append(seen, expr)
		if expr == "2h" {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"1h", "2h"}, seen)
}

func TestRoot_DebugLogging(t *testing.T) {
	r := execute(t, "", "--log-level", "debug", "--log-format", "json", "1h 1m", "bogus")
	require.Error(t, r.err)
	assert.Contains(t, r.stderr, `"msg":"duration_parsed"`)
	assert.Contains(t, r.stderr, `"value":"1h 1m"`)
	assert.Contains(t, r.stderr, `"msg":"duration_rejected"`)
	assert.Contains(t, r.stderr, `"reason":"unit without a quantity"`)
	assert.Contains(t, r.stderr, `"msg":"humandur_start"`)
	assert.Contains(t, r.stderr, `"lenient":false`)
}

func TestRoot_InvalidLogFormat(t *testing.T) {
	r := execute(t, "", "--log-format", "xml", "1h")
	assert.ErrorContains(t, r.err, "invalid logging flags")
}
