// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_CountDefault(t *testing.T) {
	out, _, err := run(t, "count", "-o", "text")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 100)
	assert.Equal(t, "lnum_var_name: lnum_1\tnatural_number: 1", lines[0])
	assert.Equal(t, "lnum_var_name: lnum_100\tnatural_number: 100", lines[99])
}

func TestRoot_FlagsReachCommands(t *testing.T) {
	out, _, err := run(t, "count", "2", "--output", "text", "--label-prefix", "x")
	require.NoError(t, err)
	assert.Equal(t, "lnum_var_name: x1\tnatural_number: 1\nlnum_var_name: x2\tnatural_number: 2\n", out)
}

func TestRoot_MaxNodes(t *testing.T) {
	_, _, err := run(t, "count", "5", "-o", "text", "--max-nodes", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
}

func TestRoot_SlabSize(t *testing.T) {
	out, _, err := run(t, "count", "3", "-o", "text", "--slab-size", "1")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "\n"))

	_, _, err = run(t, "count", "3", "--slab-size=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slab_size must be positive")
}

func TestRoot_ErrorWithoutUsage(t *testing.T) {
	out, errOut, err := run(t, "count", "5", "-o", "text", "--max-nodes", "2")
	require.Error(t, err)
	assert.NotContains(t, out, "Usage:")
	assert.NotContains(t, errOut, "Usage:")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lnum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 3\noutput: json\n"), 0o644))

	out, _, err := run(t, "count", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"label": "lnum_3"`)
	assert.NotContains(t, out, "lnum_4")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "add", "1", "1", "-o", "text", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "sum\tnatural_number: 2")
	assert.Contains(t, errOut, "add finished")
}

func TestRoot_InvalidOutput(t *testing.T) {
	_, _, err := run(t, "count", "1", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRoot_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lnum v"+Version)
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"count", "add", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
