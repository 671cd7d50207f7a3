package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const text = "she sells sea shells by the sea shore\n"

func TestModeFromName(t *testing.T) {
	type testRow struct {
		argv0  string
		expect mode
	}

	testData := [...]testRow{
		{argv0: "huffstream", expect: modeCompress},
		{argv0: "/usr/local/bin/compress", expect: modeCompress},
		{argv0: "./uncompress", expect: modeDecompress},
		{argv0: "huff-uncompress", expect: modeDecompress},
	}
	for _, row := range testData {
		t.Run(row.argv0, func(t *testing.T) {
			require.Equal(t, row.expect, modeFromName(row.argv0))
		})
	}
}

func TestRun_FileRoundTrip(t *testing.T) {
	t.Setenv("HUFFSTREAM_LOGGER_PRETTIER", "false")
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte(text), 0o644))

	var compressed, stderr bytes.Buffer
	code := run([]string{"compress", "-b", input}, strings.NewReader(""), &compressed, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.True(t, bytes.HasPrefix(compressed.Bytes(), []byte("38I")))

	var decompressed bytes.Buffer
	code = run([]string{"uncompress"}, &compressed, &decompressed, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, text, decompressed.String())
}

func TestRun_Flags(t *testing.T) {
	t.Setenv("HUFFSTREAM_LOGGER_LEVEL", "error")

	var compressed, stderr bytes.Buffer
	code := run([]string{"uncompress", "-c"}, strings.NewReader(text), &compressed, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var decompressed bytes.Buffer
	code = run([]string{"huffstream", "-d"}, &compressed, &decompressed, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Equal(t, text, decompressed.String())
	require.Empty(t, stderr.String())
}

func TestRun_Empty(t *testing.T) {
	var out, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"compress"}, strings.NewReader(""), &out, &stderr))
	require.Zero(t, out.Len())
	require.Equal(t, 0, run([]string{"uncompress"}, strings.NewReader(""), &out, &stderr))
	require.Zero(t, out.Len())
}

func TestRun_QuietOnSuccess(t *testing.T) {
	// Default config: level info, pretty console output.
	var compressed, decompressed, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"compress"}, strings.NewReader(text), &compressed, &stderr))
	require.Equal(t, 0, run([]string{"uncompress"}, &compressed, &decompressed, &stderr))
	require.Equal(t, text, decompressed.String())
	require.Empty(t, stderr.String())
}

func TestRun_Errors(t *testing.T) {
	var out, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"huffstream", "-c", "-d"}, strings.NewReader(""), &out, &stderr))
	require.Equal(t, 2, run([]string{"huffstream", "a", "b"}, strings.NewReader(""), &out, &stderr))
	require.Equal(t, 1, run([]string{"huffstream", filepath.Join(t.TempDir(), "missing")}, strings.NewReader(""), &out, &stderr))
	require.Equal(t, 1, run([]string{"uncompress"}, strings.NewReader("not a stream"), &out, &stderr))
	require.Equal(t, 1, run([]string{"huffstream", "-config", filepath.Join(t.TempDir(), "missing.yaml")}, strings.NewReader(""), &out, &stderr))
}
