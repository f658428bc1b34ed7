package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = "b\t2\na\tx\nb\t1\n\na\ty\nc\t\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "a\tx\nk\thé\n", "encode")
	require.NoError(t, err)
	assert.Equal(t, "61\t78\n6b\t68c3a9\n", out)
}

func TestEncode_MalformedLine(t *testing.T) {
	_, err := run(t, "a\tx\nno-tab\n", "encode")
	assert.ErrorContains(t, err, "line 2")
}

func TestGroup(t *testing.T) {
	want := "a\tx,y\nb\t2,1\nc\t\n"

	t.Run("memory", func(t *testing.T) {
		out, err := run(t, input, "group")
		require.NoError(t, err)
		assert.Equal(t, want, out)
	})

	t.Run("spill", func(t *testing.T) {
		dir := t.TempDir()
		out, err := run(t, input, "group", "--spill-dir", dir, "--metrics")
		require.NoError(t, err)
		assert.Equal(t, want, out)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("file and config", func(t *testing.T) {
		dir := t.TempDir()
		data := filepath.Join(dir, "records.tsv")
		require.NoError(t, os.WriteFile(data, []byte(input), 0o644))
		cfg := filepath.Join(dir, "shuffle.yaml")
		require.NoError(t, os.WriteFile(cfg, []byte("codecs:\n  value: cbor\n  compress: zstd\ngroup:\n  spill: true\n"), 0o644))

		out, err := run(t, "", "group", "-c", cfg, data)
		require.NoError(t, err)
		assert.Equal(t, want, out)
	})
}

func TestGroup_UnknownCodec(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "shuffle.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("codecs:\n  key: yaml\n"), 0o644))
	_, err := run(t, input, "group", "--config", cfg)
	assert.ErrorContains(t, err, "key codec")
}
