package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func putVarint32(buf []byte, x uint32) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

func putFixed32(buf []byte, x uint32) []byte {
	return append(buf, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// buildFixture encodes three sorted entries with a single restart point,
// matching the layout cmd/blockdump expects to read from disk.
func buildFixture() []byte {
	var data []byte
	data = putVarint32(data, 0)
	data = putVarint32(data, 3)
	data = putVarint32(data, 1)
	data = append(data, []byte("bar")...)
	data = append(data, []byte("1")...)

	data = putVarint32(data, 0)
	data = putVarint32(data, 3)
	data = putVarint32(data, 1)
	data = append(data, []byte("foo")...)
	data = append(data, []byte("2")...)

	data = putVarint32(data, 0)
	data = putVarint32(data, 3)
	data = putVarint32(data, 1)
	data = append(data, []byte("qux")...)
	data = append(data, []byte("3")...)

	block := append([]byte{}, data...)
	block = putFixed32(block, 0) // restart array: [0]
	block = putFixed32(block, 1) // trailer: R=1
	return block
}

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "block.bin")
	require.NoError(t, os.WriteFile(path, buildFixture(), 0644))
	return path
}

func TestRunFullScan(t *testing.T) {
	path := writeFixture(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "bar\t1", lines[0])
	assert.Equal(t, "foo\t2", lines[1])
	assert.Equal(t, "qux\t3", lines[2])
}

func TestRunSeek(t *testing.T) {
	path := writeFixture(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-seek", "foo", path}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Equal(t, "foo\t2\n", stdout.String())
}

func TestRunReverse(t *testing.T) {
	path := writeFixture(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-reverse", path}, &stdout, &stderr)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "qux\t3", lines[0])
	assert.Equal(t, "bar\t1", lines[2])
}

func TestRunWithConfig(t *testing.T) {
	path := writeFixture(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "blockdump.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"comparator":"bytewise","log_level":"debug"}`), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, path}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "bar\t1")
}

func TestRunMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "missing.bin")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "blockdump:")
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage:")
}
