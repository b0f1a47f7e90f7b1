package probing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))

	lines, err := FileLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestFirstLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o644))

	line, err := FirstLine(path)
	require.NoError(t, err)
	assert.Equal(t, "first", line)
}

func TestFirstLineWithoutNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("only"), 0o644))

	line, err := FirstLine(path)
	require.NoError(t, err)
	assert.Equal(t, "only", line)
}

func TestFileMissingReturnsError(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestParseHelpersZeroFillOnGarbage(t *testing.T) {
	assert.Equal(t, uint64(42), ParseUint(" 42 "))
	assert.Zero(t, ParseUint("x"))
	assert.Zero(t, ParseUint("-1"))
	assert.Equal(t, int64(-7), ParseInt("-7"))
	assert.Zero(t, ParseInt(""))
	assert.InDelta(t, 0.5, ParseFloat("0.50"), 1e-9)
	assert.Zero(t, ParseFloat("NaN%"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("1234"))
	assert.True(t, IsNumeric("7"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a4"))
	assert.False(t, IsNumeric("acpi"))
	assert.False(t, IsNumeric("-1"))
}

func BenchmarkFile(b *testing.B) {
	if _, err := os.Stat("/proc/stat"); os.IsNotExist(err) {
		b.Skip("skipping: /proc not available")
	}
	for i := 0; i < b.N; i++ {
		File("/proc/stat")
	}
}

func BenchmarkFileLines(b *testing.B) {
	if _, err := os.Stat("/proc/stat"); os.IsNotExist(err) {
		b.Skip("skipping: /proc not available")
	}
	for i := 0; i < b.N; i++ {
		FileLines("/proc/stat")
	}
}
