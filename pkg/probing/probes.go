// Package probing reads and tokenizes the kernel's virtual text files.
package probing

import (
	"os"
	"strconv"
	"strings"
)

// File reads a whole virtual file. Contents are small and produced by the
// kernel in one shot, so a single ReadFile is sufficient.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FileLines reads a file and splits it into lines.
func FileLines(path string) ([]string, error) {
	v, err := File(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(v, "\n"), "\n"), nil
}

// FirstLine reads a file and returns its first line only.
func FirstLine(path string) (string, error) {
	v, err := File(path)
	if err != nil {
		return "", err
	}
	if idx := strings.IndexByte(v, '\n'); idx >= 0 {
		return v[:idx], nil
	}
	return v, nil
}

// ParseUint parses an unsigned counter field, 0 on malformed input.
func ParseUint(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseInt parses a signed field, 0 on malformed input.
func ParseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFloat parses a float field, 0 on malformed input.
func ParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// IsNumeric reports whether s is non-empty and entirely decimal digits.
// Used to tell pid directories apart from the rest of the proc root.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
