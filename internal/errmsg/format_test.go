//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSongDelete,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSongDelete,
			err:      errors.New("song not found"),
			expected: "Failed to delete song: song not found",
		},
		{
			name:     "import operation",
			op:       OpImportPath,
			err:      errors.New("permission denied"),
			expected: "Failed to import path: permission denied",
		},
		{
			name:     "add operation",
			op:       OpSongAdd,
			err:      errors.New("invalid duration"),
			expected: "Failed to add song: invalid duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSongSearch,
			context:  "jude",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpSongSearch,
			context:  "jude",
			err:      errors.New("not found"),
			expected: "Failed to find song 'jude': not found",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpImportPath,
			context:  "",
			err:      errors.New("no such file"),
			expected: "Failed to import path: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
