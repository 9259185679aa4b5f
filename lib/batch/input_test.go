package batch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInputs(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		expected []string
	}{
		{
			name:     "trims and drops blank lines",
			contents: "  a \n\n b\n\t\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "crlf line endings",
			contents: "https://example.com\r\nhttps://example.org\r\n",
			expected: []string{"https://example.com", "https://example.org"},
		},
		{
			name:     "lone cr line endings",
			contents: "a\rb\r\nc\n",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "no trailing newline",
			contents: "one\ntwo",
			expected: []string{"one", "two"},
		},
		{
			name:     "inner whitespace is kept",
			contents: "best coffee beans\n",
			expected: []string{"best coffee beans"},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			inputs, err := ReadInputs(strings.NewReader(test.contents), "inputs.txt")
			require.NoError(t, err)
			require.Equal(t, test.expected, inputs)
		})
	}
}

func TestReadInputsEmpty(t *testing.T) {
	for _, contents := range []string{"", "   ", "\n\n", " \t\n  \r\n"} {
		_, err := ReadInputs(strings.NewReader(contents), "inputs.txt")
		require.ErrorIs(t, err, ErrEmptyInput)
		require.Contains(t, err.Error(), "inputs.txt")
	}
}

func TestLoadInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "urls.txt")
	err := os.WriteFile(path, []byte("https://a.test\n\nhttps://b.test\n"), 0o644)
	require.NoError(t, err)

	inputs, err := LoadInputs(path)
	require.NoError(t, err)
	require.Equal(t, []string{"https://a.test", "https://b.test"}, inputs)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadInputs(empty)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = LoadInputs(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
