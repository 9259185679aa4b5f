package batch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func listDir(t testing.TB, dir string) []string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteResults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	results := []Result{
		{Index: 0, Input: "https://a.test", Body: []byte("OK"), StatusCode: 200},
		{Index: 1, Input: "https://b.test", StatusCode: 0, Err: errors.New("boom")},
	}

	var stderr bytes.Buffer
	written, err := Writer{Stderr: &stderr}.Write(results, dir)
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(written))
	require.Equal(t, dir, written)

	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "OK", string(contents))
	require.Equal(t, []string{"1.txt"}, listDir(t, dir))
	require.Equal(t, "Item 2 (\"https://b.test\"): boom\n", stderr.String())
}

func TestWriteResultsErrorBody(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Index: 0, Input: "B000000001", Body: []byte(`{"error": "not found"}`), StatusCode: 404, Err: errors.New("HTTP 404")},
		{Index: 1, Input: "B000000002", Body: []byte("<html/>"), StatusCode: 200},
		{Index: 2, Input: "B000000003", StatusCode: 0, Err: errors.New("connection refused")},
	}

	var stderr bytes.Buffer
	_, err := Writer{Stderr: &stderr, Verbose: true}.Write(results, dir)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"1.err", "2.txt"}, listDir(t, dir))

	contents, err := os.ReadFile(filepath.Join(dir, "1.err"))
	require.NoError(t, err)
	require.Equal(t, `{"error": "not found"}`, string(contents))

	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Equal(t, []string{
		`Item 1 ("B000000001"): HTTP 404`,
		`Item 2: HTTP 200`,
		`Item 3 ("B000000003"): connection refused`,
	}, lines)
}

func TestWriteResultsIdempotent(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Index: 0, Input: "a", Body: []byte("first body"), StatusCode: 200},
		{Index: 1, Input: "b", Body: []byte("second"), StatusCode: 200},
	}

	w := Writer{Stderr: &bytes.Buffer{}}
	_, err := w.Write(results, dir)
	require.NoError(t, err)
	_, err = w.Write(results, dir)
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"1.txt", "2.txt"}, listDir(t, dir))
	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "first body", string(contents))

	// a shorter body must not leave trailing bytes from the previous run
	results[0].Body = []byte("x")
	_, err = w.Write(results, dir)
	require.NoError(t, err)
	contents, err = os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "x", string(contents))
}

func TestWriteResultsOrdersByIndex(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Index: 2, Input: "c", Err: errors.New("third")},
		{Index: 0, Input: "a", Err: errors.New("first")},
		{Index: 1, Input: "b", Err: errors.New("second")},
	}

	var stderr bytes.Buffer
	_, err := Writer{Stderr: &stderr}.Write(results, dir)
	require.NoError(t, err)
	require.Equal(t, "Item 1 (\"a\"): first\nItem 2 (\"b\"): second\nItem 3 (\"c\"): third\n", stderr.String())
	require.Empty(t, listDir(t, dir))
}

func TestWriteResultsDefaultDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(cwd)

	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	written, err := Writer{
		Stderr: &bytes.Buffer{},
		Now:    func() time.Time { return now },
	}.Write([]Result{{Index: 0, Input: "a", Body: []byte("A")}}, "")
	require.NoError(t, err)
	require.Equal(t, "batch_20240309_140507", filepath.Base(written))
	require.True(t, filepath.IsAbs(written))

	contents, err := os.ReadFile(filepath.Join(written, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "A", string(contents))
}

func TestWriteResultsExistingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.me"), []byte("x"), 0o644))

	_, err := WriteResults([]Result{{Index: 0, Input: "a", Body: []byte("A")}}, dir, false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"1.txt", "keep.me"}, listDir(t, dir))
}

func TestDefaultDirName(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 3, 0, 0, time.UTC)
	require.Equal(t, "batch_20261018_090300", DefaultDirName(now))
}
