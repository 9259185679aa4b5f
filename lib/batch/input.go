package batch

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadInputs reads one input per line from the file at path, "-" reads
// from stdin.
func LoadInputs(path string) ([]string, error) {
	if path == "-" {
		return ReadInputs(os.Stdin, "stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadInputs(f, path)
}

// "\r\n" and a lone "\r" both end a line
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ReadInputs returns the trimmed, non-blank lines of r in order. name is only
// used to label the error when nothing is left.
func ReadInputs(r io.Reader, name string) ([]string, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var inputs []string
	for _, line := range strings.Split(newlines.Replace(string(contents)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("input file %q: %w", name, ErrEmptyInput)
	}
	return inputs, nil
}
