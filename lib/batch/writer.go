package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"
)

const defaultDirLayout = "20060102_150405"

// DefaultDirName is the output directory used when none is given.
func DefaultDirName(now time.Time) string {
	return "batch_" + now.Format(defaultDirLayout)
}

// Writer persists batch results as <N>.txt (successes) and <N>.err
// (failures with a body) where N is the 1-based item number.
type Writer struct {
	Verbose bool
	// Stderr receives per-item diagnostics, defaults to os.Stderr.
	Stderr io.Writer
	// Now is used for the default directory name, defaults to time.Now.
	Now func() time.Time
}

// WriteResults writes results to dir with a default Writer and returns the
// absolute path of the directory.
func WriteResults(results []Result, dir string, verbose bool) (string, error) {
	return Writer{Verbose: verbose}.Write(results, dir)
}

func (w Writer) Write(results []Result, dir string) (string, error) {
	stderr := w.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	if dir == "" {
		now := time.Now
		if w.Now != nil {
			now = w.Now
		}
		dir = DefaultDirName(now())
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	err = os.MkdirAll(abs, 0o755)
	if err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	ordered := slices.Clone(results)
	slices.SortStableFunc(ordered, func(a, b Result) int {
		return a.Index - b.Index
	})

	var errs []error
	for _, r := range ordered {
		n := r.Index + 1
		if r.Failed() {
			fmt.Fprintf(stderr, "Item %d (%q): %v\n", n, r.Input, r.Err)
			if len(r.Body) == 0 {
				continue
			}
			err := writeFile(abs, fmt.Sprintf("%d.err", n), r.Body)
			if err != nil {
				errs = append(errs, err)
			}
			continue
		}

		if w.Verbose {
			fmt.Fprintf(stderr, "Item %d: HTTP %d\n", n, r.StatusCode)
		}
		err := writeFile(abs, fmt.Sprintf("%d.txt", n), r.Body)
		if err != nil {
			errs = append(errs, err)
		}
	}

	return abs, errors.Join(errs...)
}

func writeFile(dir, name string, contents []byte) error {
	err := os.WriteFile(filepath.Join(dir, name), contents, 0o644)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Failed() {
			s.Failed++
			continue
		}
		s.Succeeded++
	}
	return s
}
