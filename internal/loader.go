package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Loader reads the generator's inputs from disk.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// ReadParamLines returns the lines of a parameter file without terminators.
// The file is decoded as UTF-8; a leading byte order mark is dropped.
func (l *Loader) ReadParamLines(path string) ([]string, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// ReadTemplateLines returns the template's lines with their terminators
// intact, so pass-through lines can be copied byte for byte.
func (l *Loader) ReadTemplateLines(path string) ([]string, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

func (l *Loader) open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s: %w", path, ErrMissingInput)
		}
		return nil, fmt.Errorf("file %s: %w: %v", path, ErrMissingInput, err)
	}
	return f, nil
}

// SplitLines splits s after every newline. The final line is kept even when
// it has no terminator.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
