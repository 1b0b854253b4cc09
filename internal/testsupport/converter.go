package testsupport

import (
	"context"
	"fmt"
	"path/filepath"
)

// FakeConverter serves canned document text keyed by file base name, so
// loader tests never spawn a subprocess.
type FakeConverter struct {
	Texts map[string]string
	Err   error
	Calls []string
}

// Convert returns the canned text for the file's base name.
func (f *FakeConverter) Convert(_ context.Context, path string) (string, error) {
	f.Calls = append(f.Calls, path)
	if f.Err != nil {
		return "", f.Err
	}
	text, ok := f.Texts[filepath.Base(path)]
	if !ok {
		return "", fmt.Errorf("no canned text for %s", filepath.Base(path))
	}
	return text, nil
}
