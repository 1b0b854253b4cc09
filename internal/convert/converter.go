package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"scriptdocs/internal/deps"
)

// ErrNoConverter marks the fatal startup condition of having no usable
// document converter on PATH.
var ErrNoConverter = errors.New("no document converter available")

// Converter turns a legacy document on disk into plain text.
type Converter interface {
	Convert(ctx context.Context, path string) (string, error)
}

// Executor abstracts subprocess execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

// Option configures a CommandConverter.
type Option func(*CommandConverter)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *CommandConverter) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// CommandConverter shells out to a document conversion binary.
type CommandConverter struct {
	binary  string
	tool    string
	timeout time.Duration
	exec    Executor
}

// Requirements lists the converter binaries in selection order.
func Requirements(preferred, fallback string) []deps.Requirement {
	return []deps.Requirement{
		{Name: "textutil", Command: preferred, Description: "macOS document converter"},
		{Name: "antiword", Command: fallback, Description: "Linux .doc converter"},
	}
}

// New selects the first available converter binary. Absence of both is fatal.
func New(preferred, fallback string, timeoutSeconds int, opts ...Option) (*CommandConverter, error) {
	selected, ok := deps.FirstAvailable(deps.Check(Requirements(preferred, fallback)))
	if !ok {
		return nil, fmt.Errorf("%w: install %q or %q", ErrNoConverter, preferred, fallback)
	}
	c := &CommandConverter{
		binary:  selected.Command,
		tool:    selected.Name,
		timeout: time.Duration(timeoutSeconds) * time.Second,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Tool returns the name of the selected converter.
func (c *CommandConverter) Tool() string { return c.tool }

// Convert runs the converter on path and returns decoded plain text. Any
// subprocess failure is fatal to the build; there is no retry.
func (c *CommandConverter) Convert(ctx context.Context, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("document path required")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	out, err := c.exec.Run(ctx, c.binary, c.args(path))
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", filepath.Base(path), err)
	}
	return decode(out), nil
}

func (c *CommandConverter) args(path string) []string {
	if c.tool == "textutil" {
		return []string{"-convert", "txt", "-stdout", path}
	}
	return []string{path}
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", binary, err, lastLine(msg))
		}
		return nil, fmt.Errorf("%s: %w", binary, err)
	}
	return stdout.Bytes(), nil
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
