package textnorm

import "strings"

const tabWidth = 4

// Block canonicalizes text for the plain fenced-block pages. Line endings
// become single newlines, a leading BOM is dropped, tabs expand to spaces,
// form feeds act as line breaks, every line loses trailing whitespace and all
// leading spaces, runs of blank lines collapse to one, and leading/trailing
// blank lines are removed.
func Block(text string) string {
	lines := prepare(text)
	for i, line := range lines {
		lines[i] = strings.TrimLeft(line, " ")
	}
	return assemble(lines)
}

// Dedent canonicalizes text for side-by-side rendering. It applies the same
// pipeline as Block except that instead of stripping every leading space it
// removes only the minimum leading-space run common to all non-blank lines,
// preserving relative indentation.
func Dedent(text string) string {
	lines := prepare(text)

	margin := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin > 0 {
		for i, line := range lines {
			if line == "" {
				continue
			}
			lines[i] = line[margin:]
		}
	}
	return assemble(lines)
}

// prepare applies the policy-independent steps and returns trailing-trimmed
// lines.
func prepare(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\v")
	}
	return lines
}

// assemble collapses blank runs and trims blank edges.
func assemble(lines []string) string {
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
