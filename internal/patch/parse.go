// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package patch parses unified-diff hunks and applies them to text with
// fuzzy context matching.
//
// Parsing is strict: any structural problem is reported as [ErrPatchParse].
// Applying is line based: every hunk's old text is looked up at its recorded
// line, then outward within a bounded window, and only then fuzzily with
// context lines scored by diff-match-patch. Hunks that cannot be placed are
// reported in [models.PatchResult.HunkApplied] instead of returning an error.
package patch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// preamblePrefixes are file-level lines that may precede or separate hunks
// in a git-style diff.
var preamblePrefixes = []string{
	"diff ", "index ", "--- ", "+++ ", "new file mode", "deleted file mode",
	"old mode", "new mode", "similarity index", "rename from", "rename to",
	"Binary files",
}

// Line is one body line of a hunk. Text keeps its trailing newline unless
// the diff marked the line with "\ No newline at end of file".
type Line struct {
	Op   diffmatchpatch.Operation
	Text string
}

// Hunk is one contiguous change region of a unified diff.
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

// Parse splits patchText into hunks. A patch with no hunks at all parses
// to an empty slice; the caller decides whether that is acceptable.
func Parse(patchText string) ([]Hunk, error) {
	p := parser{}
	lines := strings.Split(patchText, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for i, line := range lines {
		if err := p.feed(line); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrPatchParse, i+1, err)
		}
	}
	if err := p.flush(); err != nil {
		return nil, fmt.Errorf("%w: at end of patch: %v", ErrPatchParse, err)
	}

	return p.hunks, nil
}

type parser struct {
	hunks   []Hunk
	current *Hunk
	oldSeen int
	newSeen int
}

func (p *parser) feed(line string) error {
	if strings.HasPrefix(line, "@@") {
		if err := p.flush(); err != nil {
			return err
		}
		return p.open(line)
	}

	if p.current == nil || p.complete() {
		switch {
		case line == "", isPreamble(line):
			if p.current != nil {
				return p.flush()
			}
			return nil
		case p.current == nil:
			return fmt.Errorf("unexpected content before hunk header: %q", line)
		case line[0] == '\\':
			return p.noNewline()
		default:
			return fmt.Errorf("hunk body longer than header (-%d,+%d)", p.current.OldLines, p.current.NewLines)
		}
	}

	if line == "" {
		// some producers strip the single space of an empty context line
		p.append(diffmatchpatch.DiffEqual, "")
		return nil
	}

	switch line[0] {
	case ' ':
		p.append(diffmatchpatch.DiffEqual, line[1:])
	case '-':
		p.append(diffmatchpatch.DiffDelete, line[1:])
	case '+':
		p.append(diffmatchpatch.DiffInsert, line[1:])
	case '\\':
		return p.noNewline()
	default:
		return fmt.Errorf("unknown hunk line prefix %q", line[:1])
	}

	if p.oldSeen > p.current.OldLines || p.newSeen > p.current.NewLines {
		return fmt.Errorf("hunk body longer than header (-%d,+%d)", p.current.OldLines, p.current.NewLines)
	}
	return nil
}

func (p *parser) open(header string) error {
	m := hunkHeaderRegex.FindStringSubmatch(header)
	if m == nil {
		return fmt.Errorf("malformed hunk header %q", header)
	}

	p.current = &Hunk{
		OldStart: atoiDefault(m[1], 0),
		OldLines: atoiDefault(m[2], 1),
		NewStart: atoiDefault(m[3], 0),
		NewLines: atoiDefault(m[4], 1),
	}
	p.oldSeen, p.newSeen = 0, 0
	return nil
}

func (p *parser) flush() error {
	if p.current == nil {
		return nil
	}
	if !p.complete() {
		return fmt.Errorf("hunk body shorter than header: got -%d,+%d want -%d,+%d",
			p.oldSeen, p.newSeen, p.current.OldLines, p.current.NewLines)
	}

	p.hunks = append(p.hunks, *p.current)
	p.current = nil
	return nil
}

func (p *parser) complete() bool {
	return p.oldSeen == p.current.OldLines && p.newSeen == p.current.NewLines
}

func (p *parser) append(op diffmatchpatch.Operation, text string) {
	p.current.Lines = append(p.current.Lines, Line{Op: op, Text: text + "\n"})
	switch op {
	case diffmatchpatch.DiffEqual:
		p.oldSeen++
		p.newSeen++
	case diffmatchpatch.DiffDelete:
		p.oldSeen++
	case diffmatchpatch.DiffInsert:
		p.newSeen++
	}
}

func (p *parser) noNewline() error {
	if p.current == nil || len(p.current.Lines) == 0 {
		return fmt.Errorf("no-newline marker without a preceding line")
	}
	last := &p.current.Lines[len(p.current.Lines)-1]
	last.Text = strings.TrimSuffix(last.Text, "\n")
	return nil
}

func isPreamble(line string) bool {
	for _, prefix := range preamblePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
