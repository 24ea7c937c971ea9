package patch

import (
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-lang-sync/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// searchWindow bounds how many lines away from its recorded position a
	// hunk is looked for.
	searchWindow = 1000

	// contextThreshold is the largest edit distance, relative to the line
	// length, a context line may have and still count as a fuzzy match.
	contextThreshold = 0.5
)

// newMatcher returns a diff-match-patch instance used to score context
// lines. DiffTimeout is disabled so that results never depend on wall-clock
// time.
func newMatcher() *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	return dmp
}

// Apply applies hunks to original in order and returns the patched text
// together with one success flag per hunk.
//
// Each hunk is placed in three stages:
//  1. its full old text (context and removed lines) at the recorded line;
//  2. the same exact block searched outward, nearest first, within
//     searchWindow lines;
//  3. a fuzzy placement where removed lines must still match exactly and
//     context lines may differ by up to contextThreshold.
//
// A hunk whose new text is already in place is reported as failed, so a
// replayed patch never duplicates content. A failed hunk leaves the text as
// it was; later hunks are still attempted. Apply is deterministic for a
// given (hunks, original).
func Apply(hunks []Hunk, original string) models.PatchResult {
	dmp := newMatcher()

	text := splitLines(original)
	applied := make([]bool, len(hunks))
	lineDelta := 0

	for i, h := range hunks {
		oldBlock, newBlock := h.blocks()
		if equalBlocks(oldBlock, newBlock) {
			// context-only hunk, nothing to change
			applied[i] = true
			continue
		}

		expected := h.expectedLine(lineDelta)
		at, ok := findExact(text, oldBlock, expected)
		if !ok {
			at, ok = findFuzzy(dmp, text, h, expected)
		}
		if !ok || matchesAt(text, newBlock, at) {
			continue
		}

		block := h.render(text[at:])
		next := make([]string, 0, len(text)-len(oldBlock)+len(block))
		next = append(next, text[:at]...)
		next = append(next, block...)
		next = append(next, text[at+len(oldBlock):]...)

		text = next
		applied[i] = true
		lineDelta = at - h.expectedLine(0) + h.growth()
	}

	return models.PatchResult{NewText: strings.Join(text, ""), HunkApplied: applied}
}

// ApplyText is Parse followed by Apply.
func ApplyText(patchText, original string) (models.PatchResult, error) {
	hunks, err := Parse(patchText)
	if err != nil {
		return models.PatchResult{NewText: original}, err
	}
	return Apply(hunks, original), nil
}

// findExact returns the start of block in text closest to expected.
func findExact(text, block []string, expected int) (int, bool) {
	found := -1
	walkOutward(expected, len(text)-len(block), func(at int) bool {
		if matchesAt(text, block, at) {
			found = at
			return true
		}
		return false
	})
	return found, found >= 0
}

// findFuzzy scores every candidate position in the window and returns the
// one with the smallest total context distance, nearest first on ties.
func findFuzzy(dmp *diffmatchpatch.DiffMatchPatch, text []string, h Hunk, expected int) (int, bool) {
	oldLen := h.oldLen()
	if oldLen == 0 {
		return 0, false
	}

	best, bestScore := -1, 0
	walkOutward(expected, len(text)-oldLen, func(at int) bool {
		score, ok := h.fuzzyScore(dmp, text[at:at+oldLen])
		if ok && (best < 0 || score < bestScore) {
			best, bestScore = at, score
		}
		return false
	})
	return best, best >= 0
}

// walkOutward calls visit for expected, expected-1, expected+1, ... within
// [0, last] and searchWindow, until visit returns true.
func walkOutward(expected, last int, visit func(at int) bool) {
	if last < 0 {
		return
	}
	if expected > last {
		expected = last
	}
	for d := 0; d <= searchWindow; d++ {
		lo, hi := expected-d, expected+d
		if lo < 0 && hi > last {
			return
		}
		if lo >= 0 && visit(lo) {
			return
		}
		if d > 0 && hi <= last && visit(hi) {
			return
		}
	}
}

// fuzzyScore compares the hunk's old lines with window. Removed lines must
// match exactly and at least one line must be an exact anchor.
func (h Hunk) fuzzyScore(dmp *diffmatchpatch.DiffMatchPatch, window []string) (int, bool) {
	score, anchored, j := 0, false, 0
	for _, l := range h.Lines {
		switch l.Op {
		case diffmatchpatch.DiffInsert:
			continue
		case diffmatchpatch.DiffDelete:
			if window[j] != l.Text {
				return 0, false
			}
			anchored = true
		case diffmatchpatch.DiffEqual:
			if window[j] == l.Text {
				anchored = true
				break
			}
			dist := dmp.DiffLevenshtein(dmp.DiffMain(l.Text, window[j], false))
			longest := max(utf8.RuneCountInString(l.Text), utf8.RuneCountInString(window[j]), 1)
			if float64(dist)/float64(longest) > contextThreshold {
				return 0, false
			}
			score += dist
		}
		j++
	}
	return score, anchored
}

// render builds the replacement for the hunk's old lines, keeping the local
// version of context lines so that fuzzy matches do not rewrite them.
func (h Hunk) render(local []string) []string {
	out := make([]string, 0, h.newLen())
	j := 0
	for _, l := range h.Lines {
		switch l.Op {
		case diffmatchpatch.DiffEqual:
			out = append(out, local[j])
			j++
		case diffmatchpatch.DiffDelete:
			j++
		case diffmatchpatch.DiffInsert:
			out = append(out, l.Text)
		}
	}
	return out
}

// expectedLine is the zero-based line index where the hunk should start in
// a text that already received lineDelta net lines from earlier hunks.
func (h Hunk) expectedLine(lineDelta int) int {
	line := h.OldStart - 1
	if h.OldLines == 0 {
		// pure insertion: OldStart names the line after which to insert
		line = h.OldStart
	}
	line += lineDelta
	if line < 0 {
		return 0
	}
	return line
}

// blocks returns the hunk's view of the original (context and removed
// lines) and of the result (context and inserted lines).
func (h Hunk) blocks() (oldBlock, newBlock []string) {
	for _, l := range h.Lines {
		if l.Op != diffmatchpatch.DiffInsert {
			oldBlock = append(oldBlock, l.Text)
		}
		if l.Op != diffmatchpatch.DiffDelete {
			newBlock = append(newBlock, l.Text)
		}
	}
	return oldBlock, newBlock
}

func (h Hunk) oldLen() int {
	n := 0
	for _, l := range h.Lines {
		if l.Op != diffmatchpatch.DiffInsert {
			n++
		}
	}
	return n
}

func (h Hunk) newLen() int {
	n := 0
	for _, l := range h.Lines {
		if l.Op != diffmatchpatch.DiffDelete {
			n++
		}
	}
	return n
}

func (h Hunk) growth() int {
	return h.newLen() - h.oldLen()
}

// splitLines splits text after every newline. The last element has no
// newline when text does not end with one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func matchesAt(text, block []string, at int) bool {
	if at < 0 || at+len(block) > len(text) {
		return false
	}
	return equalBlocks(text[at:at+len(block)], block)
}

func equalBlocks(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
