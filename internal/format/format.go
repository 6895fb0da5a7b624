// Package format renders structured entries as the stable `[field]`
// block text written to stdout, and parses that text back into a
// key/value map for machine consumption.
package format

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/knsugi/wordlens/internal/entry"
)

const (
	noExampleLine       = "  - (no example available)"
	notFoundExampleLine = "  - (none)"
)

// Word renders a word entry. Field order is fixed: word,
// part_of_speech, pronunciation, definition, examples, synonyms. The
// not-found fallback entry uses its own examples placeholder.
func Word(e entry.WordEntry) string {
	examples := noExampleLine
	if e.NotFound() {
		examples = notFoundExampleLine
	}
	if len(e.Examples) > 0 {
		lines := make([]string, len(e.Examples))
		for i, ex := range e.Examples {
			lines[i] = "  - " + ex
		}
		examples = strings.Join(lines, "\n")
	}

	synonyms := "(none)"
	if len(e.Synonyms) > 0 {
		synonyms = strings.Join(e.Synonyms, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[word]\n  %s\n", e.Word)
	fmt.Fprintf(&b, "[part_of_speech]\n  %s\n", e.PartOfSpeech)
	fmt.Fprintf(&b, "[pronunciation]\n  %s\n", e.Pronunciation)
	fmt.Fprintf(&b, "[definition]\n  %s\n", e.Definition)
	fmt.Fprintf(&b, "[examples]\n%s\n", examples)
	fmt.Fprintf(&b, "[synonyms]\n  %s", synonyms)
	return b.String()
}

// Image renders an image entry. Confidence is shown as a percentage
// with two decimals, e.g. 0.82 -> "82.00%".
func Image(e entry.ImageEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[label]\n  %s\n", e.Label)
	fmt.Fprintf(&b, "[description]\n  %s\n", e.Description)
	fmt.Fprintf(&b, "[meaning]\n  %s\n", e.Meaning)
	fmt.Fprintf(&b, "[confidence]\n  %.2f%%", e.Confidence*100)
	return b.String()
}

// ImageError renders the entry shown when an image cannot be processed
// at all. No confidence section; there was no classification.
func ImageError(message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[label]\n  unknown\n")
	fmt.Fprintf(&b, "[description]\n  %s\n", message)
	fmt.Fprintf(&b, "[meaning]\n  N/A")
	return b.String()
}

// Parse is the left inverse of the renderers for field text. A line of
// the form `[name]` starts a field; following lines are trimmed and
// space-joined into that field's value. List structure is not
// recovered: multiple example lines collapse into one string.
func Parse(text string) map[string]string {
	fields := make(map[string]string)
	current := ""

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.Trim(line, "[]")
			fields[current] = ""
			continue
		}
		if current != "" {
			fields[current] = strings.TrimSpace(fields[current] + " " + strings.TrimSpace(line))
		}
	}
	return fields
}
