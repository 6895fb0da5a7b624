// Package safety implements the keyword guard applied to every request
// before any lookup. The blocked list is intentionally small; a real
// moderation model is out of scope.
package safety

import (
	"regexp"
	"strings"

	"github.com/knsugi/wordlens/internal/logger"
)

var blockedTerms = []string{
	"weapon",
	"bomb",
	"explosive",
	"explicit",
	"porn",
	"pornography",
	"hate",
	"self-harm",
	"suicide",
	"kill",
	"murder",
	"drug",
	"narcotic",
	"terrorism",
	"racist",
	"slur",
}

const refusalMessage = "Sorry, I can't help with that request. " +
	"Please enter a valid English word or image path."

// Gate rejects input containing a blocked term. Stateless after
// construction; safe to share.
type Gate struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewGate compiles a whole-word pattern per blocked term. Word-boundary
// matching keeps benign words like "skilled" or "killer" from tripping
// on "kill".
func NewGate() *Gate {
	g := &Gate{terms: blockedTerms}
	g.patterns = make([]*regexp.Regexp, len(g.terms))
	for i, term := range g.terms {
		g.patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return g
}

// IsSafe reports whether the text passes the filter. Empty or
// whitespace-only input passes; it becomes a usage hint downstream,
// not a refusal.
func (g *Gate) IsSafe(text string) bool {
	if strings.TrimSpace(text) == "" {
		logger.Debug("empty input treated as safe")
		return true
	}

	lowered := strings.ToLower(text)
	for i, p := range g.patterns {
		if p.MatchString(lowered) {
			logger.Info("blocked term %q detected in input", g.terms[i])
			return false
		}
	}
	return true
}

// RefusalMessage is the fixed reply shown when the gate rejects input.
func (g *Gate) RefusalMessage() string {
	return refusalMessage
}
