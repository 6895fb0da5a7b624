package lexicon

import (
	"sort"
	"strings"

	"github.com/knsugi/wordlens/internal/entry"
)

// Secondary senses consulted when the primary sense lacks examples or
// synonyms: senses[1] through senses[3].
const backfillSenses = 3

// Resolve assembles a WordEntry from a word and its ordered senses.
// Deterministic: the senses slice is the only input state.
func Resolve(word string, senses []entry.Sense) entry.WordEntry {
	word = strings.ToLower(strings.TrimSpace(word))

	if len(senses) == 0 {
		return entry.WordEntry{
			Word:          word,
			PartOfSpeech:  "unknown",
			Pronunciation: entry.PronunciationNA,
			Definition:    entry.NotFoundDefinition,
			Examples:      []string{},
			Synonyms:      []string{},
		}
	}

	primary := senses[0]
	return entry.WordEntry{
		Word:          word,
		PartOfSpeech:  entry.POSLabel(primary.Tag),
		Pronunciation: entry.PronunciationNA,
		Definition:    primary.Definition,
		Examples:      pickExamples(senses),
		Synonyms:      pickSynonyms(word, senses),
	}
}

func secondary(senses []entry.Sense) []entry.Sense {
	end := 1 + backfillSenses
	if end > len(senses) {
		end = len(senses)
	}
	if len(senses) < 2 {
		return nil
	}
	return senses[1:end]
}

// pickExamples takes up to MaxExamples from the primary sense. If it
// has none, the first secondary sense with examples supplies them;
// examples are never merged across senses.
func pickExamples(senses []entry.Sense) []string {
	src := senses[0].Examples
	if len(src) == 0 {
		for _, s := range secondary(senses) {
			if len(s.Examples) > 0 {
				src = s.Examples
				break
			}
		}
	}
	if len(src) > entry.MaxExamples {
		src = src[:entry.MaxExamples]
	}
	return append([]string{}, src...)
}

// senseSynonyms returns one sense's unique synonyms sorted
// alphabetically, the query word excluded, capped at MaxSynonyms.
func senseSynonyms(s entry.Sense, word string) []string {
	seen := make(map[string]struct{}, len(s.Synonyms))
	var out []string
	for _, syn := range s.Synonyms {
		if strings.EqualFold(syn, word) {
			continue
		}
		if _, ok := seen[syn]; ok {
			continue
		}
		seen[syn] = struct{}{}
		out = append(out, syn)
	}
	sort.Strings(out)
	if len(out) > entry.MaxSynonyms {
		out = out[:entry.MaxSynonyms]
	}
	return out
}

// pickSynonyms starts from the primary sense. When fewer than two
// remain it appends from the secondary senses in order, de-duplicates
// preserving first-seen order, and re-applies the cap.
func pickSynonyms(word string, senses []entry.Sense) []string {
	syns := senseSynonyms(senses[0], word)
	if len(syns) >= 2 {
		return syns
	}

	for _, s := range secondary(senses) {
		syns = append(syns, senseSynonyms(s, word)...)
	}

	seen := make(map[string]struct{}, len(syns))
	unique := make([]string, 0, len(syns))
	for _, s := range syns {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	if len(unique) > entry.MaxSynonyms {
		unique = unique[:entry.MaxSynonyms]
	}
	return unique
}
