// Package entry holds the data model shared by the lexical and visual
// lookup tracks: senses as served by the lexicon, classifier predictions,
// and the structured entries rendered to the user.
package entry

// Caps applied when assembling a WordEntry.
const (
	MaxExamples = 2
	MaxSynonyms = 3
)

// Fixed strings reused across the resolvers.
const (
	PronunciationNA    = "N/A"
	NotFoundDefinition = "No entry found. Check spelling or try a simpler term."

	UnknownLabel             = "unknown object"
	LowConfidenceDescription = "The classifier could not identify this image with high confidence."
	LowConfidenceMeaning     = "Try uploading a clearer photo or a different angle."
)

var posLabels = map[string]string{
	"n": "noun",
	"v": "verb",
	"a": "adjective",
	"r": "adverb",
	"s": "adjective satellite",
}

// POSLabel maps a lexicon part-of-speech tag to its readable form.
// Unmapped tags come back as "unknown".
func POSLabel(tag string) string {
	if label, ok := posLabels[tag]; ok {
		return label
	}
	return "unknown"
}

// Sense is one lexical meaning of a word as stored in the lexicon.
// Senses arrive ordered by the lexicon's own ranking; the first one is
// the most common sense. Read-only for the resolver.
type Sense struct {
	Tag        string   `json:"tag"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	Synonyms   []string `json:"synonyms"`
}

// WordEntry is the assembled dictionary entry for a word lookup.
type WordEntry struct {
	Word          string   `json:"word"`
	PartOfSpeech  string   `json:"part_of_speech"`
	Pronunciation string   `json:"pronunciation"`
	Definition    string   `json:"definition"`
	Examples      []string `json:"examples"`
	Synonyms      []string `json:"synonyms"`
}

// NotFound reports whether the entry is the fixed no-entry fallback.
// The fallback renders with its own examples placeholder.
func (e WordEntry) NotFound() bool {
	return e.Definition == NotFoundDefinition
}

// Prediction is a single (label, probability) pair from the classifier.
// Predictions arrive ranked; only the top one is consulted.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// ImageEntry is the assembled entry for an image lookup. Confidence is
// the classifier's raw top-1 probability, kept even when the label was
// forced to "unknown object".
type ImageEntry struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Meaning     string  `json:"meaning"`
	Confidence  float64 `json:"confidence"`
}
