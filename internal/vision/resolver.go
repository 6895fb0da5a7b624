// Package vision provides the visual lookup track: classifier access,
// image file validation, the curated label table, and the resolver
// that turns ranked predictions into an ImageEntry.
package vision

import (
	"github.com/knsugi/wordlens/internal/entry"
)

// ConfidenceFloor is the minimum top-1 probability for a label to be
// trusted.
const ConfidenceFloor = 0.15

// Resolve builds an ImageEntry from ranked predictions. Only the top
// prediction is consulted; there is no retry or re-ranking. Below the
// confidence floor the label is forced to "unknown object" but the
// real confidence value is kept for display.
func Resolve(predictions []entry.Prediction, table map[string]LabelInfo) entry.ImageEntry {
	if len(predictions) == 0 {
		return entry.ImageEntry{
			Label:       entry.UnknownLabel,
			Description: entry.LowConfidenceDescription,
			Meaning:     entry.LowConfidenceMeaning,
			Confidence:  0,
		}
	}

	top := predictions[0]
	if top.Probability < ConfidenceFloor {
		return entry.ImageEntry{
			Label:       entry.UnknownLabel,
			Description: entry.LowConfidenceDescription,
			Meaning:     entry.LowConfidenceMeaning,
			Confidence:  top.Probability,
		}
	}

	info := Lookup(top.Label, table)
	return entry.ImageEntry{
		Label:       top.Label,
		Description: info.Description,
		Meaning:     info.Meaning,
		Confidence:  top.Probability,
	}
}
