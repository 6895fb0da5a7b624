package vision

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelInfo is the curated (description, meaning) pair for a classifier
// label.
type LabelInfo struct {
	Description string
	Meaning     string
}

// Hand-curated entries for common classifier labels. Labels outside
// this table fall back to the generic template in Lookup.
var defaultLabelTable = map[string]LabelInfo{
	"tabby": {
		"A tabby cat with distinctive striped or spotted fur markings.",
		"A domestic cat pattern; one of the most common coat types in household cats.",
	},
	"tiger cat": {
		"A tiger cat (mackerel tabby) with bold striped markings.",
		"A domestic cat breed known for tiger-like stripes on its coat.",
	},
	"Siamese cat": {
		"A Siamese cat with a light body and dark points on the ears, face, and paws.",
		"A domestic cat breed known for its distinct coloration and vocal behavior.",
	},
	"Egyptian cat": {
		"An Egyptian Mau cat with a spotted coat and elegant build.",
		"One of the oldest domesticated cat breeds, originating from Egypt.",
	},
	"Persian cat": {
		"A Persian cat with long, luxurious fur and a flat face.",
		"A popular domestic breed known for its gentle temperament and long coat.",
	},
	"golden retriever": {
		"A golden retriever with a friendly expression and golden coat.",
		"A popular dog breed valued for its intelligence and gentle nature.",
	},
	"Labrador retriever": {
		"A Labrador retriever with a short, dense coat.",
		"One of the most popular dog breeds, often used as service and guide dogs.",
	},
	"German shepherd": {
		"A German shepherd dog with an alert posture.",
		"A working dog breed known for its intelligence, loyalty, and versatility.",
	},
	"cup": {
		"A cup - a small, open container used for drinking.",
		"A common household item for holding beverages, typically with a handle.",
	},
	"coffee mug": {
		"A coffee mug - a sturdy cup designed for hot beverages.",
		"A household drinkware item, larger than a teacup, often ceramic.",
	},
	"wooden spoon": {
		"A wooden spoon used for cooking and stirring.",
		"A kitchen utensil carved from wood, commonly used when cooking.",
	},
	"chair": {
		"A chair - a piece of furniture for sitting.",
		"A common furniture item with a seat, back, and often four legs.",
	},
	"folding chair": {
		"A folding chair - a portable, collapsible seating option.",
		"A lightweight chair designed to fold flat for easy storage and transport.",
	},
	"rocking chair": {
		"A rocking chair with curved legs that allows back-and-forth motion.",
		"A type of chair often associated with relaxation and front porches.",
	},
	"desk": {
		"A desk - a flat-surfaced table used for reading, writing, or working.",
		"A furniture piece commonly found in offices and study areas.",
	},
	"laptop": {
		"A laptop computer - a portable personal computer.",
		"An electronic device used for computing, communication, and entertainment.",
	},
	"cellular telephone": {
		"A mobile phone - a wireless communication device.",
		"A widely-used electronic device for calls, messaging, and internet access.",
	},
	"monitor": {
		"A computer monitor - an electronic display screen.",
		"An output device used to visually display information from a computer.",
	},
}

// DefaultLabelTable returns a copy of the curated label table so
// callers cannot mutate the package default.
func DefaultLabelTable() map[string]LabelInfo {
	table := make(map[string]LabelInfo, len(defaultLabelTable))
	for k, v := range defaultLabelTable {
		table[k] = v
	}
	return table
}

var titleCaser = cases.Title(language.English)

// Lookup returns the table entry for a label, synthesizing a generic
// description and meaning for labels the table does not know.
func Lookup(label string, table map[string]LabelInfo) LabelInfo {
	if info, ok := table[label]; ok {
		return info
	}
	return LabelInfo{
		Description: fmt.Sprintf("An image likely depicting: %s.", label),
		Meaning: fmt.Sprintf("'%s' is a concept or object recognized by the image classifier. "+
			"Consult a reference for more context.", titleCaser.String(label)),
	}
}
