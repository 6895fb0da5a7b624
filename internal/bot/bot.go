// Package bot wires the request pipeline: safety gate, optional online
// delegate, offline resolvers, formatter. One request is fully
// resolved before the next is accepted; nothing here crashes the loop.
package bot

import (
	"context"

	"github.com/knsugi/wordlens/internal/entry"
	"github.com/knsugi/wordlens/internal/lexicon"
	"github.com/knsugi/wordlens/internal/safety"
	"github.com/knsugi/wordlens/internal/vision"
)

// Delegate is the optional online track. ok=false means "not
// available" for any reason; the offline track takes over silently.
type Delegate interface {
	DefineWord(ctx context.Context, word string) (entry.WordEntry, bool)
	DescribeImage(ctx context.Context, path string) (entry.ImageEntry, bool)
}

// Bot owns the shared, read-only collaborators. Built once at startup.
type Bot struct {
	gate       *safety.Gate
	lexicon    lexicon.Lexicon
	classifier vision.Classifier
	labels     map[string]vision.LabelInfo
	delegate   Delegate // nil when the online track is not configured
}

func New(gate *safety.Gate, lex lexicon.Lexicon, classifier vision.Classifier, labels map[string]vision.LabelInfo, delegate Delegate) *Bot {
	return &Bot{
		gate:       gate,
		lexicon:    lex,
		classifier: classifier,
		labels:     labels,
		delegate:   delegate,
	}
}

// RefusalMessage is the gate's fixed reply for rejected input.
func (b *Bot) RefusalMessage() string {
	return b.gate.RefusalMessage()
}
