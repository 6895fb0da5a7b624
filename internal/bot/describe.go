package bot

import (
	"context"

	"github.com/knsugi/wordlens/internal/format"
	"github.com/knsugi/wordlens/internal/logger"
	"github.com/knsugi/wordlens/internal/vision"
)

// Describe resolves an image path and renders the entry for display.
// Every failure mode comes back as formatted text; nothing escapes.
func (b *Bot) Describe(ctx context.Context, path string) string {
	if !b.gate.IsSafe(path) {
		return b.gate.RefusalMessage()
	}

	// Path checks run before either track; a bad path is rejected
	// without any classification attempt.
	if err := vision.ValidateFile(path); err != nil {
		logger.Info("rejected image input %s: %v", path, err)
		return format.ImageError(err.Error())
	}

	if b.delegate != nil {
		if e, ok := b.delegate.DescribeImage(ctx, path); ok {
			logger.Debug("image %s resolved by the online track", path)
			return format.Image(e)
		}
	}

	data, err := vision.ReadImage(path)
	if err != nil {
		logger.Error("failed to read image %s: %v", path, err)
		return format.ImageError(err.Error())
	}

	preds, err := b.classifier.Classify(ctx, data)
	if err != nil {
		logger.Error("classification failed for %s: %v", path, err)
		logger.WarnClassifierOnce()
		return format.ImageError("Classification error: " + err.Error())
	}

	e := vision.Resolve(preds, b.labels)
	logger.Info("prediction: %s (confidence=%.2f%%)", e.Label, e.Confidence*100)
	return format.Image(e)
}

// DescribeFields returns the image entry as a field map, reusing the
// text renderer and parser so the structured view always matches the
// display text. refused is true when the safety gate rejected the
// input; the map is then nil.
func (b *Bot) DescribeFields(ctx context.Context, path string) (map[string]string, bool) {
	if !b.gate.IsSafe(path) {
		return nil, true
	}
	return format.Parse(b.Describe(ctx, path)), false
}
