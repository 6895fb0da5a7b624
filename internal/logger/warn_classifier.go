package logger

import (
	"fmt"
	"os"
	"sync"
)

var once sync.Once

// WarnClassifierOnce prints a one-time notice when the local classifier
// daemon cannot be reached. Word lookups keep working without it.
func WarnClassifierOnce() {
	once.Do(func() {
		fmt.Fprintln(os.Stderr, "⚠️ Unable to reach the image classifier daemon. Image lookups will return an error entry.")
		fmt.Fprintln(os.Stderr, "Start the daemon (or set WORDLENS_CLASSIFIER_URL) to enable `describe`.")
	})
}
