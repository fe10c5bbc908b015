// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	if !Available() {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}
