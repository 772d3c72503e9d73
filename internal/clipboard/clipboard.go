// Package clipboard copies generated passwords to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/vaultpass/passgen-go/internal/generator"
)

const (
	MsgCopied      = "Password copied to clipboard!"
	MsgUnsupported = "Clipboard not supported. Please copy manually."
	MsgFailed      = "Failed to copy password."
)

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
	Supported() bool
}

// System returns the operating-system clipboard.
func System() Writer {
	return systemClipboard{}
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

func (systemClipboard) Supported() bool { return !clipboard.Unsupported }

// Result describes the outcome of a copy attempt. Message is empty when
// nothing was attempted.
type Result struct {
	Copied  bool
	Message string
}

// Copier guards clipboard writes so that only real passwords are copied.
type Copier struct {
	w      Writer
	logger zerolog.Logger
}

// NewCopier creates a Copier writing to w.
func NewCopier(w Writer, logger zerolog.Logger) *Copier {
	return &Copier{w: w, logger: logger}
}

// Copy writes text to the clipboard unless it is empty or the
// empty-selection placeholder.
func (c *Copier) Copy(text string) Result {
	if !generator.IsPassword(text) {
		return Result{}
	}

	if !c.w.Supported() {
		c.logger.Warn().Msg("clipboard not available, manual copy required")
		return Result{Message: MsgUnsupported}
	}

	if err := c.w.WriteAll(text); err != nil {
		c.logger.Error().Err(err).Msg("failed to copy text")
		return Result{Message: MsgFailed}
	}

	return Result{Copied: true, Message: MsgCopied}
}
