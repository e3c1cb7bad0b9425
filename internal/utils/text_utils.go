package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TextProcessor provides utilities for cleaning up extracted message text
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// Truncate shortens text to at most maxRunes characters, marking the cut with an ellipsis
func (tp *TextProcessor) Truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	if maxRunes <= 3 {
		return string([]rune(text)[:maxRunes])
	}
	return string([]rune(text)[:maxRunes-3]) + "..."
}

// SanitizeUTF8 drops invalid UTF-8 sequences so the text can be matched and printed safely
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized := strings.ToValidUTF8(text, "")
	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF
func (tp *TextProcessor) NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// ProcessText sanitizes and normalizes body text in one operation
func (tp *TextProcessor) ProcessText(text string) string {
	return strings.TrimSpace(tp.NormalizeNewlines(tp.SanitizeUTF8(text)))
}
