package core

import "errors"

// ErrExtraction marks a message file that could not be read or parsed.
// It only ever affects the one message.
var ErrExtraction = errors.New("message extraction failed")
