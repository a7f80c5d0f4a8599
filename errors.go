package unzstd

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrContentSizeUnknown = errors.New("error determining content size from frame header")
	ErrContentSizeMissing = errors.New("could not determine content size in frame header")
	ErrOptionConflict     = errors.New("ReadAcrossFrames and AllowExtraData cannot both be set")
	ErrOutputTruncated    = errors.New("did not decompress full frame")
	ErrMaxOutputExceeded  = errors.New("max allowed output size reached")
	ErrWindowTooLarge     = errors.New("frame requires too much memory")
	ErrUnusedData         = errors.New("input contains unused data, which is disallowed")
	ErrOutputAlloc        = errors.New("cannot allocate output buffer")
	ErrNegativeMaxOutput  = errors.New("maximum output size must be non-negative")
	ErrBadDictionary      = errors.New("invalid dictionary")
	ErrUnknownFormat      = errors.New("unknown frame format")
)
