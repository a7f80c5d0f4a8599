package unzstd

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Decompress decompresses src into a new buffer using a one-off Decompressor.
// Options nil means DefaultOptions (single frame, trailing data ignored).
// Use a long-lived Decompressor when decompressing repeatedly.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	d, err := NewDecompressor(opts)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	return d.Decompress(src, 0)
}

// Decompress decompresses one or more frames from src and returns the
// decoded bytes. maxOutputSize bounds the total output; 0 means unlimited.
//
// A frame that declares its content size is decoded in a single pass into a
// buffer of exactly that size. A frame without a declared size needs
// maxOutputSize as the sizing fallback and otherwise fails with
// ErrContentSizeMissing; when the fallback is used, output up to and
// including the budget succeeds and anything beyond it is ErrOutputTruncated.
//
// By default only the first frame is decoded and the trailing-data policy of
// the Options applies to every byte after it. With ReadAcrossFrames all
// frames are decoded and concatenated, and the running total is checked
// against maxOutputSize before each frame. On error no output is returned.
func (d *Decompressor) Decompress(src []byte, maxOutputSize int) ([]byte, error) {
	if maxOutputSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeMaxOutput, maxOutputSize)
	}
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: input is empty", ErrContentSizeUnknown)
	}

	var out []byte
	remaining := src

	for len(remaining) > 0 {
		view, pad := remaining, 0
		if d.opts.Format == FormatZstd1Magicless {
			view, pad = prependMagic(remaining), magicLen
		}

		hdr, err := inspectView(view)
		if err != nil {
			return nil, err
		}

		span, spanErr := frameSpan(view, hdr)
		if spanErr != nil {
			if hdr.Skippable {
				// Cannot even delimit the frame.
				return nil, fmt.Errorf("%w: %w", ErrContentSizeUnknown, spanErr)
			}
			// Truncated final frame: hand the decoder everything that is left
			// and let it report the precise failure.
			span = len(view)
		}

		if hdr.Skippable {
			remaining = remaining[span-pad:]
			continue
		}

		out, err = d.decodeFrame(view[:span], out, hdr, maxOutputSize)
		if err != nil {
			return nil, err
		}
		remaining = remaining[span-pad:]

		if !d.opts.ReadAcrossFrames {
			if n := len(remaining); n > 0 && !d.opts.AllowExtraData {
				return nil, fmt.Errorf("%w: %d trailing bytes", ErrUnusedData, n)
			}
			break
		}
	}

	if out == nil {
		out = []byte{}
	}

	return out, nil
}

// decodeFrame decodes exactly one frame into dst and returns the extended
// buffer. frame must span the whole encoded frame in standard format.
func (d *Decompressor) decodeFrame(frame, dst []byte, hdr FrameHeader, maxOutputSize int) ([]byte, error) {
	if !hdr.HasContentSize {
		if maxOutputSize == 0 {
			return nil, ErrContentSizeMissing
		}

		return d.decodeFrameBounded(frame, dst, hdr, maxOutputSize-len(dst))
	}

	if maxOutputSize > 0 && hdr.ContentSize > uint64(maxOutputSize-len(dst)) {
		return nil, fmt.Errorf("%w; would read up to %d bytes",
			ErrMaxOutputExceeded, uint64(len(dst))+hdr.ContentSize)
	}

	dst, err := reserveOutput(dst, hdr.ContentSize)
	if err != nil {
		return nil, err
	}

	out, err := d.dec.DecodeAll(frame, dst)
	if err != nil {
		return nil, mapDecodeError(err)
	}

	return out, nil
}

// decodeFrameBounded decodes one frame without a declared content size into
// dst, allowing at most budget additional bytes. The decoder's memory
// ceiling stops runaway frames no matter how their blocks are coded; the
// exact budget is then checked against what the frame actually produced.
func (d *Decompressor) decodeFrameBounded(frame, dst []byte, hdr FrameHeader, budget int) ([]byte, error) {
	dst, err := reserveOutput(dst, uint64(budget))
	if err != nil {
		return nil, err
	}

	// The ceiling must cover the frame's window or the decoder rejects the
	// window itself, and must be at least one byte.
	ceiling := uint64(budget)
	if ceiling < hdr.WindowSize {
		ceiling = hdr.WindowSize
	}
	if ceiling == 0 {
		ceiling = 1
	}

	dec, err := zstd.NewReader(nil, append(d.dopts[:len(d.dopts):len(d.dopts)],
		zstd.WithDecoderMaxMemory(ceiling))...)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	start := len(dst)
	out, err := dec.DecodeAll(frame, dst)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, fmt.Errorf("%w (limit %d bytes)", ErrOutputTruncated, budget)
		}

		return nil, mapDecodeError(err)
	}
	if len(out)-start > budget {
		return nil, fmt.Errorf("%w (limit %d bytes)", ErrOutputTruncated, budget)
	}

	return out, nil
}

// mapDecodeError surfaces a window-ceiling failure under its package
// identity; everything else from the frame decoder passes through as is.
func mapDecodeError(err error) error {
	if errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return fmt.Errorf("%w: %w", ErrWindowTooLarge, err)
	}

	return err
}
