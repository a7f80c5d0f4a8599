package unzstd

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Decompressor decompresses buffers of concatenated zstandard frames
// according to a fixed set of Options. It keeps no per-call state: one
// Decompressor may be reused for any number of calls and is safe for
// concurrent use.
type Decompressor struct {
	opts Options
	// dec decodes frames with a declared content size. Frames without one
	// get a short-lived decoder built from dopts with a memory ceiling,
	// since the ceiling depends on the remaining output budget.
	dec   *zstd.Decoder
	dopts []zstd.DOption
}

// NewDecompressor builds a Decompressor from opts. Nil opts means
// DefaultOptions. Option validation happens here, before any input is seen:
// ReadAcrossFrames together with AllowExtraData is ErrOptionConflict.
// Callers should Close the Decompressor to release decoder resources.
func NewDecompressor(opts *Options) (*Decompressor, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.ReadAcrossFrames && opts.AllowExtraData {
		return nil, ErrOptionConflict
	}
	if opts.Format != FormatZstd1 && opts.Format != FormatZstd1Magicless {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, opts.Format)
	}

	// One goroutine per decoder and frugal buffers: decompression here is
	// one-shot, throughput comes from DecodeAll, not pipelining.
	base := []zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	}
	if opts.MaxWindowSize > 0 {
		base = append(base, zstd.WithDecoderMaxWindow(opts.MaxWindowSize))
	}
	if opts.Dict != nil {
		if opts.Dict.raw {
			base = append(base, zstd.WithDecoderDictRaw(opts.Dict.id, opts.Dict.content))
		} else {
			base = append(base, zstd.WithDecoderDicts(opts.Dict.content))
		}
	}

	dec, err := zstd.NewReader(nil, append(base[:len(base):len(base)],
		zstd.WithDecoderMaxMemory(1<<63))...)
	if err != nil {
		return nil, err
	}

	return &Decompressor{
		opts:  *opts,
		dec:   dec,
		dopts: base,
	}, nil
}

// Close releases the underlying decoder. The Decompressor must not be used
// after Close.
func (d *Decompressor) Close() {
	d.dec.Close()
}
