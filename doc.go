/*
Package unzstd implements one-shot decompression of zstandard frames.

Input is a buffer of one or more concatenated frames. By default the first
frame is decoded and anything after it is ignored; set AllowExtraData false
to reject trailing bytes, or ReadAcrossFrames to decode every frame and
concatenate the results. Skippable frames are consumed and produce nothing.

A frame that declares its decompressed size is decoded in a single pass into
a buffer of exactly that size. A frame without a declared size (streaming
compressors omit it) needs an explicit maxOutputSize: decoding then runs into
a buffer bounded by that budget, and a frame that does not fit fails with
ErrOutputTruncated. Without the budget such frames fail with
ErrContentSizeMissing; unrecognizable or empty input fails with
ErrContentSizeUnknown. No partial output is ever returned with an error.

Use Decompress(src, opts) for one-off calls with nil for default behavior.
Use NewDecompressor(opts) when decompressing repeatedly; it is safe for
concurrent use and must be Closed when done.
Use InspectFrame(src, format) to read a frame header from a prefix without
decoding payload.
Use FrameSize(src, format) to find the next frame boundary without decoding.
Use NewRawDict or NewDict to share a dictionary across Decompressors.
Set Options.MaxWindowSize to bound decode-time memory; frames requiring a
larger window fail with ErrWindowTooLarge.
Set Options.Format to FormatZstd1Magicless for frames whose 4-byte magic
number was stripped.

# Examples

Decompress a frame that carries its content size:

	out, err := unzstd.Decompress(encoded, nil)
	if err != nil {
		return err
	}

Decompress a frame without a content size into at most 1 MiB:

	d, err := unzstd.NewDecompressor(nil)
	if err != nil {
		return err
	}
	defer d.Close()
	out, err := d.Decompress(encoded, 1<<20)

Decode all concatenated frames, requiring the input to be consumed exactly:

	out, err := unzstd.Decompress(encoded, unzstd.MultiFrameOptions())

Reject inputs with trailing garbage:

	opts := &unzstd.Options{} // zero value: single frame, no extra data
	out, err := unzstd.Decompress(encoded, opts)

Decompress with a shared raw-content dictionary and a bounded window:

	dict := unzstd.NewRawDict(1, corpus)
	d, err := unzstd.NewDecompressor(&unzstd.Options{
		Dict:           dict,
		MaxWindowSize:  1 << 20,
		AllowExtraData: true,
	})
*/
package unzstd
