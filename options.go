package unzstd

// Options configures a Decompressor. The zero value decodes a single
// standard frame and rejects any trailing input bytes.
type Options struct {
	// Dict is an optional decompression dictionary. It is read-only and may
	// be shared by any number of Decompressors.
	Dict *Dict
	// MaxWindowSize caps the window, in bytes, a frame may require.
	// 0 means the library default. A frame requiring more fails with
	// ErrWindowTooLarge.
	MaxWindowSize uint64
	// Format selects the expected frame format.
	Format Format
	// ReadAcrossFrames: decode every frame in the input and concatenate the
	// results. Requires AllowExtraData to be false.
	ReadAcrossFrames bool
	// AllowExtraData: silently discard input bytes remaining after the first
	// frame instead of returning ErrUnusedData.
	AllowExtraData bool
}

// DefaultOptions returns options for default behavior: decode the first
// frame, ignore anything after it.
func DefaultOptions() *Options {
	return &Options{
		AllowExtraData: true,
	}
}

// MultiFrameOptions returns options that decode all concatenated frames in
// the input and require the input to be consumed exactly.
func MultiFrameOptions() *Options {
	return &Options{
		ReadAcrossFrames: true,
	}
}
