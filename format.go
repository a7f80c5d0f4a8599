package unzstd

// Format selects the frame format variant a Decompressor expects.
type Format int

// Frame format constants.
const (
	FormatZstd1          Format = iota // Standard zstandard frames (RFC 8878).
	FormatZstd1Magicless               // Standard frames with the leading 4-byte magic number stripped.
)

// Zstandard format constants.
const (
	MinWindowSize = 1 << 10    // Smallest window a decoder may be limited to (window log 10).
	frameMagic    = 0xFD2FB528 // Frame magic number, little-endian on the wire.
	dictMagic     = 0xEC30A437 // Serialized dictionary magic number.
	magicLen      = 4          // Bytes of magic preceding a standard frame header.
	headerPeekLen = 32         // Upper bound on bytes needed to inspect a frame header.
	checksumLen   = 4          // Optional content checksum trailing a frame.
)
