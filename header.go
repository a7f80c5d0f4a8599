package unzstd

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// FrameHeader describes one frame without decoding its payload.
// ContentSize is only meaningful when HasContentSize is true: frames written
// by a streaming compressor may omit it.
type FrameHeader struct {
	// ContentSize is the declared decompressed size of the frame payload.
	ContentSize uint64
	// HasContentSize reports whether the frame header declares ContentSize.
	HasContentSize bool
	// WindowSize is the window the decoder needs to decode the frame.
	WindowSize uint64
	// DictionaryID is the dictionary the frame was compressed with, 0 if none.
	DictionaryID uint32
	// HasChecksum reports whether a 4-byte content checksum trails the frame.
	HasChecksum bool
	// HeaderSize is the encoded size of the header, including the magic
	// number for FormatZstd1.
	HeaderSize int
	// Skippable reports a skippable frame (magic 0x184D2A50..5F); such frames
	// carry SkippableSize bytes of payload and decode to nothing.
	Skippable     bool
	SkippableSize uint32
}

// InspectFrame reads the header of the frame starting at src without
// decoding any payload. src may be a prefix of the frame; anything that is
// too short or does not start a recognizable frame returns
// ErrContentSizeUnknown.
func InspectFrame(src []byte, format Format) (FrameHeader, error) {
	switch format {
	case FormatZstd1:
		return inspectView(src)
	case FormatZstd1Magicless:
		hdr, err := inspectView(prependMagic(peekHeader(src)))
		if err != nil {
			return FrameHeader{}, err
		}
		hdr.HeaderSize -= magicLen

		return hdr, nil
	}

	return FrameHeader{}, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}

// FrameSize returns the total compressed size of the first frame in src:
// header, blocks and optional checksum, or the full skippable frame. Slicing
// that many bytes off src lands on the next frame boundary. A frame that is
// not fully present returns io.ErrUnexpectedEOF.
func FrameSize(src []byte, format Format) (int, error) {
	view, pad := src, 0
	if format == FormatZstd1Magicless {
		view, pad = prependMagic(src), magicLen
	} else if format != FormatZstd1 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	hdr, err := inspectView(view)
	if err != nil {
		return 0, err
	}

	n, err := frameSpan(view, hdr)

	return n - pad, err
}

// inspectView parses a standard-format frame header from view.
func inspectView(view []byte) (FrameHeader, error) {
	var hdr zstd.Header
	if err := hdr.Decode(view); err != nil {
		return FrameHeader{}, fmt.Errorf("%w: %w", ErrContentSizeUnknown, err)
	}

	return FrameHeader{
		ContentSize:    hdr.FrameContentSize,
		HasContentSize: hdr.HasFCS,
		WindowSize:     hdr.WindowSize,
		DictionaryID:   hdr.DictionaryID,
		HasChecksum:    hdr.HasCheckSum,
		HeaderSize:     hdr.HeaderSize,
		Skippable:      hdr.Skippable,
		SkippableSize:  hdr.SkippableSize,
	}, nil
}

// frameSpan walks the block headers of the frame starting at view and
// returns the total encoded frame size. view must be standard format and hdr
// its decoded header. Only block framing is read; payloads are skipped, not
// decoded.
func frameSpan(view []byte, hdr FrameHeader) (int, error) {
	n := hdr.HeaderSize

	if hdr.Skippable {
		if len(view[n:]) < int(hdr.SkippableSize) {
			return n, io.ErrUnexpectedEOF
		}

		return n + int(hdr.SkippableSize), nil
	}

	// Block header: 1 bit last-block, 2 bits type, 21 bits size (RFC 8878, 3.1.1.2).
	for {
		if len(view[n:]) < 3 {
			return n, io.ErrUnexpectedEOF
		}

		blockHeader := binary.LittleEndian.Uint32(view[n-1:]) >> 8 // load uint24
		lastBlock := blockHeader&1 != 0
		blockType := (blockHeader >> 1) & 3
		blockSize := int(blockHeader >> 3)
		n += 3

		// An RLE block stores a single byte regardless of its regenerated size.
		if blockType == 1 {
			blockSize = 1
		}
		if len(view[n:]) < blockSize {
			return n, io.ErrUnexpectedEOF
		}
		n += blockSize

		if lastBlock {
			break
		}
	}

	if hdr.HasChecksum {
		if len(view[n:]) < checksumLen {
			return n, io.ErrUnexpectedEOF
		}
		n += checksumLen
	}

	return n, nil
}

// prependMagic returns a copy of b with the standard frame magic in front,
// turning a magicless frame into one the standard parser accepts.
func prependMagic(b []byte) []byte {
	buf := make([]byte, len(b)+magicLen)
	binary.LittleEndian.PutUint32(buf, frameMagic)
	copy(buf[magicLen:], b)

	return buf
}

// peekHeader bounds src to the bytes a header inspection can need.
func peekHeader(src []byte) []byte {
	if len(src) > headerPeekLen {
		return src[:headerPeekLen]
	}

	return src
}
