package unzstd

import "encoding/binary"

// Dict is a decompression dictionary. It is immutable after construction and
// safe to share read-only across any number of Decompressors; it must stay
// alive at least as long as every Decompressor built from it.
type Dict struct {
	content []byte
	id      uint32
	raw     bool
}

// NewDict wraps a serialized zstandard dictionary, as produced by training
// (magic 0xEC30A437 followed by entropy tables and content).
func NewDict(data []byte) (*Dict, error) {
	if len(data) < 8 || binary.LittleEndian.Uint32(data) != dictMagic {
		return nil, ErrBadDictionary
	}

	return &Dict{
		content: data,
		id:      binary.LittleEndian.Uint32(data[4:]),
	}, nil
}

// NewRawDict wraps raw content (no entropy tables) as a dictionary with the
// given ID. Frames must have been compressed against the same ID and content.
func NewRawDict(id uint32, content []byte) *Dict {
	return &Dict{
		content: content,
		id:      id,
		raw:     true,
	}
}

// ID returns the dictionary ID frames must reference to use this dictionary.
func (d *Dict) ID() uint32 {
	return d.id
}
