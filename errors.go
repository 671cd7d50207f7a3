package huffstream

import (
	"github.com/pkg/errors"
)

var (
	// ErrMalformedHeader is returned when a compressed stream does not
	// begin with a decimal byte count that fits in 64 bits.
	ErrMalformedHeader = errors.New("malformed byte count header")

	// ErrMalformedTree is returned when the serialized tree has an
	// unknown tag, is truncated, or describes something that is not a
	// Huffman tree over the byte alphabet.
	ErrMalformedTree = errors.New("malformed tree encoding")

	// ErrTruncatedBitstream is returned when the packed bitstream ends
	// before the declared number of bytes has been decoded.
	ErrTruncatedBitstream = errors.New("truncated bitstream")

	// ErrInputChanged is returned by Compress when a seekable input yields
	// different contents on its second pass.
	ErrInputChanged = errors.New("input changed between passes")
)
