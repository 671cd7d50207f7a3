package huffstream

import (
	"io"

	"github.com/rs/zerolog"
)

// Codec compresses and decompresses byte streams.  The zero value is ready
// to use, logs nothing, and uses 64 KiB buffers.
type Codec struct {
	// Logger receives a debug event per completed operation.
	Logger zerolog.Logger

	// BufferSize is the size of the read and write buffers.  Values below
	// 16 select the default.
	BufferSize int
}

// Compress writes the compressed form of src to dst using a zero Codec.
func Compress(dst io.Writer, src io.Reader) (int64, error) {
	return Codec{}.Compress(dst, src)
}

// Decompress writes the decompressed form of src to dst using a zero Codec.
func Decompress(dst io.Writer, src io.Reader) (int64, error) {
	return Codec{}.Decompress(dst, src)
}

func (c Codec) bufferSize() int {
	if c.BufferSize < 16 {
		return defaultBufferSize
	}
	return c.BufferSize
}
