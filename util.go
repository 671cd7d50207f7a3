package huffstream

import (
	"io"
)

const defaultBufferSize = 64 << 10

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

var _ io.Writer = (*countingWriter)(nil)
