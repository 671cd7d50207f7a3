package huffstream

import (
	"bufio"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Decompress reads a compressed stream from src, writes the original bytes
// to dst and returns the number of bytes written.  An empty src produces no
// output at all.
//
// Decoding stops as soon as the number of bytes declared by the header has
// been written; padding bits and anything after them are never read.  On
// error, dst may already have received part of the output.
//
func (c Codec) Decompress(dst io.Writer, src io.Reader) (int64, error) {
	br := bufio.NewReaderSize(src, c.bufferSize())
	if _, err := br.Peek(1); err == io.EOF {
		c.Logger.Debug().Msg("empty input, nothing to decompress")
		return 0, nil
	} else if err != nil {
		return 0, errors.Wrap(err, "failed to read input")
	}

	count, err := readHeader(br)
	if err != nil {
		return 0, err
	}
	tree, err := ReadTree(br)
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: dst}
	bw := bufio.NewWriterSize(cw, c.bufferSize())

	if err := decodeBitstream(bw, bitio.NewReader(br), &tree, count); err != nil {
		// Push out what was decoded so the caller can see how far it got.
		_ = bw.Flush()
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, errors.Wrap(err, "failed to flush output")
	}

	c.Logger.Debug().
		Uint64("declared_bytes", count).
		Int("symbols", tree.NumLeaves()).
		Int("tree_nodes", tree.Len()).
		Int64("output_bytes", cw.n).
		Msg("decompressed stream")
	return cw.n, nil
}

// decodeBitstream walks t once per output byte.  A cursor that has reached
// a leaf is resolved before the next bit is read, so a single-leaf tree
// emits count copies of its symbol without consuming any bits.
func decodeBitstream(w io.ByteWriter, bits *bitio.Reader, t *Tree, count uint64) error {
	root := t.Root()
	cursor := root
	for emitted := uint64(0); emitted < count; {
		if t.IsLeaf(cursor) {
			if err := w.WriteByte(byte(t.Symbol(cursor))); err != nil {
				return errors.Wrap(err, "failed to write output")
			}
			emitted++
			cursor = root
			continue
		}

		bit, err := bits.ReadBool()
		switch {
		case err == io.EOF || err == io.ErrUnexpectedEOF:
			return errors.Wrapf(ErrTruncatedBitstream, "decoded %d of %d bytes", emitted, count)
		case err != nil:
			return errors.Wrap(err, "failed to read bitstream")
		}

		if bit {
			cursor = t.Right(cursor)
		} else {
			cursor = t.Left(cursor)
		}
	}
	return nil
}
