package huffstream

import (
	"bufio"
	"bytes"
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Compress writes the compressed form of src to dst and returns the number
// of bytes written.  An empty src produces no output at all.
//
// The input is read twice: once to count symbol frequencies and once to
// encode it.  If src is an io.Seeker, the second pass seeks back to the
// offset at which Compress found it; otherwise the input is held in memory
// between passes.
//
func (c Codec) Compress(dst io.Writer, src io.Reader) (int64, error) {
	ft, second, err := c.firstPass(src)
	if err != nil {
		return 0, err
	}

	if ft.Total == 0 {
		c.Logger.Debug().Msg("empty input, nothing to compress")
		return 0, nil
	}

	tree := BuildTree(&ft)
	codes := tree.Codes()

	cw := &countingWriter{w: dst}
	bw := bufio.NewWriterSize(cw, c.bufferSize())

	if err := writeHeader(bw, ft.Total); err != nil {
		return cw.n, errors.Wrap(err, "failed to write header")
	}
	if err := WriteTree(bw, &tree); err != nil {
		return cw.n, errors.Wrap(err, "failed to write tree")
	}
	if err := c.writeBitstream(bw, second, &codes, ft.Total); err != nil {
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, errors.Wrap(err, "failed to flush output")
	}

	c.Logger.Debug().
		Uint64("input_bytes", ft.Total).
		Int("symbols", codes.Len()).
		Int("tree_nodes", tree.Len()).
		Uint8("max_code_size", codes.MaxSize()).
		Uint64("payload_bits", codes.EncodedBits(&ft)).
		Int64("output_bytes", cw.n).
		Msg("compressed stream")
	return cw.n, nil
}

// firstPass counts frequencies and returns a reader positioned for the
// second pass.
func (c Codec) firstPass(src io.Reader) (FrequencyTable, io.Reader, error) {
	if rs, ok := src.(io.ReadSeeker); ok {
		// Pipes and terminals implement Seek but fail it.
		if start, err := rs.Seek(0, io.SeekCurrent); err == nil {
			ft, err := countFrequencies(rs, c.bufferSize())
			if err != nil {
				return ft, nil, err
			}
			if _, err := rs.Seek(start, io.SeekStart); err != nil {
				return ft, nil, errors.Wrap(err, "failed to rewind input")
			}
			return ft, rs, nil
		}
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return FrequencyTable{}, nil, errors.Wrap(err, "failed to read input")
	}
	var ft FrequencyTable
	ft.Add(data)
	return ft, bytes.NewReader(data), nil
}

// writeBitstream appends the code of every byte of src to w, packed most
// significant bit first, then pads the final byte with zero bits.
func (c Codec) writeBitstream(w io.Writer, src io.Reader, codes *CodeTable, total uint64) error {
	bits := bitio.NewWriter(w)
	buf := make([]byte, c.bufferSize())

	var seen uint64
	for {
		n, err := src.Read(buf)
		for _, ch := range buf[:n] {
			code, ok := codes.Encode(Symbol(ch))
			if !ok {
				return errors.Wrapf(ErrInputChanged, "symbol %s at offset %d was not counted", Symbol(ch), seen)
			}
			if err := code.WriteBits(bits); err != nil {
				return errors.Wrap(err, "failed to write bitstream")
			}
			seen++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to read input")
		}
	}

	if seen != total {
		return errors.Wrapf(ErrInputChanged, "second pass read %d bytes, first pass read %d", seen, total)
	}
	if err := bits.Close(); err != nil {
		return errors.Wrap(err, "failed to flush bitstream")
	}
	return nil
}
