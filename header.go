package huffstream

import (
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// maxHeaderDigits is the length of math.MaxUint64 in decimal.
const maxHeaderDigits = 20

func writeHeader(w io.Writer, count uint64) error {
	var scratch [maxHeaderDigits]byte
	_, err := w.Write(strconv.AppendUint(scratch[:0], count, 10))
	return err
}

// readHeader reads the decimal byte count.  The count ends at the first byte
// that is not an ASCII digit; that byte is unread so the tree parser sees it.
func readHeader(r io.ByteScanner) (uint64, error) {
	var count uint64
	var digits int
	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to read byte count header")
		}
		if !isDigit(ch) {
			if err := r.UnreadByte(); err != nil {
				return 0, errors.Wrap(err, "failed to unread byte after header")
			}
			break
		}

		d := uint64(ch - '0')
		if count > (math.MaxUint64-d)/10 {
			return 0, errors.Wrapf(ErrMalformedHeader, "byte count overflows 64 bits after %d digits", digits)
		}
		count = count*10 + d
		digits++
	}

	if digits == 0 {
		return 0, errors.Wrap(ErrMalformedHeader, "no decimal digits")
	}
	return count, nil
}
