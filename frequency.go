package huffstream

import (
	"io"

	"github.com/pkg/errors"
)

// FrequencyTable counts the occurrences of each Symbol in a byte stream.
//
// Invariant: the sum of Counts equals Total.
//
type FrequencyTable struct {
	Counts [NumSymbols]uint64
	Total  uint64
}

// CountFrequencies scans r to EOF and returns the resulting table.
func CountFrequencies(r io.Reader) (FrequencyTable, error) {
	return countFrequencies(r, defaultBufferSize)
}

func countFrequencies(r io.Reader, bufSize int) (FrequencyTable, error) {
	var ft FrequencyTable
	buf := make([]byte, bufSize)
	for {
		n, err := r.Read(buf)
		ft.Add(buf[:n])
		if err == io.EOF {
			return ft, nil
		}
		if err != nil {
			return ft, errors.Wrap(err, "failed to read input")
		}
	}
}

// Add counts every byte of p.
func (ft *FrequencyTable) Add(p []byte) {
	for _, b := range p {
		ft.Counts[b]++
	}
	ft.Total += uint64(len(p))
}

// NumSymbols returns the number of distinct symbols with a nonzero count.
func (ft *FrequencyTable) NumSymbols() int {
	var n int
	for _, count := range ft.Counts {
		if count != 0 {
			n++
		}
	}
	return n
}
