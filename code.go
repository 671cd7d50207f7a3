package huffstream

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// MaxCodeSize is the longest possible root-to-leaf path in a Tree over the
// byte alphabet.
const MaxCodeSize = NumSymbols - 1

const bitsPerWord = 64

// Code represents a root-to-leaf path through a Tree, one bit per step: 0 for
// left, 1 for right.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant bit of Bits[0].
	Bits [4]uint64
}

// Bit returns the i'th step of the path.
func (hc Code) Bit(i int) bool {
	word, shift := i/bitsPerWord, bitsPerWord-1-i%bitsPerWord
	return (hc.Bits[word]>>shift)&1 != 0
}

// Append returns a copy of hc extended by one step.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(int(hc.Size) < MaxCodeSize, "Code.Append: size %d already at maximum %d", hc.Size, MaxCodeSize)
	if bit {
		i := int(hc.Size)
		hc.Bits[i/bitsPerWord] |= uint64(1) << (bitsPerWord - 1 - i%bitsPerWord)
	}
	hc.Size++
	return hc
}

// WriteBits appends the bits of hc to bw, first step first.
func (hc Code) WriteBits(bw *bitio.Writer) error {
	remaining := int(hc.Size)
	for _, word := range hc.Bits {
		if remaining == 0 {
			break
		}
		n := remaining
		if n > bitsPerWord {
			n = bitsPerWord
		}
		if err := bw.WriteBits(word>>(bitsPerWord-n), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

// CodeTable maps each Symbol present in a Tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	minSize byte
	maxSize byte
}

// Codes derives the CodeTable for this Tree by depth-first traversal.  The
// root of a single-symbol Tree receives the empty Code.
func (t *Tree) Codes() CodeTable {
	var ct CodeTable
	if t.Empty() {
		return ct
	}
	ct.minSize = MaxCodeSize
	t.walkCodes(&ct, t.root, Code{})
	return ct
}

func (t *Tree) walkCodes(ct *CodeTable, id NodeID, path Code) {
	n := &t.nodes[id]
	if n.left == NoNode {
		ct.codes[n.symbol] = path
		ct.present[n.symbol] = true
		if ct.minSize > path.Size {
			ct.minSize = path.Size
		}
		if ct.maxSize < path.Size {
			ct.maxSize = path.Size
		}
		return
	}
	t.walkCodes(ct, n.left, path.Append(false))
	t.walkCodes(ct, n.right, path.Append(true))
}

// Encode returns the Code for symbol, and false if the symbol is absent.
func (ct *CodeTable) Encode(symbol Symbol) (Code, bool) {
	return ct.codes[symbol], ct.present[symbol]
}

// MustEncode is like Encode, but panics if the symbol is absent.
func (ct *CodeTable) MustEncode(symbol Symbol) Code {
	assert.Assertf(ct.present[symbol], "CodeTable: no code for symbol %s", symbol)
	return ct.codes[symbol]
}

// Len returns the number of symbols with a Code.
func (ct *CodeTable) Len() int {
	var n int
	for _, ok := range ct.present {
		if ok {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() byte {
	return ct.maxSize
}

// EncodedBits returns the length of the packed bitstream, excluding padding,
// that encoding the input described by ft would produce.
func (ct *CodeTable) EncodedBits(ft *FrequencyTable) uint64 {
	var total uint64
	for symbol, count := range ft.Counts {
		if count != 0 {
			total += count * uint64(ct.codes[symbol].Size)
		}
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
