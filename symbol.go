package huffstream

import (
	"strconv"
)

// Symbol represents one byte value of the input alphabet.
type Symbol byte

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// String returns the symbol as a Go-quoted character literal, e.g. 'A' or
// '\x00'.
func (s Symbol) String() string {
	return strconv.QuoteRuneToASCII(rune(s))
}
