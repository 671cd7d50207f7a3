package huffstream

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func makeCode(path string) Code {
	var hc Code
	for _, ch := range path {
		hc = hc.Append(ch == '1')
	}
	return hc
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		path   string
		expect string
	}

	testData := [...]testRow{
		{path: "", expect: "\"\""},
		{path: "0", expect: "\"0\""},
		{path: "1", expect: "\"1\""},
		{path: "0110", expect: "\"0110\""},
		{path: "1000000000000000000000000000000000000000000000000000000000000001", expect: "\"1000000000000000000000000000000000000000000000000000000000000001\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			hc := makeCode(row.path)
			if int(hc.Size) != len(row.path) {
				t.Errorf("expected size %d, got %d", len(row.path), hc.Size)
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_AppendDoesNotAlias(t *testing.T) {
	base := makeCode("10")
	left := base.Append(false)
	right := base.Append(true)

	require.Equal(t, "\"10\"", base.String())
	require.Equal(t, "\"100\"", left.String())
	require.Equal(t, "\"101\"", right.String())
}

func TestCode_AppendLimit(t *testing.T) {
	var hc Code
	for i := 0; i < MaxCodeSize; i++ {
		hc = hc.Append(i%2 == 0)
	}
	require.Equal(t, byte(MaxCodeSize), hc.Size)
	require.True(t, hc.Bit(0))
	require.False(t, hc.Bit(1))
	require.True(t, hc.Bit(MaxCodeSize-1))
	require.Panics(t, func() { hc.Append(true) })
}

func TestCode_WriteBits(t *testing.T) {
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	require.NoError(t, makeCode("1").WriteBits(bw))
	require.NoError(t, makeCode("0101").WriteBits(bw))
	require.NoError(t, makeCode("").WriteBits(bw))
	require.NoError(t, makeCode("111").WriteBits(bw))
	require.NoError(t, makeCode("11").WriteBits(bw))
	require.NoError(t, bw.Close())

	// 1 0101 111 | 11 + zero padding
	require.Equal(t, []byte{0xaf, 0xc0}, buf.Bytes())
}

func TestCode_WriteBitsAcrossWords(t *testing.T) {
	// 70 steps: 64 ones, then 000111.
	path := ""
	for i := 0; i < 64; i++ {
		path += "1"
	}
	path += "000111"
	hc := makeCode(path)

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	require.NoError(t, hc.WriteBits(bw))
	require.NoError(t, bw.Close())

	expect := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x1c}
	require.Equal(t, expect, buf.Bytes())
}

func TestCodes_LongPaths(t *testing.T) {
	// Fibonacci weights produce a chain-shaped tree whose deepest codes
	// span two 64-bit words.
	const numSymbols = 90
	var ft FrequencyTable
	a, b := uint64(1), uint64(1)
	for symbol := 0; symbol < numSymbols; symbol++ {
		ft.Counts[symbol] = a
		ft.Total += a
		a, b = b, a+b
	}

	tree := BuildTree(&ft)
	codes := tree.Codes()
	require.Equal(t, numSymbols, codes.Len())
	require.Equal(t, byte(1), codes.MinSize())
	require.Equal(t, byte(numSymbols-1), codes.MaxSize())

	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)
	for symbol := 0; symbol < numSymbols; symbol++ {
		require.NoError(t, codes.MustEncode(Symbol(symbol)).WriteBits(bw))
	}
	require.NoError(t, bw.Close())

	var out bytes.Buffer
	br := bitio.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, decodeBitstream(&out, br, &tree, numSymbols))
	for symbol := 0; symbol < numSymbols; symbol++ {
		require.Equal(t, byte(symbol), out.Bytes()[symbol])
	}
}
