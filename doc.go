// Package huffstream implements a self-describing Huffman byte-stream codec.
//
// A compressed stream has three parts, with no outer framing:
//
//     [ASCII decimal digits]   number of original bytes
//     [tree]                   preorder: 'I' <left> <right> | 'L' <byte>
//     [bitstream]              concatenated codes, MSB first, zero padded
//
// The decimal count ends at the first byte that is not an ASCII digit, which
// is always the tree's first tag.  The tree grammar is self-terminating, and
// the decoder stops after emitting exactly count bytes, so padding bits in
// the final byte are never interpreted.  An empty input compresses to an
// empty stream and vice versa.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffstream
